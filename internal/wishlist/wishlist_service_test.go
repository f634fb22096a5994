package wishlist_test

import (
	"context"
	"testing"

	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
	"github.com/rohitguptaaa/AmazeMart/internal/wishlist"

	"github.com/stretchr/testify/assert"
)

func newTestService() wishlist.Service {
	products := catalog.NewService(catalog.NewRepository([]catalog.Product{
		{ID: "a", Title: "Alpha Phone", Price: 10, Category: "electronics"},
		{ID: "b", Title: "Beta Buds", Price: 20, Category: "electronics"},
	}, nil))
	return wishlist.NewService(wishlist.NewMemoryRepository(), products)
}

func itemIDs(items []catalog.Product) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds_resolved_product", func(t *testing.T) {
		svc := newTestService()

		assert.NoError(t, svc.Add(ctx, "s1", "a"))

		res, err := svc.List(ctx, "s1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"a"}, itemIDs(res.Items))
		assert.Equal(t, "Alpha Phone", res.Items[0].Title)
	})

	t.Run("duplicate_add_is_a_noop_success", func(t *testing.T) {
		svc := newTestService()

		assert.NoError(t, svc.Add(ctx, "s1", "a"))
		assert.NoError(t, svc.Add(ctx, "s1", "a"))

		res, _ := svc.List(ctx, "s1")
		assert.Equal(t, []string{"a"}, itemIDs(res.Items))
		assert.Equal(t, 1, res.Count)
	})

	t.Run("keeps_insertion_order", func(t *testing.T) {
		svc := newTestService()

		_ = svc.Add(ctx, "s1", "b")
		_ = svc.Add(ctx, "s1", "a")

		res, _ := svc.List(ctx, "s1")
		assert.Equal(t, []string{"b", "a"}, itemIDs(res.Items))
	})

	t.Run("unknown_product", func(t *testing.T) {
		svc := newTestService()

		err := svc.Add(ctx, "s1", "nope")
		assert.Equal(t, catalog.ErrProductNotFound, err)

		res, _ := svc.List(ctx, "s1")
		assert.Empty(t, res.Items)
	})

	t.Run("sessions_are_isolated", func(t *testing.T) {
		svc := newTestService()

		_ = svc.Add(ctx, "s1", "a")

		res, _ := svc.List(ctx, "s2")
		assert.Empty(t, res.Items)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_present_product", func(t *testing.T) {
		svc := newTestService()

		_ = svc.Add(ctx, "s1", "a")
		_ = svc.Add(ctx, "s1", "b")

		assert.NoError(t, svc.Remove(ctx, "s1", "a"))

		res, _ := svc.List(ctx, "s1")
		assert.Equal(t, []string{"b"}, itemIDs(res.Items))
	})

	t.Run("absent_product_is_a_noop", func(t *testing.T) {
		svc := newTestService()

		_ = svc.Add(ctx, "s1", "a")
		before, _ := svc.List(ctx, "s1")

		assert.NoError(t, svc.Remove(ctx, "s1", "b"))

		after, _ := svc.List(ctx, "s1")
		assert.Equal(t, before, after)
	})
}

func TestWishlistService_Contains(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_ = svc.Add(ctx, "s1", "a")

	in, err := svc.Contains(ctx, "s1", "a")
	assert.NoError(t, err)
	assert.True(t, in)

	in, err = svc.Contains(ctx, "s1", "b")
	assert.NoError(t, err)
	assert.False(t, in)

	// membership checks do not require the product to exist
	in, err = svc.Contains(ctx, "s1", "nope")
	assert.NoError(t, err)
	assert.False(t, in)
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("empty_wishlist_is_a_normal_state", func(t *testing.T) {
		res, err := svc.List(ctx, "never-seen-session")
		assert.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Zero(t, res.Count)
	})

	t.Run("count_matches_items", func(t *testing.T) {
		_ = svc.Add(ctx, "s1", "a")
		_ = svc.Add(ctx, "s1", "b")

		res, _ := svc.List(ctx, "s1")
		assert.Equal(t, len(res.Items), res.Count)
		assert.Equal(t, 2, res.Count)
	})
}
