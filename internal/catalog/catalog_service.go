package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Best-seller and trending rails show the same number of slots as the
// storefront grid.
const topListSize = 8

type Service interface {
	GetByID(ctx context.Context, id string) (Product, error)
	ListByCategory(ctx context.Context, categoryID string) []Product
	Search(ctx context.Context, query string) []Product
	Deals(ctx context.Context) []Product
	BestSellers(ctx context.Context) []Product
	Trending(ctx context.Context) []Product
	Categories(ctx context.Context) []Category
	Browse(ctx context.Context, req BrowseRequest) ([]Product, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(r Repository) Service {
	return &service{
		repo:     r,
		validate: validator.New(),
	}
}

func (s *service) GetByID(_ context.Context, id string) (Product, error) {
	p, ok := s.repo.ByID(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// ListByCategory preserves catalog order. An unknown category is simply a
// category with no products, not an error.
func (s *service) ListByCategory(_ context.Context, categoryID string) []Product {
	return FilterProducts(s.repo.All(), FilterCriteria{CategoryID: categoryID})
}

// Search is an unconditional case-insensitive substring match over title,
// description, brand and category. An empty or whitespace-only query matches
// everything; any minimum-length gating belongs to the caller.
func (s *service) Search(_ context.Context, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	all := s.repo.All()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) Deals(_ context.Context) []Product {
	all := s.repo.All()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Discount > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) BestSellers(_ context.Context) []Product {
	return topBy(s.repo.All(), func(i, j Product) bool {
		return i.ReviewCount > j.ReviewCount
	})
}

func (s *service) Trending(_ context.Context) []Product {
	return topBy(s.repo.All(), func(i, j Product) bool {
		return i.Rating > j.Rating
	})
}

func (s *service) Categories(_ context.Context) []Category {
	return s.repo.Categories()
}

// Browse runs the full pipeline: search, conjunctive filters, one sort mode.
func (s *service) Browse(ctx context.Context, req BrowseRequest) ([]Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidQuery
	}

	results := s.Search(ctx, req.Query)
	results = FilterProducts(results, FilterCriteria{
		CategoryID: req.Category,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		MinRating:  req.MinRating,
	})
	return SortProducts(results, req.Sort), nil
}

// topBy returns the first topListSize products under a stable descending
// sort, so catalog order breaks ties.
func topBy(in []Product, less func(i, j Product) bool) []Product {
	out := make([]Product, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	if len(out) > topListSize {
		out = out[:topListSize]
	}
	return out
}
