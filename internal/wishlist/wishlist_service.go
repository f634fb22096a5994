package wishlist

import (
	"context"

	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
)

// ProductGetter resolves a product ID against the catalog.
type ProductGetter interface {
	GetByID(ctx context.Context, id string) (catalog.Product, error)
}

type Service interface {
	Add(ctx context.Context, sessionID, productID string) error
	Remove(ctx context.Context, sessionID, productID string) error
	List(ctx context.Context, sessionID string) (WishlistResponse, error)
	Contains(ctx context.Context, sessionID, productID string) (bool, error)
}

type service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) Service {
	return &service{
		repo:     repo,
		products: products,
	}
}

// Add puts the product in the session's wishlist. Adding a product that is
// already present is a no-op success, not a conflict.
func (s *service) Add(ctx context.Context, sessionID, productID string) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	s.repo.Add(sessionID, p)
	return nil
}

// Remove is a no-op when the product is not in the wishlist.
func (s *service) Remove(_ context.Context, sessionID, productID string) error {
	s.repo.Remove(sessionID, productID)
	return nil
}

func (s *service) List(_ context.Context, sessionID string) (WishlistResponse, error) {
	items := s.repo.Items(sessionID)
	return WishlistResponse{
		Items: items,
		Count: len(items),
	}, nil
}

func (s *service) Contains(_ context.Context, sessionID, productID string) (bool, error) {
	return s.repo.Contains(sessionID, productID), nil
}
