package cart

import (
	"context"

	"github.com/rohitguptaaa/AmazeMart/internal/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductGetter is the slice of the catalog the cart needs: resolving a
// product ID to the record the line will reference.
type ProductGetter interface {
	GetByID(ctx context.Context, id string) (catalog.Product, error)
}

type Service interface {
	AddItem(ctx context.Context, sessionID, productID string) error
	UpdateQty(ctx context.Context, sessionID, productID string, req UpdateQtyRequest) error
	RemoveItem(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
	SetDrawer(ctx context.Context, sessionID string, req SetDrawerRequest) error
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

type service struct {
	repo     Repository
	products ProductGetter
	validate *validator.Validate
}

func NewService(repo Repository, products ProductGetter) Service {
	return &service{
		repo:     repo,
		products: products,
		validate: validator.New(),
	}
}

// AddItem puts one more unit of the product in the session's cart: a new
// line at quantity 1, or an increment of the existing line.
func (s *service) AddItem(ctx context.Context, sessionID, productID string) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	s.repo.AddLine(sessionID, p)
	return nil
}

// UpdateQty sets an absolute quantity. Below 1 removes the line; an unknown
// product ID is a no-op, not a fault.
func (s *service) UpdateQty(_ context.Context, sessionID, productID string, req UpdateQtyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidQtyPayload
	}

	s.repo.SetQty(sessionID, productID, *req.Qty)
	return nil
}

func (s *service) RemoveItem(_ context.Context, sessionID, productID string) error {
	s.repo.RemoveLine(sessionID, productID)
	return nil
}

func (s *service) Clear(_ context.Context, sessionID string) error {
	s.repo.Clear(sessionID)
	return nil
}

func (s *service) SetDrawer(_ context.Context, sessionID string, req SetDrawerRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidDrawerPayload
	}

	s.repo.SetDrawer(sessionID, *req.Open)
	return nil
}

// Detail recomputes every derived value on read. Totals are accumulated as
// decimals and rounded to cents so price*qty sums stay exact.
func (s *service) Detail(_ context.Context, sessionID string) (CartDetailResponse, error) {
	lines := s.repo.Lines(sessionID)

	items := make([]CartLineResponse, 0, len(lines))
	total := decimal.Zero
	savings := decimal.Zero
	count := 0

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Qty))
		lineTotal := decimal.NewFromFloat(l.Product.Price).Mul(qty).Round(2)
		total = total.Add(lineTotal)
		count += l.Qty

		if l.Product.OriginalPrice > l.Product.Price {
			saved := decimal.NewFromFloat(l.Product.OriginalPrice).
				Sub(decimal.NewFromFloat(l.Product.Price)).
				Mul(qty)
			savings = savings.Add(saved)
		}

		items = append(items, CartLineResponse{
			Product:   l.Product,
			Qty:       l.Qty,
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	return CartDetailResponse{
		Items:      items,
		Total:      total.Round(2).InexactFloat64(),
		Savings:    savings.Round(2).InexactFloat64(),
		Count:      count,
		DrawerOpen: s.repo.DrawerOpen(sessionID),
	}, nil
}

func (s *service) Count(_ context.Context, sessionID string) (int, error) {
	count := 0
	for _, l := range s.repo.Lines(sessionID) {
		count += l.Qty
	}
	return count, nil
}
