package orders

import "context"

// Service mediates order CRUD between handlers and the store.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (Order, error) {
	order := Order{
		OrderID:    req.OrderID,
		SupplierID: req.SupplierID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     Status(req.Status),
		Amount:     req.Amount,
		Products:   req.Products,
	}
	return s.repo.Create(order)
}

func (s *Service) Get(ctx context.Context, id int) (Order, error) {
	return s.repo.Get(id)
}

func (s *Service) List(ctx context.Context) []Order {
	return s.repo.List()
}

func (s *Service) ListBySupplier(ctx context.Context, supplierID int) []Order {
	return s.repo.ListBySupplier(supplierID)
}

func (s *Service) Update(ctx context.Context, id int, req UpdateOrderRequest) (Order, error) {
	return s.repo.Update(id, req)
}

func (s *Service) Delete(ctx context.Context, id int) bool {
	return s.repo.Delete(id)
}
