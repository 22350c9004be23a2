package suppliers

import "context"

// Service mediates supplier CRUD between handlers and the store.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	supplier := Supplier{
		Name:              req.Name,
		Category:          req.Category,
		Status:            Status(req.Status),
		Location:          req.Location,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		OrdersThisMonth:   req.OrdersThisMonth,
		OnTimeDelivery:    req.OnTimeDelivery,
		TotalSpend:        req.TotalSpend,
		ProductCategories: req.ProductCategories,
		LogoInitials:      req.LogoInitials,
		LogoColor:         req.LogoColor,
	}
	return s.repo.Create(supplier), nil
}

func (s *Service) Get(ctx context.Context, id int) (Supplier, error) {
	return s.repo.Get(id)
}

func (s *Service) List(ctx context.Context) []Supplier {
	return s.repo.List()
}

func (s *Service) Update(ctx context.Context, id int, req UpdateSupplierRequest) (Supplier, error) {
	return s.repo.Update(id, req)
}

func (s *Service) Delete(ctx context.Context, id int) bool {
	return s.repo.Delete(id)
}
