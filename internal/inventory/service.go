package inventory

import "context"

// Service mediates inventory CRUD between handlers and the store.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	item := Item{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    Category(req.Category),
		Supplier:    req.Supplier,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Status:      Status(req.Status),
		LastUpdated: req.LastUpdated,
	}
	return s.repo.Create(item)
}

func (s *Service) Get(ctx context.Context, id int) (Item, error) {
	return s.repo.Get(id)
}

func (s *Service) GetBySKU(ctx context.Context, sku string) (Item, error) {
	return s.repo.GetBySKU(sku)
}

func (s *Service) List(ctx context.Context) []Item {
	return s.repo.List()
}

func (s *Service) Update(ctx context.Context, id int, req UpdateItemRequest) (Item, error) {
	return s.repo.Update(id, req)
}

func (s *Service) Delete(ctx context.Context, id int) bool {
	return s.repo.Delete(id)
}
