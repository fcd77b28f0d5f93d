package product

// ServiceInterface lets other packages (cart, order) depend on the product
// service without binding to the concrete type.
type ServiceInterface interface {
	ListActive() ([]Product, error)
	GetByID(id string) (Product, error)
	ListByIDs(ids []string) ([]Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive() ([]Product, error) {
	return s.repo.ListActive()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []string) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
