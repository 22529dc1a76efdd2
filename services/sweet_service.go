package services

import (
	"context"

	"sweet-paradise/models"
)

type SweetRepo interface {
	GetAll(ctx context.Context) ([]models.Sweet, error)
	Search(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	GetByID(ctx context.Context, id int) (*models.Sweet, error)
	Create(ctx context.Context, sweet *models.Sweet) error
	Update(ctx context.Context, sweet *models.Sweet) error
	Delete(ctx context.Context, id int) error
	DecrementStock(ctx context.Context, id int) (*models.Sweet, error)
	IncrementStock(ctx context.Context, id, amount int) (*models.Sweet, error)
}

type SweetService struct {
	sweetRepo SweetRepo
}

func NewSweetService(sweetRepo SweetRepo) *SweetService {
	return &SweetService{sweetRepo: sweetRepo}
}

func (s *SweetService) GetAllSweets(ctx context.Context) ([]models.Sweet, error) {
	return s.sweetRepo.GetAll(ctx)
}

func (s *SweetService) SearchSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, models.NewValidationError("minPrice must not exceed maxPrice")
	}
	return s.sweetRepo.Search(ctx, filter)
}

func (s *SweetService) GetSweetByID(ctx context.Context, id int) (*models.Sweet, error) {
	return s.sweetRepo.GetByID(ctx, id)
}

func (s *SweetService) CreateSweet(ctx context.Context, req models.CreateSweetRequest) (*models.Sweet, error) {
	if req.Price < 0 {
		return nil, models.NewValidationError("Price must not be negative")
	}
	if req.Quantity < 0 {
		return nil, models.NewValidationError("Quantity must not be negative")
	}

	sweet := &models.Sweet{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	}
	if err := s.sweetRepo.Create(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

// UpdateSweet keeps current values for absent fields. Price and quantity
// come in as pointers so an explicit zero still applies.
func (s *SweetService) UpdateSweet(ctx context.Context, id int, req models.UpdateSweetRequest) (*models.Sweet, error) {
	sweet, err := s.sweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		sweet.Name = req.Name
	}
	if req.Category != "" {
		sweet.Category = req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, models.NewValidationError("Price must not be negative")
		}
		sweet.Price = *req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, models.NewValidationError("Quantity must not be negative")
		}
		sweet.Quantity = *req.Quantity
	}
	if req.Image != "" {
		sweet.Image = req.Image
	}

	if err := s.sweetRepo.Update(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

func (s *SweetService) DeleteSweet(ctx context.Context, id int) error {
	return s.sweetRepo.Delete(ctx, id)
}

func (s *SweetService) PurchaseSweet(ctx context.Context, id int) (*models.Sweet, error) {
	return s.sweetRepo.DecrementStock(ctx, id)
}

// RestockSweet adds the given amount of stock; a missing or non-positive
// amount restocks a single unit.
func (s *SweetService) RestockSweet(ctx context.Context, id, amount int) (*models.Sweet, error) {
	if amount <= 0 {
		amount = 1
	}
	return s.sweetRepo.IncrementStock(ctx, id, amount)
}
