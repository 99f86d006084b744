package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// BuyerUseCase manages consignees of the exporting company.
type BuyerUseCase struct {
	repo repository.BuyerRepository
}

// NewBuyerUseCase wires the use case.
func NewBuyerUseCase(repo repository.BuyerRepository) *BuyerUseCase {
	return &BuyerUseCase{repo: repo}
}

// Create registers a new buyer for the company.
func (uc *BuyerUseCase) Create(companyID string, in dto.CreateBuyerRequest) (*dto.BuyerResponse, error) {
	if in.Name == "" || in.Country == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByCompanyAndName(companyID, in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	buyer := &entity.Buyer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Country:   in.Country,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(buyer); err != nil {
		return nil, err
	}
	return toBuyerResponse(buyer), nil
}

// List returns the company's buyers.
func (uc *BuyerUseCase) List(companyID string, limit, offset int) ([]*dto.BuyerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BuyerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBuyerResponse(b))
	}
	return out, nil
}

// GetByID returns a buyer after an ownership check.
func (uc *BuyerUseCase) GetByID(companyID, id string) (*dto.BuyerResponse, error) {
	buyer, err := uc.repo.GetByID(id)
	if err != nil || buyer == nil {
		return nil, domain.ErrNotFound
	}
	if buyer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toBuyerResponse(buyer), nil
}

func toBuyerResponse(b *entity.Buyer) *dto.BuyerResponse {
	return &dto.BuyerResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Country:   b.Country,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}
