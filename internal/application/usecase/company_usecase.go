package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// CompanyUseCase manages the exporter profile printed on every document.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with its persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a new exporting company. Generates the ID and initial
// status. Returns domain.ErrDuplicate when the GSTIN is already taken.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByGSTIN(in.GSTIN)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Tagline:     in.Tagline,
		GSTIN:       in.GSTIN,
		LLPIN:       in.LLPIN,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		ExporterRef: in.ExporterRef,
		Bank: entity.BankDetails{
			BankName:      in.Bank.BankName,
			AccountName:   in.Bank.AccountName,
			AccountNumber: in.Bank.AccountNumber,
			SwiftCode:     in.Bank.SwiftCode,
			IFSC:          in.Bank.IFSC,
		},
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID returns a company profile by ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// Update applies a partial update to the company profile. The GSTIN is
// immutable once registered.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Tagline != nil {
		company.Tagline = *in.Tagline
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.ExporterRef != nil {
		company.ExporterRef = *in.ExporterRef
	}
	if in.Bank != nil {
		company.Bank = entity.BankDetails{
			BankName:      in.Bank.BankName,
			AccountName:   in.Bank.AccountName,
			AccountNumber: in.Bank.AccountNumber,
			SwiftCode:     in.Bank.SwiftCode,
			IFSC:          in.Bank.IFSC,
		}
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Tagline:     c.Tagline,
		GSTIN:       c.GSTIN,
		LLPIN:       c.LLPIN,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		ExporterRef: c.ExporterRef,
		Bank: dto.BankDetailsRequest{
			BankName:      c.Bank.BankName,
			AccountName:   c.Bank.AccountName,
			AccountNumber: c.Bank.AccountNumber,
			SwiftCode:     c.Bank.SwiftCode,
			IFSC:          c.Bank.IFSC,
		},
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
