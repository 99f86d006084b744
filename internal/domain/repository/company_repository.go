package repository

import "github.com/ruvello/export-api/internal/domain/entity"

// CompanyRepository is the persistence port for Company (DIP).
// Implementations live in infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByGSTIN(gstin string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
}
