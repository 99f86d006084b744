package repository

import "github.com/ruvello/export-api/internal/domain/entity"

// BuyerRepository is the persistence port for Buyer (consignees).
type BuyerRepository interface {
	Create(buyer *entity.Buyer) error
	GetByID(id string) (*entity.Buyer, error)
	GetByCompanyAndName(companyID, name string) (*entity.Buyer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Buyer, error)
	Update(buyer *entity.Buyer) error
	Delete(id string) error
}
