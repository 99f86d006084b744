package repository

import "github.com/ruvello/export-api/internal/domain/entity"

// MeasurementRepository is the persistence port for measurement sheets and
// their slab rows.
type MeasurementRepository interface {
	CreateSheet(sheet *entity.MeasurementSheet) error
	CreateSlab(slab *entity.MeasurementSlab) error
	GetSheetByID(id string) (*entity.MeasurementSheet, error)
	GetSlabsBySheetID(sheetID string) ([]*entity.MeasurementSlab, error)
	ListSheetsByCompany(companyID string, limit, offset int) ([]*entity.MeasurementSheet, error)
	DeleteSheet(id string) error
}
