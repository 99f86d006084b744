package measurement

import (
	"context"

	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// TxRunner executes a function inside a transaction scoped to measurement
// persistence, so a sheet and its slab rows are written atomically.
type TxRunner interface {
	RunMeasurement(ctx context.Context, fn func(repo repository.MeasurementRepository) error) error
}

// PackingListPDFGenerator renders a measurement sheet as a packing-list
// PDF. Buyer may be nil when the sheet is unassigned.
type PackingListPDFGenerator interface {
	GeneratePackingListPDF(
		ctx context.Context,
		sheet *entity.MeasurementSheet,
		company *entity.Company,
		buyer *entity.Buyer,
		slabs []*entity.MeasurementSlab,
	) ([]byte, error)
}

// PackingListWorkbookExporter renders a measurement sheet as an XLSX
// workbook.
type PackingListWorkbookExporter interface {
	ExportPackingListWorkbook(
		ctx context.Context,
		sheet *entity.MeasurementSheet,
		company *entity.Company,
		buyer *entity.Buyer,
		slabs []*entity.MeasurementSlab,
	) ([]byte, error)
}
