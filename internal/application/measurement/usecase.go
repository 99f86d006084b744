package measurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/measure"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// UseCase turns pasted measurement blocks into persisted sheets and renders
// them as packing lists. All arithmetic lives in the measure package; this
// use case only orchestrates parsing, persistence and rendering.
type UseCase struct {
	txRunner    TxRunner
	repo        repository.MeasurementRepository
	buyerRepo   repository.BuyerRepository
	companyRepo repository.CompanyRepository
	pdf         PackingListPDFGenerator
	workbook    PackingListWorkbookExporter
}

// NewUseCase wires the use case.
func NewUseCase(
	txRunner TxRunner,
	repo repository.MeasurementRepository,
	buyerRepo repository.BuyerRepository,
	companyRepo repository.CompanyRepository,
	pdf PackingListPDFGenerator,
	workbook PackingListWorkbookExporter,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		repo:        repo,
		buyerRepo:   buyerRepo,
		companyRepo: companyRepo,
		pdf:         pdf,
		workbook:    workbook,
	}
}

// CreateSheet parses the pasted length/height blocks strictly and the
// allowance leniently, runs the measurement engine and persists sheet plus
// slabs atomically. Any ValidationError from the engine aborts before the
// store is touched; a sheet is never half-written.
func (uc *UseCase) CreateSheet(ctx context.Context, companyID string, in dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error) {
	if in.BuyerID != "" {
		buyer, err := uc.buyerRepo.GetByID(in.BuyerID)
		if err != nil || buyer == nil {
			return nil, domain.ErrNotFound
		}
		if buyer.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	lengths, err := measure.ParseReadings("lengths", in.Lengths)
	if err != nil {
		return nil, err
	}
	heights, err := measure.ParseReadings("heights", in.Heights)
	if err != nil {
		return nil, err
	}
	if len(lengths) == 0 {
		return nil, domain.NewValidationError("lengths", "at least one reading is required")
	}

	allowance := measure.ParseAllowance(in.Allowance)
	records, err := measure.BuildSlabRecords(lengths, heights, allowance)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sheet := &entity.MeasurementSheet{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		BuyerID:        in.BuyerID,
		InvoiceNumber:  in.InvoiceNumber,
		Description:    in.Description,
		AllowanceText:  in.Allowance,
		HeightTrim:     allowance.HeightTrim,
		LengthTrim:     allowance.LengthTrim,
		TotalGrossArea: measure.TotalGrossArea(records),
		TotalNetArea:   measure.TotalNetArea(records),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	slabs := make([]*entity.MeasurementSlab, 0, len(records))
	for _, r := range records {
		slabs = append(slabs, &entity.MeasurementSlab{
			ID:          uuid.New().String(),
			SheetID:     sheet.ID,
			Position:    r.SequenceID,
			GrossLength: r.GrossLength,
			GrossHeight: r.GrossHeight,
			NetLength:   r.NetLength,
			NetHeight:   r.NetHeight,
			GrossArea:   r.GrossArea,
			NetArea:     r.NetArea,
		})
	}

	err = uc.txRunner.RunMeasurement(ctx, func(repo repository.MeasurementRepository) error {
		if err := repo.CreateSheet(sheet); err != nil {
			return err
		}
		for _, slab := range slabs {
			if err := repo.CreateSlab(slab); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(sheet, slabs), nil
}

// GetSheet returns a sheet with its slabs, recomputed through the engine
// from the stored gross readings (persisted areas are a cache).
func (uc *UseCase) GetSheet(ctx context.Context, companyID, id string) (*dto.MeasurementResponse, error) {
	sheet, slabs, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(sheet, slabs), nil
}

// ListSheets returns sheet summaries for the company.
func (uc *UseCase) ListSheets(ctx context.Context, companyID string, limit, offset int) ([]*dto.MeasurementSummaryResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListSheetsByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MeasurementSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.MeasurementSummaryResponse{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			Description:   s.Description,
			TotalNetArea:  s.TotalNetArea,
			CreatedAt:     s.CreatedAt.Format("2006-01-02"),
		})
	}
	return out, nil
}

// DownloadPackingListPDF renders the sheet as a packing-list PDF.
func (uc *UseCase) DownloadPackingListPDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	sheet, slabs, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	company, buyer, err := uc.loadParties(sheet)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GeneratePackingListPDF(ctx, sheet, company, buyer, slabs)
	if err != nil {
		return nil, "", fmt.Errorf("packing list pdf: %w", err)
	}
	return b, fmt.Sprintf("PL_%s.pdf", sheet.ID[:8]), nil
}

// DownloadPackingListWorkbook renders the sheet as an XLSX workbook.
func (uc *UseCase) DownloadPackingListWorkbook(ctx context.Context, companyID, id string) ([]byte, string, error) {
	sheet, slabs, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	company, buyer, err := uc.loadParties(sheet)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.workbook.ExportPackingListWorkbook(ctx, sheet, company, buyer, slabs)
	if err != nil {
		return nil, "", fmt.Errorf("packing list xlsx: %w", err)
	}
	return b, fmt.Sprintf("PL_%s.xlsx", sheet.ID[:8]), nil
}

// load fetches sheet + slabs with ownership checks, then reruns the engine
// over the stored gross readings so derived fields are never stale.
func (uc *UseCase) load(ctx context.Context, companyID, id string) (*entity.MeasurementSheet, []*entity.MeasurementSlab, error) {
	sheet, err := uc.repo.GetSheetByID(id)
	if err != nil || sheet == nil {
		return nil, nil, domain.ErrNotFound
	}
	if sheet.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	slabs, err := uc.repo.GetSlabsBySheetID(id)
	if err != nil {
		return nil, nil, err
	}
	if err := recomputeSlabs(sheet, slabs); err != nil {
		return nil, nil, fmt.Errorf("recompute sheet %s: %w", id, err)
	}
	return sheet, slabs, nil
}

func (uc *UseCase) loadParties(sheet *entity.MeasurementSheet) (*entity.Company, *entity.Buyer, error) {
	company, err := uc.companyRepo.GetByID(sheet.CompanyID)
	if err != nil || company == nil {
		return nil, nil, domain.ErrNotFound
	}
	var buyer *entity.Buyer
	if sheet.BuyerID != "" {
		buyer, _ = uc.buyerRepo.GetByID(sheet.BuyerID)
	}
	return company, buyer, nil
}

// recomputeSlabs reruns BuildSlabRecords from the stored gross dimensions
// and refreshes net dimensions, areas and sheet totals in place.
func recomputeSlabs(sheet *entity.MeasurementSheet, slabs []*entity.MeasurementSlab) error {
	lengths := make([]decimal.Decimal, 0, len(slabs))
	heights := make([]decimal.Decimal, 0, len(slabs))
	for _, s := range slabs {
		lengths = append(lengths, s.GrossLength)
		heights = append(heights, s.GrossHeight)
	}
	records, err := measure.BuildSlabRecords(lengths, heights, measure.AllowanceSpec{
		HeightTrim: sheet.HeightTrim,
		LengthTrim: sheet.LengthTrim,
	})
	if err != nil {
		return err
	}
	for i, r := range records {
		slabs[i].NetLength = r.NetLength
		slabs[i].NetHeight = r.NetHeight
		slabs[i].GrossArea = r.GrossArea
		slabs[i].NetArea = r.NetArea
	}
	sheet.TotalGrossArea = measure.TotalGrossArea(records)
	sheet.TotalNetArea = measure.TotalNetArea(records)
	return nil
}

func toResponse(sheet *entity.MeasurementSheet, slabs []*entity.MeasurementSlab) *dto.MeasurementResponse {
	resp := &dto.MeasurementResponse{
		ID:             sheet.ID,
		CompanyID:      sheet.CompanyID,
		BuyerID:        sheet.BuyerID,
		InvoiceNumber:  sheet.InvoiceNumber,
		Description:    sheet.Description,
		AllowanceText:  sheet.AllowanceText,
		HeightTrim:     sheet.HeightTrim,
		LengthTrim:     sheet.LengthTrim,
		TotalGrossArea: sheet.TotalGrossArea,
		TotalNetArea:   sheet.TotalNetArea,
		Slabs:          make([]dto.SlabResponse, 0, len(slabs)),
	}
	for _, s := range slabs {
		resp.Slabs = append(resp.Slabs, dto.SlabResponse{
			Position:    s.Position,
			GrossLength: s.GrossLength,
			GrossHeight: s.GrossHeight,
			NetLength:   s.NetLength,
			NetHeight:   s.NetHeight,
			GrossArea:   s.GrossArea,
			NetArea:     s.NetArea,
		})
	}
	return resp
}
