package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/pricing"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// InvoiceUseCase creates and reads export invoices. Totals always flow
// through the pricing engine: on create before anything is persisted, and
// again on every read, because stored amounts are only a cache of the last
// aggregation.
type InvoiceUseCase struct {
	txRunner    TxRunner
	buyerRepo   repository.BuyerRepository
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase wires the use case.
func NewInvoiceUseCase(
	txRunner TxRunner,
	buyerRepo repository.BuyerRepository,
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		buyerRepo:   buyerRepo,
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// CreateInvoice validates the request, aggregates the goods rows and
// persists header plus items in one transaction. A validation failure from
// the pricing engine aborts before anything is written; no partially
// computed or zero-filled invoice ever reaches the store.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.BuyerID == "" || in.Number == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.KindProforma && in.Kind != entity.KindCommercial {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("%q is not PROFORMA or COMMERCIAL", in.Kind))
	}
	if !entity.ValidIncoterm(in.Logistics.Incoterm) {
		return nil, domain.NewValidationError("incoterm", fmt.Sprintf("%q is not an accepted incoterm", in.Logistics.Incoterm))
	}

	buyer, err := uc.buyerRepo.GetByID(in.BuyerID)
	if err != nil || buyer == nil {
		return nil, domain.ErrNotFound
	}
	if buyer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	if existing, _ := uc.invoiceRepo.GetByCompanyAndNumber(companyID, in.Number); existing != nil {
		return nil, domain.ErrDuplicate
	}

	date := time.Now()
	if in.Date != "" {
		date, err = time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", fmt.Sprintf("%q is not a YYYY-MM-DD date", in.Date))
		}
	}

	// Aggregate before touching storage. A single bad quantity or rate
	// rejects the whole invoice here.
	agg, err := pricing.AggregateInvoice(toLineInputs(in.Items))
	if err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	validity := in.ValidityDays
	if validity == 0 {
		validity = 15
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		BuyerID:      in.BuyerID,
		Kind:         in.Kind,
		Number:       in.Number,
		Date:         date,
		ValidityDays: validity,
		Currency:     currency,
		Logistics: entity.Logistics{
			PreCarriage:      in.Logistics.PreCarriage,
			PlaceOfReceipt:   in.Logistics.PlaceOfReceipt,
			PortOfLoading:    in.Logistics.PortOfLoading,
			PortOfDischarge:  in.Logistics.PortOfDischarge,
			FinalDestination: in.Logistics.FinalDestination,
			Incoterm:         in.Logistics.Incoterm,
		},
		PaymentTerms: in.PaymentTerms,
		TotalAmount:  agg.TotalAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	items := make([]*entity.InvoiceItem, 0, len(agg.Items))
	for i, li := range agg.Items {
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			Position:    i + 1,
			ProductName: li.ProductName,
			Description: li.Description,
			Size:        li.Size,
			Unit:        li.Unit,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
			Excluded:    li.Excluded,
		})
	}

	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(inv, buyer.Name, items), nil
}

// GetInvoice returns an invoice with its items, recomputed through the
// pricing engine (the persisted total is treated as stale).
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, items, buyer, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	buyerName := ""
	if buyer != nil {
		buyerName = buyer.Name
	}
	return uc.toResponse(inv, buyerName, items), nil
}

// List returns invoice summaries for the company.
func (uc *InvoiceUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*dto.InvoiceSummaryResponse, error) {
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceSummaryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, &dto.InvoiceSummaryResponse{
			ID:          inv.ID,
			Kind:        inv.Kind,
			Number:      inv.Number,
			Date:        inv.Date.Format("2006-01-02"),
			BuyerID:     inv.BuyerID,
			Currency:    inv.Currency,
			TotalAmount: inv.TotalAmount,
		})
	}
	return out, nil
}

// load fetches invoice + items + buyer with ownership checks and recomputes
// amounts from the stored quantity and rate.
func (uc *InvoiceUseCase) load(ctx context.Context, companyID, id string) (*entity.Invoice, []*entity.InvoiceItem, *entity.Buyer, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load invoice %s: %w", id, err)
	}
	if inv == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	total, err := recomputeItems(items)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("recompute invoice %s: %w", id, err)
	}
	inv.TotalAmount = total
	buyer, err := uc.buyerRepo.GetByID(inv.BuyerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load buyer %s: %w", inv.BuyerID, err)
	}
	return inv, items, buyer, nil
}

// recomputeItems reruns the pricing engine over stored rows, refreshing
// Amount/Excluded in place, and returns the document total.
func recomputeItems(items []*entity.InvoiceItem) (decimal.Decimal, error) {
	inputs := make([]pricing.LineItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, pricing.LineItemInput{
			ProductName: it.ProductName,
			Description: it.Description,
			Size:        it.Size,
			Unit:        it.Unit,
			Quantity:    it.Quantity.String(),
			Rate:        it.Rate.String(),
		})
	}
	agg, err := pricing.AggregateInvoice(inputs)
	if err != nil {
		return decimal.Zero, err
	}
	for i := range items {
		items[i].Amount = agg.Items[i].Amount
		items[i].Excluded = agg.Items[i].Excluded
	}
	return agg.TotalAmount, nil
}

func toLineInputs(items []dto.InvoiceItemRequest) []pricing.LineItemInput {
	inputs := make([]pricing.LineItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, pricing.LineItemInput{
			ProductName: it.ProductName,
			Description: it.Description,
			Size:        it.Size,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		})
	}
	return inputs
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, buyerName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CompanyID:    inv.CompanyID,
		BuyerID:      inv.BuyerID,
		BuyerName:    buyerName,
		Kind:         inv.Kind,
		Number:       inv.Number,
		Date:         inv.Date.Format("2006-01-02"),
		ValidityDays: inv.ValidityDays,
		Currency:     inv.Currency,
		Logistics: dto.LogisticsRequest{
			PreCarriage:      inv.Logistics.PreCarriage,
			PlaceOfReceipt:   inv.Logistics.PlaceOfReceipt,
			PortOfLoading:    inv.Logistics.PortOfLoading,
			PortOfDischarge:  inv.Logistics.PortOfDischarge,
			FinalDestination: inv.Logistics.FinalDestination,
			Incoterm:         inv.Logistics.Incoterm,
		},
		PaymentTerms: inv.PaymentTerms,
		TotalAmount:  inv.TotalAmount,
		Items:        make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Position:    it.Position,
			ProductName: it.ProductName,
			Description: it.Description,
			Size:        it.Size,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
			Excluded:    it.Excluded,
		})
	}
	return resp
}
