package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// ── stubs ──────────────────────────────────────────────────────────────

type stubInvoiceRepo struct {
	invoice  *entity.Invoice
	items    []*entity.InvoiceItem
	getErr   error
	itemsErr error
}

func (r *stubInvoiceRepo) Create(*entity.Invoice) error         { return nil }
func (r *stubInvoiceRepo) CreateItem(*entity.InvoiceItem) error { return nil }
func (r *stubInvoiceRepo) Update(*entity.Invoice) error         { return nil }
func (r *stubInvoiceRepo) GetByID(string) (*entity.Invoice, error) {
	return r.invoice, r.getErr
}
func (r *stubInvoiceRepo) GetByCompanyAndNumber(string, string) (*entity.Invoice, error) {
	return nil, nil
}
func (r *stubInvoiceRepo) GetItemsByInvoiceID(string) ([]*entity.InvoiceItem, error) {
	return r.items, r.itemsErr
}
func (r *stubInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}

type stubBuyerRepo struct {
	buyer *entity.Buyer
	err   error
}

func (r *stubBuyerRepo) Create(*entity.Buyer) error { return nil }
func (r *stubBuyerRepo) GetByID(string) (*entity.Buyer, error) {
	return r.buyer, r.err
}
func (r *stubBuyerRepo) GetByCompanyAndName(string, string) (*entity.Buyer, error) {
	return nil, nil
}
func (r *stubBuyerRepo) ListByCompany(string, int, int) ([]*entity.Buyer, error) {
	return nil, nil
}
func (r *stubBuyerRepo) Update(*entity.Buyer) error { return nil }
func (r *stubBuyerRepo) Delete(string) error        { return nil }

type stubCompanyRepo struct{}

func (stubCompanyRepo) Create(*entity.Company) error            { return nil }
func (stubCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }
func (stubCompanyRepo) GetByGSTIN(string) (*entity.Company, error) {
	return nil, nil
}
func (stubCompanyRepo) Update(*entity.Company) error { return nil }
func (stubCompanyRepo) List(int, int) ([]*entity.Company, error) {
	return nil, nil
}

type stubTxRunner struct {
	repo repository.InvoiceRepository
}

func (r stubTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(r.repo)
}

const (
	readTestCompanyID = "c-1"
	readTestInvoiceID = "inv-1"
	readTestBuyerID   = "b-1"
)

func storedInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:        readTestInvoiceID,
		CompanyID: readTestCompanyID,
		BuyerID:   readTestBuyerID,
		Kind:      "PROFORMA",
		Number:    "PI-2026-001",
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Currency:  "USD",
	}
}

func storedItems() []*entity.InvoiceItem {
	return []*entity.InvoiceItem{{
		ID:          "it-1",
		InvoiceID:   readTestInvoiceID,
		Position:    0,
		ProductName: "Black Galaxy",
		Unit:        "sq.m",
		Quantity:    decimal.RequireFromString("400"),
		Rate:        decimal.RequireFromString("35"),
	}}
}

func newReadUseCase(invRepo *stubInvoiceRepo, buyerRepo *stubBuyerRepo) *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(stubTxRunner{repo: invRepo}, buyerRepo, stubCompanyRepo{}, invRepo)
}

// ── GetInvoice: repository failure handling ────────────────────────────

// TestGetInvoice_BuyerRepoFailurePropagates guards the consignee lookup: a
// failing buyer fetch must surface as an error, never as an invoice that
// silently renders with an empty consignee.
func TestGetInvoice_BuyerRepoFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	uc := newReadUseCase(
		&stubInvoiceRepo{invoice: storedInvoice(), items: storedItems()},
		&stubBuyerRepo{err: boom},
	)

	out, err := uc.GetInvoice(context.Background(), readTestCompanyID, readTestInvoiceID)

	require.Error(t, err, "a buyer repository failure must not be swallowed")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

// TestGetInvoice_InvoiceRepoFailureIsNotNotFound: an infrastructure error
// on the invoice fetch is not the same as a missing row and must not map
// to 404.
func TestGetInvoice_InvoiceRepoFailureIsNotNotFound(t *testing.T) {
	boom := errors.New("connection reset")
	uc := newReadUseCase(
		&stubInvoiceRepo{getErr: boom},
		&stubBuyerRepo{},
	)

	_, err := uc.GetInvoice(context.Background(), readTestCompanyID, readTestInvoiceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound,
		"a repository failure must not be reported as a missing invoice")
}

// TestGetInvoice_MissingRowIsNotFound: the genuine nil-row case still maps
// to the not-found sentinel.
func TestGetInvoice_MissingRowIsNotFound(t *testing.T) {
	uc := newReadUseCase(&stubInvoiceRepo{}, &stubBuyerRepo{})

	_, err := uc.GetInvoice(context.Background(), readTestCompanyID, readTestInvoiceID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestGetInvoice_DeletedBuyerYieldsEmptyConsignee: a buyer row that is
// gone (nil, no error) degrades to an empty consignee name instead of
// failing the read.
func TestGetInvoice_DeletedBuyerYieldsEmptyConsignee(t *testing.T) {
	uc := newReadUseCase(
		&stubInvoiceRepo{invoice: storedInvoice(), items: storedItems()},
		&stubBuyerRepo{},
	)

	out, err := uc.GetInvoice(context.Background(), readTestCompanyID, readTestInvoiceID)

	require.NoError(t, err)
	assert.Empty(t, out.BuyerName)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("14000")),
		"the total is still recomputed from the stored rows")
}

// TestGetInvoice_ForeignCompanyIsForbidden: ownership check before any
// buyer lookup.
func TestGetInvoice_ForeignCompanyIsForbidden(t *testing.T) {
	uc := newReadUseCase(
		&stubInvoiceRepo{invoice: storedInvoice(), items: storedItems()},
		&stubBuyerRepo{},
	)

	_, err := uc.GetInvoice(context.Background(), "other-company", readTestInvoiceID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
