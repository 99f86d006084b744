package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/pricing"
)

// respondWith mounts a handler that fails with err and returns the parsed
// error body plus the status code.
func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Post("/fail", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(fiber.MethodPost, "/fail", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

// ── respondError: validation failures ──────────────────────────────────

// TestRespondError_RowValidationError: an engine rejection maps to 400
// carrying the offending field and the 1-based row.
func TestRespondError_RowValidationError(t *testing.T) {
	status, body := respondWith(t, domain.NewRowValidationError("quantity", 2, `"abc" is not a number`))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "quantity", body.Field)
	assert.Equal(t, 3, body.Row, "engine row index 2 must surface as display row 3")
}

// TestRespondError_FieldValidationErrorOmitsRow: a failure not tied to a
// row (the -1 sentinel) reports the field only.
func TestRespondError_FieldValidationErrorOmitsRow(t *testing.T) {
	status, body := respondWith(t, domain.NewValidationError("incoterm", "must be one of CIF, FOB, EXW, DDP, CFR"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "incoterm", body.Field)
	assert.Zero(t, body.Row)
}

// TestRespondError_WrappedValidationError: wrapping at a use case boundary
// must not hide the field/row detail.
func TestRespondError_WrappedValidationError(t *testing.T) {
	inner := domain.NewRowValidationError("rate", 0, "must not be negative")
	status, body := respondWith(t, fmt.Errorf("recompute invoice inv-1: %w", inner))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "rate", body.Field)
	assert.Equal(t, 1, body.Row)
}

// TestRespondError_PricingEngineError: the real engine error, end to end
// through the mapper. Row 1 (0-based) of the batch carries the bad rate.
func TestRespondError_PricingEngineError(t *testing.T) {
	_, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		{ProductName: "Black Galaxy", Quantity: "400", Rate: "35"},
		{ProductName: "Tan Brown", Quantity: "120", Rate: "thirty"},
	})
	require.Error(t, err)

	status, body := respondWith(t, err)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "rate", body.Field)
	assert.Equal(t, 2, body.Row)
}

// ── respondError: sentinel mapping ─────────────────────────────────────

func TestRespondError_SentinelMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicate", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"forbidden", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"unauthorized", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"infrastructure failure", errors.New("connection reset"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondWith(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// TestRespondError_WrappedRepoFailureIs500: a wrapped infrastructure error
// that carries no domain sentinel must not drop to 404.
func TestRespondError_WrappedRepoFailureIs500(t *testing.T) {
	status, body := respondWith(t, fmt.Errorf("load invoice inv-1: %w", errors.New("connection reset")))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}
