package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/application/dto"
)

// BuyerHandler handles consignee endpoints (protected).
type BuyerHandler struct {
	uc *billing.BuyerUseCase
}

// NewBuyerHandler builds the handler.
func NewBuyerHandler(uc *billing.BuyerUseCase) *BuyerHandler {
	return &BuyerHandler{uc: uc}
}

// Create godoc
// @Summary      Register a buyer (consignee)
// @Tags         buyers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBuyerRequest  true  "Buyer data"
// @Success      201   {object}  dto.BuyerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/buyers [post]
func (h *BuyerHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.CreateBuyerRequest
	if !parseBody(c, &in) {
		return nil
	}
	buyer, err := h.uc.Create(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buyer)
}

// List godoc
// @Summary      List the company's buyers
// @Tags         buyers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200     {array}  dto.BuyerResponse
// @Router       /api/buyers [get]
func (h *BuyerHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	buyers, err := h.uc.List(companyID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buyers)
}

// GetByID godoc
// @Summary      Get a buyer by ID
// @Tags         buyers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Buyer ID"
// @Success      200  {object}  dto.BuyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/buyers/{id} [get]
func (h *BuyerHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	buyer, err := h.uc.GetByID(companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buyer)
}
