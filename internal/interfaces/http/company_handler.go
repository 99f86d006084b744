package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/application/usecase"
	"github.com/ruvello/export-api/internal/domain/entity"
)

// CompanyHandler handles the exporter profile. Registration is public
// (bootstrap); reads and updates are scoped to the token's company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Register a new exporting company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Company data"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if !parseBody(c, &in) {
		return nil
	}
	company, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Get godoc
// @Summary      Get the token company's profile
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.uc.GetByID(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// Update godoc
// @Summary      Update the company profile (admin only)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/company [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if !parseBody(c, &in) {
		return nil
	}
	company, err := h.uc.Update(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// adminOnly is the role guard used for profile mutation routes.
func adminOnly() fiber.Handler {
	return RequireRole(entity.RoleAdmin)
}
