package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruvello/export-api/internal/application/dto"
	"github.com/ruvello/export-api/internal/application/measurement"
)

// MeasurementHandler handles slab measurement endpoints (protected).
type MeasurementHandler struct {
	uc *measurement.UseCase
}

// NewMeasurementHandler builds the handler.
func NewMeasurementHandler(uc *measurement.UseCase) *MeasurementHandler {
	return &MeasurementHandler{uc: uc}
}

// Create godoc
// @Summary      Create a sheet from pasted reading blocks; a malformed reading rejects the batch
// @Tags         measurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMeasurementRequest  true  "Reading blocks and allowance text"
// @Success      201   {object}  dto.MeasurementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/measurements [post]
func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.CreateMeasurementRequest
	if !parseBody(c, &in) {
		return nil
	}
	sheet, err := h.uc.CreateSheet(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sheet)
}

// GetByID godoc
// @Summary      Get a sheet with its slabs, dimensions recomputed
// @Tags         measurements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sheet ID"
// @Success      200  {object}  dto.MeasurementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/measurements/{id} [get]
func (h *MeasurementHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	sheet, err := h.uc.GetSheet(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sheet)
}

// List godoc
// @Summary      List the company's measurement sheets, newest first
// @Tags         measurements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200     {array}  dto.MeasurementSummaryResponse
// @Router       /api/measurements [get]
func (h *MeasurementHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	sheets, err := h.uc.ListSheets(c.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sheets)
}

// DownloadPDF godoc
// @Summary      Download the packing list PDF of a sheet
// @Tags         measurements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Sheet ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/measurements/{id}/pdf [get]
func (h *MeasurementHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	data, filename, err := h.uc.DownloadPackingListPDF(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// DownloadXLSX godoc
// @Summary      Download the packing list workbook of a sheet
// @Tags         measurements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Sheet ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/measurements/{id}/xlsx [get]
func (h *MeasurementHandler) DownloadXLSX(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	data, filename, err := h.uc.DownloadPackingListWorkbook(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
