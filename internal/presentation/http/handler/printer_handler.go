package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okravets/kasa-api/internal/application/service"
	"github.com/okravets/kasa-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus handles printer status requests
// @Summary Printer Status
// @Description Get the configured printer's connection status
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// PrintReceipt handles receipt print requests
// @Summary Print Receipt
// @Description Send one of the user's receipts to the thermal printer
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/print [post]
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	text, err := h.printerService.PrintReceipt(c.Request.Context(), *userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", gin.H{"text": text})
}
