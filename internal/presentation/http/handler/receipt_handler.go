package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okravets/kasa-api/internal/application/service"
	"github.com/okravets/kasa-api/internal/presentation/http/dto/request"
	"github.com/okravets/kasa-api/internal/presentation/http/dto/response"
	"github.com/okravets/kasa-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService    *service.ReceiptService
	defaultLineLength int
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, defaultLineLength int) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService:    receiptService,
		defaultLineLength: defaultLineLength,
	}
}

// Create handles receipt creation
// @Summary Create Receipt
// @Description Create a receipt with computed totals
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateReceiptInput{
		Payment: service.PaymentInput{
			Type:   req.Payment.Type,
			Amount: req.Payment.Amount,
		},
	}
	for _, p := range req.Products {
		input.Products = append(input.Products, service.ProductInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	record, err := h.receiptService.Create(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", record)
}

// List handles receipt listing with filters
// @Summary List Receipts
// @Description List the user's receipts with optional filters
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param date_from query string false "Created at or after (YYYY-MM-DD or RFC 3339)"
// @Param date_to query string false "Created at or before (YYYY-MM-DD or RFC 3339)"
// @Param min_total query string false "Minimum total"
// @Param max_total query string false "Maximum total"
// @Param payment_type query string false "Payment type"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var query request.ListReceiptsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListReceiptsInput{
		Pagination:  &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage},
		PaymentType: query.PaymentType,
	}

	if query.DateFrom != "" {
		t, err := parseDate(query.DateFrom)
		if err != nil {
			response.BadRequest(c, "Invalid date_from value")
			return
		}
		input.DateFrom = &t
	}
	if query.DateTo != "" {
		t, err := parseDate(query.DateTo)
		if err != nil {
			response.BadRequest(c, "Invalid date_to value")
			return
		}
		input.DateTo = &t
	}
	if query.MinTotal != "" {
		v, err := decimal.NewFromString(query.MinTotal)
		if err != nil {
			response.BadRequest(c, "Invalid min_total value")
			return
		}
		input.MinTotal = &v
	}
	if query.MaxTotal != "" {
		v, err := decimal.NewFromString(query.MaxTotal)
		if err != nil {
			response.BadRequest(c, "Invalid max_total value")
			return
		}
		input.MaxTotal = &v
	}

	result, err := h.receiptService.List(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles fetching a single receipt
// @Summary Get Receipt
// @Description Get one of the user's receipts by ID
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
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

	record, err := h.receiptService.Get(c.Request.Context(), *userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", record)
}

// PublicView renders a receipt as plain text without authentication
// @Summary Public Receipt View
// @Description Render a receipt as a fixed-width plain text document
// @Tags public
// @Produce plain
// @Param id path string true "Receipt ID"
// @Param line_length query int false "Maximum line length in characters"
// @Success 200 {string} string
// @Failure 404 {object} response.APIResponse
// @Router /public/receipts/{id} [get]
func (h *ReceiptHandler) PublicView(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var query request.PublicReceiptQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	lineLength := h.defaultLineLength
	if query.LineLength != nil {
		lineLength = *query.LineLength
	}

	text, err := h.receiptService.RenderPublic(c.Request.Context(), receiptID, lineLength)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/plain; charset=utf-8", []byte(text))
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
