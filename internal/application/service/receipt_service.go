package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okravets/kasa-api/internal/domain/entity"
	domainRepo "github.com/okravets/kasa-api/internal/domain/repository"
	"github.com/okravets/kasa-api/internal/receipt"
	"github.com/okravets/kasa-api/pkg/apperror"
	"github.com/okravets/kasa-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Layout holds the configurable parts of the printable receipt rendering.
type Layout struct {
	Header     string
	Footer     string
	LineLength int
}

// DefaultLayout returns the stock receipt layout.
func DefaultLayout() Layout {
	return Layout{
		Header:     receipt.DefaultHeader,
		Footer:     receipt.DefaultFooter,
		LineLength: receipt.DefaultLineLength,
	}
}

// ReceiptService handles receipt creation, retrieval and public rendering.
type ReceiptService struct {
	receiptRepo domainRepo.ReceiptRepository
	layout      Layout
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo domainRepo.ReceiptRepository, layout Layout) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		layout:      layout,
	}
}

// ProductInput is one line item in a receipt creation request.
type ProductInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// PaymentInput describes the tendered payment.
type PaymentInput struct {
	Type   string
	Amount decimal.Decimal
}

// CreateReceiptInput represents the receipt creation input
type CreateReceiptInput struct {
	Products []ProductInput
	Payment  PaymentInput
}

// Create computes totals for the requested line items and persists the
// resulting receipt atomically. The computation is permissive: insufficient
// payment and non-positive prices or quantities are stored as-is.
func (s *ReceiptService) Create(ctx context.Context, userID uuid.UUID, input *CreateReceiptInput) (*entity.Receipt, error) {
	items := make([]receipt.LineItem, 0, len(input.Products))
	for _, p := range input.Products {
		items = append(items, receipt.LineItem{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	computed := receipt.Compute(items, receipt.Payment{
		Type:   input.Payment.Type,
		Amount: input.Payment.Amount,
	})

	record := &entity.Receipt{
		UserID:        userID,
		Total:         computed.Total,
		Rest:          computed.Rest,
		PaymentType:   computed.Payment.Type,
		PaymentAmount: computed.Payment.Amount,
	}
	for _, item := range computed.Items {
		record.Items = append(record.Items, entity.ReceiptItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	if err := s.receiptRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListReceiptsInput represents the receipt listing filters
type ListReceiptsInput struct {
	Pagination  *pagination.PaginationParams
	DateFrom    *time.Time
	DateTo      *time.Time
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
	PaymentType string
}

// List returns the user's receipts matching the filters, newest first.
func (s *ReceiptService) List(ctx context.Context, userID uuid.UUID, input *ListReceiptsInput) (*pagination.PaginatedResult[entity.Receipt], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	receipts, total, err := s.receiptRepo.List(ctx, userID, &domainRepo.ReceiptFilterParams{
		Pagination:  params,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		MinTotal:    input.MinTotal,
		MaxTotal:    input.MaxTotal,
		PaymentType: input.PaymentType,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(receipts,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Get returns one receipt owned by the given user.
func (s *ReceiptService) Get(ctx context.Context, userID, receiptID uuid.UUID) (*entity.Receipt, error) {
	record, err := s.receiptRepo.GetByIDForUser(ctx, receiptID, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return record, nil
}

// RenderPublic renders any receipt as plain text for the unauthenticated
// printable view. Ownership is deliberately not checked here.
func (s *ReceiptService) RenderPublic(ctx context.Context, receiptID uuid.UUID, lineLength int) (string, error) {
	record, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", apperror.NewNotFoundError("Receipt")
	}
	return s.render(record, lineLength), nil
}

// Render produces the printable text of an already loaded receipt using the
// configured layout and line length.
func (s *ReceiptService) Render(record *entity.Receipt) string {
	return s.render(record, s.layout.LineLength)
}

func (s *ReceiptService) render(record *entity.Receipt, lineLength int) string {
	printable := receipt.Printable{
		Payment: receipt.Payment{
			Type:   record.PaymentType,
			Amount: record.PaymentAmount,
		},
		Total:     record.Total,
		Rest:      record.Rest,
		CreatedAt: record.CreatedAt,
	}
	for _, item := range record.Items {
		printable.Items = append(printable.Items, receipt.ComputedLineItem{
			LineItem: receipt.LineItem{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			},
			Total: item.Total,
		})
	}

	return receipt.Format(printable, lineLength, s.layout.Header, s.layout.Footer)
}
