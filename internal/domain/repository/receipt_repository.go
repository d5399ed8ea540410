package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okravets/kasa-api/internal/domain/entity"
	"github.com/okravets/kasa-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReceiptRepository defines the interface for receipt data operations.
// Receipts are append-only: there are no update or delete methods.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination  *pagination.PaginationParams
	DateFrom    *time.Time
	DateTo      *time.Time
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
	PaymentType string
}
