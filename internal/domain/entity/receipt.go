package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt is an immutable record of one purchase. It is created once from a
// single calculator pass and never updated; there is no delete endpoint.
type Receipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	Rest          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"rest"`
	PaymentType   string          `gorm:"size:50;not null" json:"-"`
	PaymentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"-"`
	CreatedAt     time.Time       `json:"created_at"`

	// Relationships
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"products"`
}

// PaymentInfo is the nested payment object in API responses.
type PaymentInfo struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// MarshalJSON custom marshaler to nest the payment columns as one object
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	return json.Marshal(&struct {
		Alias
		Payment PaymentInfo `json:"payment"`
	}{
		Alias:   Alias(r),
		Payment: PaymentInfo{Type: r.PaymentType, Amount: r.PaymentAmount},
	})
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one purchased line item on a receipt. Quantity is numeric
// with three decimal places so weighed goods (e.g. 0.355 kg) round-trip
// exactly.
type ReceiptItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"-"`
	ReceiptID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	Total     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	CreatedAt time.Time       `json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
