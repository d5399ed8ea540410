package request

import "github.com/shopspring/decimal"

// ProductRequest is one line item in a receipt creation request. Prices and
// quantities must be numeric; signs and magnitudes are not policed here.
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PaymentRequest describes the tendered payment.
type PaymentRequest struct {
	Type   string          `json:"type" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateReceiptRequest represents a receipt creation request
type CreateReceiptRequest struct {
	Products []ProductRequest `json:"products" binding:"required,dive"`
	Payment  PaymentRequest   `json:"payment" binding:"required"`
}

// ListReceiptsQuery holds the receipt listing filters. Dates use
// YYYY-MM-DD or RFC 3339; totals are plain decimal strings.
type ListReceiptsQuery struct {
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	MinTotal    string `form:"min_total"`
	MaxTotal    string `form:"max_total"`
	PaymentType string `form:"payment_type"`
}

// PublicReceiptQuery holds the public rendering parameters.
type PublicReceiptQuery struct {
	LineLength *int `form:"line_length"`
}
