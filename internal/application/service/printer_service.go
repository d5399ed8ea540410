package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/okravets/kasa-api/pkg/apperror"
	"github.com/okravets/kasa-api/pkg/printer"
)

// PrinterService sends rendered receipts to the configured thermal printer.
type PrinterService struct {
	printer        printer.Printer
	receiptService *ReceiptService
	printerType    string
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, receiptService *ReceiptService, printerType string) *PrinterService {
	return &PrinterService{
		printer:        p,
		receiptService: receiptService,
		printerType:    printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt renders the user's receipt and sends it to the printer.
// The rendered text is returned either way, so callers can show what was
// (or would have been) printed.
func (s *PrinterService) PrintReceipt(ctx context.Context, userID, receiptID uuid.UUID) (string, error) {
	record, err := s.receiptService.Get(ctx, userID, receiptID)
	if err != nil {
		return "", err
	}

	text := s.receiptService.Render(record)

	data := printer.EncodeJob(text, printer.CodePagePC866)
	if err := s.printer.Print(data); err != nil {
		slog.Error("Printer error", "receipt_id", receiptID, "error", err)
		return text, apperror.NewAppError(http.StatusBadGateway, "Failed to print receipt")
	}

	return text, nil
}
