// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/payments/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS & RECEIPTS — DTO
////////////////////////////////////////////////////////////////////////////////

type ApplyPaymentDTO struct {
	InstallmentID  uuid.UUID `json:"installment_id" validate:"required"`
	Amount         int       `json:"amount" validate:"required"`
	Mode           string    `json:"mode" validate:"required,oneof=cash upi bank"`
	TransactionRef *string   `json:"transaction_ref,omitempty" validate:"omitempty,max=120"`
	Remarks        *string   `json:"remarks,omitempty"`

	// defaults to now when omitted
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

type InstallmentPaymentResponse struct {
	InstallmentPaymentID            uuid.UUID `json:"installment_payment_id"`
	InstallmentPaymentInstallmentID uuid.UUID `json:"installment_payment_installment_id"`
	InstallmentPaymentAmount        int       `json:"installment_payment_amount"`
	InstallmentPaymentMode          string    `json:"installment_payment_mode"`
	InstallmentPaymentTransactionRef *string  `json:"installment_payment_transaction_ref,omitempty"`
	InstallmentPaymentReceivedAt    time.Time `json:"installment_payment_received_at"`
	InstallmentPaymentReceivedBy    uuid.UUID `json:"installment_payment_received_by"`
	InstallmentPaymentRemarks       *string   `json:"installment_payment_remarks,omitempty"`
	InstallmentPaymentCreatedAt     time.Time `json:"installment_payment_created_at"`
}

type FeeReceiptResponse struct {
	FeeReceiptID            uuid.UUID       `json:"fee_receipt_id"`
	FeeReceiptNo            string          `json:"fee_receipt_no"`
	FeeReceiptPaymentID     uuid.UUID       `json:"fee_receipt_payment_id"`
	FeeReceiptInstallmentID uuid.UUID       `json:"fee_receipt_installment_id"`
	FeeReceiptStudentID     uuid.UUID       `json:"fee_receipt_student_id"`
	FeeReceiptAmount        int             `json:"fee_receipt_amount"`
	FeeReceiptIssuedAt      time.Time       `json:"fee_receipt_issued_at"`
	FeeReceiptSnapshot      json.RawMessage `json:"fee_receipt_snapshot"`
}

// ApplyPaymentResult bundles what the cashier screen needs right after
// a payment: the ledger entry, the receipt, and the fresh installment
// state.
type ApplyPaymentResult struct {
	Payment InstallmentPaymentResponse `json:"payment"`
	Receipt FeeReceiptResponse         `json:"receipt"`

	InstallmentPaidAmount int    `json:"installment_paid_amount"`
	InstallmentRemaining  int    `json:"installment_remaining"`
	InstallmentStatus     string `json:"installment_status"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToInstallmentPaymentResponse(m model.InstallmentPayment) InstallmentPaymentResponse {
	return InstallmentPaymentResponse{
		InstallmentPaymentID:             m.InstallmentPaymentID,
		InstallmentPaymentInstallmentID:  m.InstallmentPaymentInstallmentID,
		InstallmentPaymentAmount:         m.InstallmentPaymentAmount,
		InstallmentPaymentMode:           string(m.InstallmentPaymentMode),
		InstallmentPaymentTransactionRef: m.InstallmentPaymentTransactionRef,
		InstallmentPaymentReceivedAt:     m.InstallmentPaymentReceivedAt,
		InstallmentPaymentReceivedBy:     m.InstallmentPaymentReceivedBy,
		InstallmentPaymentRemarks:        m.InstallmentPaymentRemarks,
		InstallmentPaymentCreatedAt:      m.InstallmentPaymentCreatedAt,
	}
}

func ToInstallmentPaymentResponses(ms []model.InstallmentPayment) []InstallmentPaymentResponse {
	out := make([]InstallmentPaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToInstallmentPaymentResponse(m))
	}
	return out
}

func ToFeeReceiptResponse(m model.FeeReceipt) FeeReceiptResponse {
	return FeeReceiptResponse{
		FeeReceiptID:            m.FeeReceiptID,
		FeeReceiptNo:            m.FeeReceiptNo,
		FeeReceiptPaymentID:     m.FeeReceiptPaymentID,
		FeeReceiptInstallmentID: m.FeeReceiptInstallmentID,
		FeeReceiptStudentID:     m.FeeReceiptStudentID,
		FeeReceiptAmount:        m.FeeReceiptAmount,
		FeeReceiptIssuedAt:      m.FeeReceiptIssuedAt,
		FeeReceiptSnapshot:      json.RawMessage(m.FeeReceiptSnapshot),
	}
}

func ToFeeReceiptResponses(ms []model.FeeReceipt) []FeeReceiptResponse {
	out := make([]FeeReceiptResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeReceiptResponse(m))
	}
	return out
}
