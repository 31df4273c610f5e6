// file: internals/features/finance/installments/dto/fee_installment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/installments/model"
	"vidyalaya_backend/internals/features/finance/installments/service"
	helper "vidyalaya_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// FEE INSTALLMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeInstallmentResponse struct {
	FeeInstallmentID          uuid.UUID `json:"fee_installment_id"`
	FeeInstallmentStructureID uuid.UUID `json:"fee_installment_structure_id"`
	FeeInstallmentNumber      int       `json:"fee_installment_number"`

	FeeInstallmentAmount     int    `json:"fee_installment_amount"`
	FeeInstallmentDueDate    string `json:"fee_installment_due_date"` // 2006-01-02
	FeeInstallmentPaidAmount int    `json:"fee_installment_paid_amount"`
	FeeInstallmentRemaining  int    `json:"fee_installment_remaining"`

	FeeInstallmentStatus string `json:"fee_installment_status"`

	FeeInstallmentReminderSentAt *time.Time `json:"fee_installment_reminder_sent_at,omitempty"`
	FeeInstallmentReminderCount  int        `json:"fee_installment_reminder_count"`

	FeeInstallmentPaymentLinkStatus *string `json:"fee_installment_payment_link_status,omitempty"`

	FeeInstallmentCreatedAt time.Time `json:"fee_installment_created_at"`
	FeeInstallmentUpdatedAt time.Time `json:"fee_installment_updated_at"`
}

type ReminderTouchDTO struct {
	// defaults to now when omitted
	SentAt *time.Time `json:"sent_at,omitempty"`
}

type PaymentLinkStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=active expired paid cancelled"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — statuses are re-derived for today, never echoed from cache
////////////////////////////////////////////////////////////////////////////////

func ToFeeInstallmentResponse(m model.FeeInstallment, today time.Time) FeeInstallmentResponse {
	var linkStatus *string
	if m.FeeInstallmentPaymentLinkStatus != nil {
		s := string(*m.FeeInstallmentPaymentLinkStatus)
		linkStatus = &s
	}
	status := service.DeriveStatus(m.FeeInstallmentAmount, m.FeeInstallmentPaidAmount, m.FeeInstallmentDueDate, today)
	return FeeInstallmentResponse{
		FeeInstallmentID:                m.FeeInstallmentID,
		FeeInstallmentStructureID:       m.FeeInstallmentStructureID,
		FeeInstallmentNumber:            m.FeeInstallmentNumber,
		FeeInstallmentAmount:            m.FeeInstallmentAmount,
		FeeInstallmentDueDate:           helper.FormatDate(m.FeeInstallmentDueDate),
		FeeInstallmentPaidAmount:        m.FeeInstallmentPaidAmount,
		FeeInstallmentRemaining:         m.RemainingDue(),
		FeeInstallmentStatus:            string(status),
		FeeInstallmentReminderSentAt:    m.FeeInstallmentReminderSentAt,
		FeeInstallmentReminderCount:     m.FeeInstallmentReminderCount,
		FeeInstallmentPaymentLinkStatus: linkStatus,
		FeeInstallmentCreatedAt:         m.FeeInstallmentCreatedAt,
		FeeInstallmentUpdatedAt:         m.FeeInstallmentUpdatedAt,
	}
}

func ToFeeInstallmentResponses(ms []model.FeeInstallment, today time.Time) []FeeInstallmentResponse {
	out := make([]FeeInstallmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeInstallmentResponse(m, today))
	}
	return out
}
