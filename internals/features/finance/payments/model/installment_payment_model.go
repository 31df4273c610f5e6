// file: internals/features/finance/payments/model/installment_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — payment mode
============================== */

type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeBank PaymentMode = "bank"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeBank:
		return true
	}
	return false
}

/* ==============================================
   MODEL — installment_payments
   Append-only audit log. Rows are never updated
   or deleted; corrections are modeled as new
   entries. paid_amount on the installment must
   always equal the sum of its rows here.
============================================== */

type InstallmentPayment struct {
	// PK
	InstallmentPaymentID uuid.UUID `gorm:"column:installment_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"installment_payment_id"`

	// Tenant
	InstallmentPaymentOrgID uuid.UUID `gorm:"column:installment_payment_org_id;type:uuid;not null;index" json:"installment_payment_org_id"`

	// Owner
	InstallmentPaymentInstallmentID uuid.UUID `gorm:"column:installment_payment_installment_id;type:uuid;not null;index" json:"installment_payment_installment_id"`

	// Smallest currency unit, strictly positive
	InstallmentPaymentAmount int `gorm:"column:installment_payment_amount;type:bigint;not null;check:installment_payment_amount>0" json:"installment_payment_amount"`

	InstallmentPaymentMode           PaymentMode `gorm:"column:installment_payment_mode;type:varchar(10);not null" json:"installment_payment_mode"`
	InstallmentPaymentTransactionRef *string     `gorm:"column:installment_payment_transaction_ref;type:varchar(120)" json:"installment_payment_transaction_ref,omitempty"`

	InstallmentPaymentReceivedAt time.Time `gorm:"column:installment_payment_received_at;type:timestamptz;not null;index" json:"installment_payment_received_at"`
	InstallmentPaymentReceivedBy uuid.UUID `gorm:"column:installment_payment_received_by;type:uuid;not null" json:"installment_payment_received_by"`

	InstallmentPaymentRemarks *string `gorm:"column:installment_payment_remarks;type:text" json:"installment_payment_remarks,omitempty"`

	// Audit
	InstallmentPaymentCreatedAt time.Time `gorm:"column:installment_payment_created_at;type:timestamptz;not null;default:now()" json:"installment_payment_created_at"`
}

func (InstallmentPayment) TableName() string { return "installment_payments" }

func (m *InstallmentPayment) BeforeCreate(tx *gorm.DB) error {
	if m.InstallmentPaymentCreatedAt.IsZero() {
		m.InstallmentPaymentCreatedAt = time.Now()
	}
	if m.InstallmentPaymentReceivedAt.IsZero() {
		m.InstallmentPaymentReceivedAt = m.InstallmentPaymentCreatedAt
	}
	return nil
}
