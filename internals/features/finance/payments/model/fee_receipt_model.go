// file: internals/features/finance/payments/model/fee_receipt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — fee_receipts
   One receipt per payment. The snapshot JSONB
   freezes everything a printed receipt shows
   (student, components, amounts) at issue time,
   so later edits to master data can never change
   what an issued receipt says.
============================================== */

type FeeReceipt struct {
	// PK
	FeeReceiptID uuid.UUID `gorm:"column:fee_receipt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_receipt_id"`

	// Tenant
	FeeReceiptOrgID uuid.UUID `gorm:"column:fee_receipt_org_id;type:uuid;not null;index;uniqueIndex:uniq_fee_receipt_org_no,priority:1" json:"fee_receipt_org_id"`

	// Human-facing, sequential per org per year: RCP-2026-000123
	FeeReceiptNo string `gorm:"column:fee_receipt_no;type:varchar(24);not null;uniqueIndex:uniq_fee_receipt_org_no,priority:2" json:"fee_receipt_no"`

	// Source payment (1:1)
	FeeReceiptPaymentID uuid.UUID `gorm:"column:fee_receipt_payment_id;type:uuid;not null;uniqueIndex" json:"fee_receipt_payment_id"`

	FeeReceiptInstallmentID uuid.UUID `gorm:"column:fee_receipt_installment_id;type:uuid;not null;index" json:"fee_receipt_installment_id"`
	FeeReceiptStudentID     uuid.UUID `gorm:"column:fee_receipt_student_id;type:uuid;not null;index" json:"fee_receipt_student_id"`

	FeeReceiptAmount   int       `gorm:"column:fee_receipt_amount;type:bigint;not null;check:fee_receipt_amount>0" json:"fee_receipt_amount"`
	FeeReceiptIssuedAt time.Time `gorm:"column:fee_receipt_issued_at;type:timestamptz;not null;default:now()" json:"fee_receipt_issued_at"`

	// Frozen at issue time, never rewritten
	FeeReceiptSnapshot datatypes.JSON `gorm:"column:fee_receipt_snapshot;type:jsonb;not null" json:"fee_receipt_snapshot"`

	// Audit
	FeeReceiptCreatedAt time.Time `gorm:"column:fee_receipt_created_at;type:timestamptz;not null;default:now()" json:"fee_receipt_created_at"`
}

func (FeeReceipt) TableName() string { return "fee_receipts" }

func (m *FeeReceipt) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeReceiptCreatedAt.IsZero() {
		m.FeeReceiptCreatedAt = now
	}
	if m.FeeReceiptIssuedAt.IsZero() {
		m.FeeReceiptIssuedAt = now
	}
	return nil
}
