// file: internals/features/finance/installments/model/fee_installment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — installment status
   Derived on read from paid/amount/due/today;
   the column is only a cache of that derivation.
============================== */

type InstallmentStatus string

const (
	InstallmentStatusUpcoming InstallmentStatus = "upcoming"
	InstallmentStatusDue      InstallmentStatus = "due"
	InstallmentStatusPartial  InstallmentStatus = "partial"
	InstallmentStatusOverdue  InstallmentStatus = "overdue"
	InstallmentStatusPaid     InstallmentStatus = "paid"
)

/* ==============================
   ENUM — payment link status
   Owned by the external payment-link collaborator;
   stored for display only.
============================== */

type PaymentLinkStatus string

const (
	PaymentLinkStatusActive    PaymentLinkStatus = "active"
	PaymentLinkStatusExpired   PaymentLinkStatus = "expired"
	PaymentLinkStatusPaid      PaymentLinkStatus = "paid"
	PaymentLinkStatusCancelled PaymentLinkStatus = "cancelled"
)

/* ==============================================
   MODEL — fee_installments
   Created once at generation time; amount and
   due_date are immutable afterwards. paid_amount
   and status are mutated only by payment
   application, reminder fields only by the
   dunning collaborator.
============================================== */

type FeeInstallment struct {
	// PK
	FeeInstallmentID uuid.UUID `gorm:"column:fee_installment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_installment_id"`

	// Tenant
	FeeInstallmentOrgID uuid.UUID `gorm:"column:fee_installment_org_id;type:uuid;not null;index" json:"fee_installment_org_id"`

	// Owner (exclusive)
	FeeInstallmentStructureID uuid.UUID `gorm:"column:fee_installment_structure_id;type:uuid;not null;index;uniqueIndex:uniq_fee_installment_structure_number,priority:1" json:"fee_installment_structure_id"`

	FeeInstallmentNumber int `gorm:"column:fee_installment_number;type:smallint;not null;check:fee_installment_number>=1;uniqueIndex:uniq_fee_installment_structure_number,priority:2" json:"fee_installment_number"`

	// Smallest currency unit
	FeeInstallmentAmount     int       `gorm:"column:fee_installment_amount;type:bigint;not null;check:fee_installment_amount>=0" json:"fee_installment_amount"`
	FeeInstallmentDueDate    time.Time `gorm:"column:fee_installment_due_date;type:date;not null;index" json:"fee_installment_due_date"`
	FeeInstallmentPaidAmount int       `gorm:"column:fee_installment_paid_amount;type:bigint;not null;default:0;check:fee_installment_paid_amount>=0" json:"fee_installment_paid_amount"`

	FeeInstallmentStatus InstallmentStatus `gorm:"column:fee_installment_status;type:varchar(20);not null;default:'upcoming';index" json:"fee_installment_status"`

	// Dunning (written only by the reminder collaborator)
	FeeInstallmentReminderSentAt *time.Time `gorm:"column:fee_installment_reminder_sent_at;type:timestamptz" json:"fee_installment_reminder_sent_at,omitempty"`
	FeeInstallmentReminderCount  int        `gorm:"column:fee_installment_reminder_count;type:smallint;not null;default:0" json:"fee_installment_reminder_count"`

	// Display-only mirror of the external payment-link lifecycle
	FeeInstallmentPaymentLinkStatus *PaymentLinkStatus `gorm:"column:fee_installment_payment_link_status;type:varchar(20)" json:"fee_installment_payment_link_status,omitempty"`

	// Audit
	FeeInstallmentCreatedAt time.Time `gorm:"column:fee_installment_created_at;type:timestamptz;not null;default:now()" json:"fee_installment_created_at"`
	FeeInstallmentUpdatedAt time.Time `gorm:"column:fee_installment_updated_at;type:timestamptz;not null;default:now()" json:"fee_installment_updated_at"`
}

func (FeeInstallment) TableName() string { return "fee_installments" }

func (m *FeeInstallment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeInstallmentCreatedAt.IsZero() {
		m.FeeInstallmentCreatedAt = now
	}
	m.FeeInstallmentUpdatedAt = now
	if m.FeeInstallmentStatus == "" {
		m.FeeInstallmentStatus = InstallmentStatusUpcoming
	}
	return nil
}

func (m *FeeInstallment) BeforeUpdate(tx *gorm.DB) error {
	m.FeeInstallmentUpdatedAt = time.Now()
	return nil
}

// RemainingDue is the unpaid slice of this installment.
func (m *FeeInstallment) RemainingDue() int {
	rem := m.FeeInstallmentAmount - m.FeeInstallmentPaidAmount
	if rem < 0 {
		return 0
	}
	return rem
}
