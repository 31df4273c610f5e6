// file: internals/features/finance/structures/model/student_fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — structure source
============================== */

type StudentFeeSource string

const (
	StudentFeeSourceBatchDefault StudentFeeSource = "batch_default"
	StudentFeeSourceCustom       StudentFeeSource = "custom"
)

/* ==============================
   ENUM — custom discount type
============================== */

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

/* ==============================================
   MODEL — student_fee_structures
   One per (student, session); frozen once
   installments are generated against it.
============================================== */

type StudentFeeStructure struct {
	// PK
	StudentFeeStructureID uuid.UUID `gorm:"column:student_fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_fee_structure_id"`

	// Tenant & subject
	StudentFeeStructureOrgID     uuid.UUID `gorm:"column:student_fee_structure_org_id;type:uuid;not null;index" json:"student_fee_structure_org_id"`
	StudentFeeStructureStudentID uuid.UUID `gorm:"column:student_fee_structure_student_id;type:uuid;not null;uniqueIndex:uniq_student_fee_structure_student_session,priority:1" json:"student_fee_structure_student_id"`
	StudentFeeStructureSessionID uuid.UUID `gorm:"column:student_fee_structure_session_id;type:uuid;not null;uniqueIndex:uniq_student_fee_structure_student_session,priority:2" json:"student_fee_structure_session_id"`

	// Source
	StudentFeeStructureSource               StudentFeeSource `gorm:"column:student_fee_structure_source;type:varchar(20);not null" json:"student_fee_structure_source"`
	StudentFeeStructureBatchFeeStructureID  *uuid.UUID       `gorm:"column:student_fee_structure_batch_fee_structure_id;type:uuid;index" json:"student_fee_structure_batch_fee_structure_id,omitempty"`

	// Amounts (smallest currency unit) — all recomputed, never edited directly
	StudentFeeStructureGrossAmount       int `gorm:"column:student_fee_structure_gross_amount;type:bigint;not null;check:student_fee_structure_gross_amount>=0" json:"student_fee_structure_gross_amount"`
	StudentFeeStructureScholarshipAmount int `gorm:"column:student_fee_structure_scholarship_amount;type:bigint;not null;default:0;check:student_fee_structure_scholarship_amount>=0" json:"student_fee_structure_scholarship_amount"`

	// Custom discount (optional)
	StudentFeeStructureDiscountType    *DiscountType `gorm:"column:student_fee_structure_discount_type;type:varchar(20)" json:"student_fee_structure_discount_type,omitempty"`
	StudentFeeStructureDiscountValue   *int          `gorm:"column:student_fee_structure_discount_value;type:bigint" json:"student_fee_structure_discount_value,omitempty"`
	StudentFeeStructureDiscountAmount  int           `gorm:"column:student_fee_structure_discount_amount;type:bigint;not null;default:0" json:"student_fee_structure_discount_amount"`
	StudentFeeStructureDiscountRemarks *string       `gorm:"column:student_fee_structure_discount_remarks;type:text" json:"student_fee_structure_discount_remarks,omitempty"`

	StudentFeeStructureNetAmount int `gorm:"column:student_fee_structure_net_amount;type:bigint;not null;check:student_fee_structure_net_amount>=0;index" json:"student_fee_structure_net_amount"`

	// Set by the EMI generator; freezes gross/net edits and waivers
	StudentFeeStructureInstallmentsGenerated bool `gorm:"column:student_fee_structure_installments_generated;type:boolean;not null;default:false;index" json:"student_fee_structure_installments_generated"`

	// Audit
	StudentFeeStructureCreatedAt time.Time `gorm:"column:student_fee_structure_created_at;type:timestamptz;not null;default:now();index" json:"student_fee_structure_created_at"`
	StudentFeeStructureUpdatedAt time.Time `gorm:"column:student_fee_structure_updated_at;type:timestamptz;not null;default:now()" json:"student_fee_structure_updated_at"`

	// Relations
	LineItems []StudentFeeLineItem `gorm:"foreignKey:StudentFeeLineItemStructureID;references:StudentFeeStructureID" json:"line_items,omitempty"`
}

func (StudentFeeStructure) TableName() string { return "student_fee_structures" }

func (m *StudentFeeStructure) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentFeeStructureCreatedAt.IsZero() {
		m.StudentFeeStructureCreatedAt = now
	}
	m.StudentFeeStructureUpdatedAt = now
	return nil
}

func (m *StudentFeeStructure) BeforeUpdate(tx *gorm.DB) error {
	m.StudentFeeStructureUpdatedAt = time.Now()
	return nil
}

/* ==============================================
   MODEL — student_fee_line_items
============================================== */

type StudentFeeLineItem struct {
	// PK
	StudentFeeLineItemID uuid.UUID `gorm:"column:student_fee_line_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_fee_line_item_id"`

	// FK → student_fee_structures
	StudentFeeLineItemStructureID uuid.UUID `gorm:"column:student_fee_line_item_structure_id;type:uuid;not null;index" json:"student_fee_line_item_structure_id"`

	// FK → fee_components
	StudentFeeLineItemFeeComponentID uuid.UUID `gorm:"column:student_fee_line_item_fee_component_id;type:uuid;not null;index" json:"student_fee_line_item_fee_component_id"`

	StudentFeeLineItemComponentNameSnapshot string `gorm:"column:student_fee_line_item_component_name_snapshot;type:varchar(80);not null" json:"student_fee_line_item_component_name_snapshot"`

	// adjusted ≤ original unless explicitly increased (custom source)
	StudentFeeLineItemOriginalAmount int `gorm:"column:student_fee_line_item_original_amount;type:bigint;not null;check:student_fee_line_item_original_amount>=0" json:"student_fee_line_item_original_amount"`
	StudentFeeLineItemAdjustedAmount int `gorm:"column:student_fee_line_item_adjusted_amount;type:bigint;not null;check:student_fee_line_item_adjusted_amount>=0" json:"student_fee_line_item_adjusted_amount"`

	StudentFeeLineItemWaived       bool    `gorm:"column:student_fee_line_item_waived;type:boolean;not null;default:false" json:"student_fee_line_item_waived"`
	StudentFeeLineItemWaiverReason *string `gorm:"column:student_fee_line_item_waiver_reason;type:text" json:"student_fee_line_item_waiver_reason,omitempty"`

	StudentFeeLineItemCreatedAt time.Time `gorm:"column:student_fee_line_item_created_at;type:timestamptz;not null;default:now()" json:"student_fee_line_item_created_at"`
	StudentFeeLineItemUpdatedAt time.Time `gorm:"column:student_fee_line_item_updated_at;type:timestamptz;not null;default:now()" json:"student_fee_line_item_updated_at"`
}

func (StudentFeeLineItem) TableName() string { return "student_fee_line_items" }

func (m *StudentFeeLineItem) BeforeUpdate(tx *gorm.DB) error {
	m.StudentFeeLineItemUpdatedAt = time.Now()
	return nil
}
