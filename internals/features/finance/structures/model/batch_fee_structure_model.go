// file: internals/features/finance/structures/model/batch_fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — batch_fee_structures
   Default fee template per (batch, session).
   Edits supersede, they never mutate: students
   already anchored to the old structure keep
   their audit trail.
============================================== */

type BatchFeeStructure struct {
	// PK
	BatchFeeStructureID uuid.UUID `gorm:"column:batch_fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_fee_structure_id"`

	// Tenant & anchor
	BatchFeeStructureOrgID     uuid.UUID `gorm:"column:batch_fee_structure_org_id;type:uuid;not null;index" json:"batch_fee_structure_org_id"`
	BatchFeeStructureBatchID   uuid.UUID `gorm:"column:batch_fee_structure_batch_id;type:uuid;not null;index:idx_batch_fee_structure_batch_session,priority:1" json:"batch_fee_structure_batch_id"`
	BatchFeeStructureSessionID uuid.UUID `gorm:"column:batch_fee_structure_session_id;type:uuid;not null;index:idx_batch_fee_structure_batch_session,priority:2" json:"batch_fee_structure_session_id"`

	BatchFeeStructureName string `gorm:"column:batch_fee_structure_name;type:varchar(120);not null" json:"batch_fee_structure_name"`

	// Recomputed from line items, never client-supplied
	BatchFeeStructureTotalAmount int `gorm:"column:batch_fee_structure_total_amount;type:bigint;not null;check:batch_fee_structure_total_amount>=0" json:"batch_fee_structure_total_amount"`

	// Supersede chain
	BatchFeeStructureIsSuperseded   bool       `gorm:"column:batch_fee_structure_is_superseded;type:boolean;not null;default:false;index" json:"batch_fee_structure_is_superseded"`
	BatchFeeStructureSupersededByID *uuid.UUID `gorm:"column:batch_fee_structure_superseded_by_id;type:uuid" json:"batch_fee_structure_superseded_by_id,omitempty"`

	// Audit
	BatchFeeStructureCreatedAt time.Time `gorm:"column:batch_fee_structure_created_at;type:timestamptz;not null;default:now()" json:"batch_fee_structure_created_at"`
	BatchFeeStructureUpdatedAt time.Time `gorm:"column:batch_fee_structure_updated_at;type:timestamptz;not null;default:now()" json:"batch_fee_structure_updated_at"`

	// Relations
	LineItems []BatchFeeLineItem `gorm:"foreignKey:BatchFeeLineItemStructureID;references:BatchFeeStructureID" json:"line_items,omitempty"`
}

func (BatchFeeStructure) TableName() string { return "batch_fee_structures" }

func (m *BatchFeeStructure) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BatchFeeStructureCreatedAt.IsZero() {
		m.BatchFeeStructureCreatedAt = now
	}
	m.BatchFeeStructureUpdatedAt = now
	return nil
}

func (m *BatchFeeStructure) BeforeUpdate(tx *gorm.DB) error {
	m.BatchFeeStructureUpdatedAt = time.Now()
	return nil
}

/* ==============================================
   MODEL — batch_fee_line_items
============================================== */

type BatchFeeLineItem struct {
	// PK
	BatchFeeLineItemID uuid.UUID `gorm:"column:batch_fee_line_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_fee_line_item_id"`

	// FK → batch_fee_structures
	BatchFeeLineItemStructureID uuid.UUID `gorm:"column:batch_fee_line_item_structure_id;type:uuid;not null;index" json:"batch_fee_line_item_structure_id"`

	// FK → fee_components (by reference; components are never hard-deleted)
	BatchFeeLineItemFeeComponentID uuid.UUID `gorm:"column:batch_fee_line_item_fee_component_id;type:uuid;not null;index" json:"batch_fee_line_item_fee_component_id"`

	// Snapshot so renames don't rewrite history
	BatchFeeLineItemComponentNameSnapshot string `gorm:"column:batch_fee_line_item_component_name_snapshot;type:varchar(80);not null" json:"batch_fee_line_item_component_name_snapshot"`

	// Smallest currency unit
	BatchFeeLineItemAmount int `gorm:"column:batch_fee_line_item_amount;type:bigint;not null;check:batch_fee_line_item_amount>=0" json:"batch_fee_line_item_amount"`

	BatchFeeLineItemCreatedAt time.Time `gorm:"column:batch_fee_line_item_created_at;type:timestamptz;not null;default:now()" json:"batch_fee_line_item_created_at"`
}

func (BatchFeeLineItem) TableName() string { return "batch_fee_line_items" }
