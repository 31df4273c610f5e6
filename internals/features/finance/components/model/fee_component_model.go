// file: internals/features/finance/components/model/fee_component_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — fee component type
============================== */

type FeeComponentType string

const (
	FeeComponentTypeTuition   FeeComponentType = "tuition"
	FeeComponentTypeTransport FeeComponentType = "transport"
	FeeComponentTypeLab       FeeComponentType = "lab"
	FeeComponentTypeLibrary   FeeComponentType = "library"
	FeeComponentTypeExam      FeeComponentType = "exam"
	FeeComponentTypeHostel    FeeComponentType = "hostel"
	FeeComponentTypeAdmission FeeComponentType = "admission"
	FeeComponentTypeOther     FeeComponentType = "other"
)

func (t FeeComponentType) Valid() bool {
	switch t {
	case FeeComponentTypeTuition, FeeComponentTypeTransport, FeeComponentTypeLab,
		FeeComponentTypeLibrary, FeeComponentTypeExam, FeeComponentTypeHostel,
		FeeComponentTypeAdmission, FeeComponentTypeOther:
		return true
	}
	return false
}

/* ==============================================
   MODEL — fee_components
   Historical structures reference components by
   id, so rows are deactivated, never deleted.
============================================== */

type FeeComponent struct {
	// PK
	FeeComponentID uuid.UUID `gorm:"column:fee_component_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_component_id"`

	// Tenant
	FeeComponentOrgID uuid.UUID `gorm:"column:fee_component_org_id;type:uuid;not null;index;uniqueIndex:uniq_fee_component_org_name,priority:1" json:"fee_component_org_id"`

	// Identity
	FeeComponentName string           `gorm:"column:fee_component_name;type:varchar(80);not null;uniqueIndex:uniq_fee_component_org_name,priority:2" json:"fee_component_name"`
	FeeComponentType FeeComponentType `gorm:"column:fee_component_type;type:varchar(20);not null;index" json:"fee_component_type"`

	FeeComponentDescription *string `gorm:"column:fee_component_description;type:text" json:"fee_component_description,omitempty"`

	// Soft toggle only — no DeletedAt on purpose
	FeeComponentIsActive bool `gorm:"column:fee_component_is_active;type:boolean;not null;default:true;index" json:"fee_component_is_active"`

	// Audit
	FeeComponentCreatedAt time.Time `gorm:"column:fee_component_created_at;type:timestamptz;not null;default:now()" json:"fee_component_created_at"`
	FeeComponentUpdatedAt time.Time `gorm:"column:fee_component_updated_at;type:timestamptz;not null;default:now()" json:"fee_component_updated_at"`
}

func (FeeComponent) TableName() string { return "fee_components" }

func (m *FeeComponent) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeComponentCreatedAt.IsZero() {
		m.FeeComponentCreatedAt = now
	}
	m.FeeComponentUpdatedAt = now
	return nil
}

func (m *FeeComponent) BeforeUpdate(tx *gorm.DB) error {
	m.FeeComponentUpdatedAt = time.Now()
	return nil
}
