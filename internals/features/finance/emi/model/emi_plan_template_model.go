// file: internals/features/finance/emi/model/emi_plan_template_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — emi_plan_templates
   Reusable percentage/day-offset splits. Read-only
   input to schedule generation: no foreign key
   survives past generation, so editing a template
   never retroactively alters existing installments.
============================================== */

// EMISplit is one entry of the ordered split config (stored as JSONB).
type EMISplit struct {
	Percent          int `json:"percent"`
	DueDaysFromStart int `json:"due_days_from_start"`
}

type EMIPlanTemplate struct {
	// PK
	EMIPlanTemplateID uuid.UUID `gorm:"column:emi_plan_template_id;type:uuid;default:gen_random_uuid();primaryKey" json:"emi_plan_template_id"`

	// Tenant
	EMIPlanTemplateOrgID uuid.UUID `gorm:"column:emi_plan_template_org_id;type:uuid;not null;index" json:"emi_plan_template_org_id"`

	EMIPlanTemplateName             string         `gorm:"column:emi_plan_template_name;type:varchar(80);not null" json:"emi_plan_template_name"`
	EMIPlanTemplateInstallmentCount int            `gorm:"column:emi_plan_template_installment_count;type:smallint;not null;check:emi_plan_template_installment_count>=1" json:"emi_plan_template_installment_count"`
	EMIPlanTemplateSplitConfig      datatypes.JSON `gorm:"column:emi_plan_template_split_config;type:jsonb;not null" json:"emi_plan_template_split_config"`

	EMIPlanTemplateIsDefault bool `gorm:"column:emi_plan_template_is_default;type:boolean;not null;default:false;index" json:"emi_plan_template_is_default"`
	EMIPlanTemplateIsActive  bool `gorm:"column:emi_plan_template_is_active;type:boolean;not null;default:true;index" json:"emi_plan_template_is_active"`

	// Audit
	EMIPlanTemplateCreatedAt time.Time `gorm:"column:emi_plan_template_created_at;type:timestamptz;not null;default:now()" json:"emi_plan_template_created_at"`
	EMIPlanTemplateUpdatedAt time.Time `gorm:"column:emi_plan_template_updated_at;type:timestamptz;not null;default:now()" json:"emi_plan_template_updated_at"`
}

func (EMIPlanTemplate) TableName() string { return "emi_plan_templates" }

func (m *EMIPlanTemplate) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.EMIPlanTemplateCreatedAt.IsZero() {
		m.EMIPlanTemplateCreatedAt = now
	}
	m.EMIPlanTemplateUpdatedAt = now
	return nil
}

func (m *EMIPlanTemplate) BeforeUpdate(tx *gorm.DB) error {
	m.EMIPlanTemplateUpdatedAt = time.Now()
	return nil
}

// Splits decodes the JSONB split config.
func (m *EMIPlanTemplate) Splits() ([]EMISplit, error) {
	var out []EMISplit
	if err := json.Unmarshal(m.EMIPlanTemplateSplitConfig, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetSplits encodes the split config and syncs the installment count.
func (m *EMIPlanTemplate) SetSplits(splits []EMISplit) error {
	raw, err := json.Marshal(splits)
	if err != nil {
		return err
	}
	m.EMIPlanTemplateSplitConfig = datatypes.JSON(raw)
	m.EMIPlanTemplateInstallmentCount = len(splits)
	return nil
}
