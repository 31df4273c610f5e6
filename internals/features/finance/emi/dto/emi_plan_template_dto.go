// file: internals/features/finance/emi/dto/emi_plan_template_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/emi/model"
)

////////////////////////////////////////////////////////////////////////////////
// EMI PLAN TEMPLATES — DTO
////////////////////////////////////////////////////////////////////////////////

type EMISplitDTO struct {
	Percent          int `json:"percent" validate:"min=0,max=100"`
	DueDaysFromStart int `json:"due_days_from_start" validate:"min=0"`
}

type EMIPlanTemplateCreateDTO struct {
	EMIPlanTemplateName string        `json:"emi_plan_template_name" validate:"required,min=2,max=80"`
	SplitConfig         []EMISplitDTO `json:"split_config" validate:"required,min=1,dive"`
	IsDefault           bool          `json:"is_default"`
}

type EMIPlanTemplateUpdateDTO struct {
	EMIPlanTemplateName *string       `json:"emi_plan_template_name,omitempty" validate:"omitempty,min=2,max=80"`
	SplitConfig         []EMISplitDTO `json:"split_config,omitempty" validate:"omitempty,min=1,dive"`
	IsActive            *bool         `json:"is_active,omitempty"`
}

type EMIPlanTemplateResponse struct {
	EMIPlanTemplateID               uuid.UUID     `json:"emi_plan_template_id"`
	EMIPlanTemplateOrgID            uuid.UUID     `json:"emi_plan_template_org_id"`
	EMIPlanTemplateName             string        `json:"emi_plan_template_name"`
	EMIPlanTemplateInstallmentCount int           `json:"emi_plan_template_installment_count"`
	SplitConfig                     []EMISplitDTO `json:"split_config"`
	EMIPlanTemplateIsDefault        bool          `json:"emi_plan_template_is_default"`
	EMIPlanTemplateIsActive         bool          `json:"emi_plan_template_is_active"`
	EMIPlanTemplateCreatedAt        time.Time     `json:"emi_plan_template_created_at"`
	EMIPlanTemplateUpdatedAt        time.Time     `json:"emi_plan_template_updated_at"`
}

// Generate request: net amount comes from the structure, never the caller.
type GenerateScheduleDTO struct {
	StudentFeeStructureID uuid.UUID `json:"student_fee_structure_id" validate:"required"`
	EMIPlanTemplateID     uuid.UUID `json:"emi_plan_template_id" validate:"required"`
	StartDate             string    `json:"start_date" validate:"required"` // 2006-01-02
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToEMISplits(in []EMISplitDTO) []model.EMISplit {
	out := make([]model.EMISplit, 0, len(in))
	for _, s := range in {
		out = append(out, model.EMISplit{Percent: s.Percent, DueDaysFromStart: s.DueDaysFromStart})
	}
	return out
}

func FromEMISplits(in []model.EMISplit) []EMISplitDTO {
	out := make([]EMISplitDTO, 0, len(in))
	for _, s := range in {
		out = append(out, EMISplitDTO{Percent: s.Percent, DueDaysFromStart: s.DueDaysFromStart})
	}
	return out
}

func ToEMIPlanTemplateResponse(m model.EMIPlanTemplate) (EMIPlanTemplateResponse, error) {
	splits, err := m.Splits()
	if err != nil {
		return EMIPlanTemplateResponse{}, err
	}
	return EMIPlanTemplateResponse{
		EMIPlanTemplateID:               m.EMIPlanTemplateID,
		EMIPlanTemplateOrgID:            m.EMIPlanTemplateOrgID,
		EMIPlanTemplateName:             m.EMIPlanTemplateName,
		EMIPlanTemplateInstallmentCount: m.EMIPlanTemplateInstallmentCount,
		SplitConfig:                     FromEMISplits(splits),
		EMIPlanTemplateIsDefault:        m.EMIPlanTemplateIsDefault,
		EMIPlanTemplateIsActive:         m.EMIPlanTemplateIsActive,
		EMIPlanTemplateCreatedAt:        m.EMIPlanTemplateCreatedAt,
		EMIPlanTemplateUpdatedAt:        m.EMIPlanTemplateUpdatedAt,
	}, nil
}
