// file: internals/features/finance/components/dto/fee_component_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/components/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE COMPONENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeComponentCreateDTO struct {
	FeeComponentName        string  `json:"fee_component_name" validate:"required,min=2,max=80"`
	FeeComponentType        string  `json:"fee_component_type" validate:"required,oneof=tuition transport lab library exam hostel admission other"`
	FeeComponentDescription *string `json:"fee_component_description,omitempty"`
}

// Update (partial) — type is part of the identity of historical line
// items and is not editable.
type FeeComponentUpdateDTO struct {
	FeeComponentName        *string `json:"fee_component_name,omitempty" validate:"omitempty,min=2,max=80"`
	FeeComponentDescription *string `json:"fee_component_description,omitempty"`
}

type FeeComponentSetActiveDTO struct {
	FeeComponentIsActive bool `json:"fee_component_is_active"`
}

type FeeComponentResponse struct {
	FeeComponentID          uuid.UUID `json:"fee_component_id"`
	FeeComponentOrgID       uuid.UUID `json:"fee_component_org_id"`
	FeeComponentName        string    `json:"fee_component_name"`
	FeeComponentType        string    `json:"fee_component_type"`
	FeeComponentDescription *string   `json:"fee_component_description,omitempty"`
	FeeComponentIsActive    bool      `json:"fee_component_is_active"`
	FeeComponentCreatedAt   time.Time `json:"fee_component_created_at"`
	FeeComponentUpdatedAt   time.Time `json:"fee_component_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToFeeComponentResponse(m model.FeeComponent) FeeComponentResponse {
	return FeeComponentResponse{
		FeeComponentID:          m.FeeComponentID,
		FeeComponentOrgID:       m.FeeComponentOrgID,
		FeeComponentName:        m.FeeComponentName,
		FeeComponentType:        string(m.FeeComponentType),
		FeeComponentDescription: m.FeeComponentDescription,
		FeeComponentIsActive:    m.FeeComponentIsActive,
		FeeComponentCreatedAt:   m.FeeComponentCreatedAt,
		FeeComponentUpdatedAt:   m.FeeComponentUpdatedAt,
	}
}

func ToFeeComponentResponses(ms []model.FeeComponent) []FeeComponentResponse {
	out := make([]FeeComponentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeComponentResponse(m))
	}
	return out
}
