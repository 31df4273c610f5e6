// file: internals/features/finance/structures/dto/batch_fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/structures/model"
)

////////////////////////////////////////////////////////////////////////////////
// BATCH FEE STRUCTURES — DTO
////////////////////////////////////////////////////////////////////////////////

type BatchFeeLineItemInputDTO struct {
	FeeComponentID uuid.UUID `json:"fee_component_id" validate:"required"`
	Amount         int       `json:"amount" validate:"min=0"`
}

type BatchFeeStructureCreateDTO struct {
	BatchFeeStructureBatchID   uuid.UUID                  `json:"batch_fee_structure_batch_id" validate:"required"`
	BatchFeeStructureSessionID uuid.UUID                  `json:"batch_fee_structure_session_id" validate:"required"`
	BatchFeeStructureName      string                     `json:"batch_fee_structure_name" validate:"required,min=2,max=120"`
	LineItems                  []BatchFeeLineItemInputDTO `json:"line_items" validate:"required,min=1,dive"`
}

// Supersede: new line items (and optionally a new name) for the same
// batch+session; the old structure row is preserved.
type BatchFeeStructureSupersedeDTO struct {
	BatchFeeStructureName *string                    `json:"batch_fee_structure_name,omitempty" validate:"omitempty,min=2,max=120"`
	LineItems             []BatchFeeLineItemInputDTO `json:"line_items" validate:"required,min=1,dive"`
}

type BatchFeeLineItemResponse struct {
	BatchFeeLineItemID                    uuid.UUID `json:"batch_fee_line_item_id"`
	BatchFeeLineItemFeeComponentID        uuid.UUID `json:"batch_fee_line_item_fee_component_id"`
	BatchFeeLineItemComponentNameSnapshot string    `json:"batch_fee_line_item_component_name_snapshot"`
	BatchFeeLineItemAmount                int       `json:"batch_fee_line_item_amount"`
}

type BatchFeeStructureResponse struct {
	BatchFeeStructureID             uuid.UUID                  `json:"batch_fee_structure_id"`
	BatchFeeStructureOrgID          uuid.UUID                  `json:"batch_fee_structure_org_id"`
	BatchFeeStructureBatchID        uuid.UUID                  `json:"batch_fee_structure_batch_id"`
	BatchFeeStructureSessionID      uuid.UUID                  `json:"batch_fee_structure_session_id"`
	BatchFeeStructureName           string                     `json:"batch_fee_structure_name"`
	BatchFeeStructureTotalAmount    int                        `json:"batch_fee_structure_total_amount"`
	BatchFeeStructureIsSuperseded   bool                       `json:"batch_fee_structure_is_superseded"`
	BatchFeeStructureSupersededByID *uuid.UUID                 `json:"batch_fee_structure_superseded_by_id,omitempty"`
	BatchFeeStructureCreatedAt      time.Time                  `json:"batch_fee_structure_created_at"`
	BatchFeeStructureUpdatedAt      time.Time                  `json:"batch_fee_structure_updated_at"`
	LineItems                       []BatchFeeLineItemResponse `json:"line_items,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToBatchFeeLineItemResponse(m model.BatchFeeLineItem) BatchFeeLineItemResponse {
	return BatchFeeLineItemResponse{
		BatchFeeLineItemID:                    m.BatchFeeLineItemID,
		BatchFeeLineItemFeeComponentID:        m.BatchFeeLineItemFeeComponentID,
		BatchFeeLineItemComponentNameSnapshot: m.BatchFeeLineItemComponentNameSnapshot,
		BatchFeeLineItemAmount:                m.BatchFeeLineItemAmount,
	}
}

func ToBatchFeeStructureResponse(m model.BatchFeeStructure) BatchFeeStructureResponse {
	resp := BatchFeeStructureResponse{
		BatchFeeStructureID:             m.BatchFeeStructureID,
		BatchFeeStructureOrgID:          m.BatchFeeStructureOrgID,
		BatchFeeStructureBatchID:        m.BatchFeeStructureBatchID,
		BatchFeeStructureSessionID:      m.BatchFeeStructureSessionID,
		BatchFeeStructureName:           m.BatchFeeStructureName,
		BatchFeeStructureTotalAmount:    m.BatchFeeStructureTotalAmount,
		BatchFeeStructureIsSuperseded:   m.BatchFeeStructureIsSuperseded,
		BatchFeeStructureSupersededByID: m.BatchFeeStructureSupersededByID,
		BatchFeeStructureCreatedAt:      m.BatchFeeStructureCreatedAt,
		BatchFeeStructureUpdatedAt:      m.BatchFeeStructureUpdatedAt,
	}
	for _, li := range m.LineItems {
		resp.LineItems = append(resp.LineItems, ToBatchFeeLineItemResponse(li))
	}
	return resp
}

func ToBatchFeeStructureResponses(ms []model.BatchFeeStructure) []BatchFeeStructureResponse {
	out := make([]BatchFeeStructureResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBatchFeeStructureResponse(m))
	}
	return out
}
