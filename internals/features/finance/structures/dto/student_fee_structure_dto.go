// file: internals/features/finance/structures/dto/student_fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/finance/structures/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENT FEE STRUCTURES — DTO
////////////////////////////////////////////////////////////////////////////////

type CustomDiscountDTO struct {
	Type    string  `json:"type" validate:"required,oneof=percentage fixed_amount"`
	Value   int     `json:"value" validate:"min=0"`
	Remarks *string `json:"remarks,omitempty"`
}

type StudentFeeLineItemInputDTO struct {
	FeeComponentID uuid.UUID `json:"fee_component_id" validate:"required"`
	OriginalAmount int       `json:"original_amount" validate:"min=0"`
	// optional; defaults to original_amount when omitted
	AdjustedAmount *int `json:"adjusted_amount,omitempty" validate:"omitempty,min=0"`
}

// Create: source=batch_default copies the referenced batch structure;
// source=custom takes explicit line items.
type StudentFeeStructureCreateDTO struct {
	StudentFeeStructureStudentID uuid.UUID `json:"student_fee_structure_student_id" validate:"required"`
	StudentFeeStructureSessionID uuid.UUID `json:"student_fee_structure_session_id" validate:"required"`
	StudentFeeStructureSource    string    `json:"student_fee_structure_source" validate:"required,oneof=batch_default custom"`

	BatchFeeStructureID *uuid.UUID                   `json:"batch_fee_structure_id,omitempty"`
	LineItems           []StudentFeeLineItemInputDTO `json:"line_items,omitempty" validate:"omitempty,min=1,dive"`

	ScholarshipAmount int                `json:"scholarship_amount" validate:"min=0"`
	CustomDiscount    *CustomDiscountDTO `json:"custom_discount,omitempty"`
}

type StudentFeeLineItemWaiveDTO struct {
	// omitted = full waiver (adjusted 0)
	AdjustedAmount *int   `json:"adjusted_amount,omitempty" validate:"omitempty,min=0"`
	WaiverReason   string `json:"waiver_reason" validate:"required,min=3"`
}

type StudentFeeLineItemResponse struct {
	StudentFeeLineItemID                    uuid.UUID `json:"student_fee_line_item_id"`
	StudentFeeLineItemFeeComponentID        uuid.UUID `json:"student_fee_line_item_fee_component_id"`
	StudentFeeLineItemComponentNameSnapshot string    `json:"student_fee_line_item_component_name_snapshot"`
	StudentFeeLineItemOriginalAmount        int       `json:"student_fee_line_item_original_amount"`
	StudentFeeLineItemAdjustedAmount        int       `json:"student_fee_line_item_adjusted_amount"`
	StudentFeeLineItemWaived                bool      `json:"student_fee_line_item_waived"`
	StudentFeeLineItemWaiverReason          *string   `json:"student_fee_line_item_waiver_reason,omitempty"`
}

type StudentFeeStructureResponse struct {
	StudentFeeStructureID        uuid.UUID  `json:"student_fee_structure_id"`
	StudentFeeStructureOrgID     uuid.UUID  `json:"student_fee_structure_org_id"`
	StudentFeeStructureStudentID uuid.UUID  `json:"student_fee_structure_student_id"`
	StudentFeeStructureSessionID uuid.UUID  `json:"student_fee_structure_session_id"`
	StudentFeeStructureSource    string     `json:"student_fee_structure_source"`
	BatchFeeStructureID          *uuid.UUID `json:"batch_fee_structure_id,omitempty"`

	StudentFeeStructureGrossAmount       int     `json:"student_fee_structure_gross_amount"`
	StudentFeeStructureScholarshipAmount int     `json:"student_fee_structure_scholarship_amount"`
	StudentFeeStructureDiscountType      *string `json:"student_fee_structure_discount_type,omitempty"`
	StudentFeeStructureDiscountValue     *int    `json:"student_fee_structure_discount_value,omitempty"`
	StudentFeeStructureDiscountAmount    int     `json:"student_fee_structure_discount_amount"`
	StudentFeeStructureDiscountRemarks   *string `json:"student_fee_structure_discount_remarks,omitempty"`
	StudentFeeStructureNetAmount         int     `json:"student_fee_structure_net_amount"`

	StudentFeeStructureInstallmentsGenerated bool `json:"student_fee_structure_installments_generated"`

	StudentFeeStructureCreatedAt time.Time `json:"student_fee_structure_created_at"`
	StudentFeeStructureUpdatedAt time.Time `json:"student_fee_structure_updated_at"`

	LineItems []StudentFeeLineItemResponse `json:"line_items,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToStudentFeeLineItemResponse(m model.StudentFeeLineItem) StudentFeeLineItemResponse {
	return StudentFeeLineItemResponse{
		StudentFeeLineItemID:                    m.StudentFeeLineItemID,
		StudentFeeLineItemFeeComponentID:        m.StudentFeeLineItemFeeComponentID,
		StudentFeeLineItemComponentNameSnapshot: m.StudentFeeLineItemComponentNameSnapshot,
		StudentFeeLineItemOriginalAmount:        m.StudentFeeLineItemOriginalAmount,
		StudentFeeLineItemAdjustedAmount:        m.StudentFeeLineItemAdjustedAmount,
		StudentFeeLineItemWaived:                m.StudentFeeLineItemWaived,
		StudentFeeLineItemWaiverReason:          m.StudentFeeLineItemWaiverReason,
	}
}

func ToStudentFeeStructureResponse(m model.StudentFeeStructure) StudentFeeStructureResponse {
	var discountType *string
	if m.StudentFeeStructureDiscountType != nil {
		s := string(*m.StudentFeeStructureDiscountType)
		discountType = &s
	}
	resp := StudentFeeStructureResponse{
		StudentFeeStructureID:                    m.StudentFeeStructureID,
		StudentFeeStructureOrgID:                 m.StudentFeeStructureOrgID,
		StudentFeeStructureStudentID:             m.StudentFeeStructureStudentID,
		StudentFeeStructureSessionID:             m.StudentFeeStructureSessionID,
		StudentFeeStructureSource:                string(m.StudentFeeStructureSource),
		BatchFeeStructureID:                      m.StudentFeeStructureBatchFeeStructureID,
		StudentFeeStructureGrossAmount:           m.StudentFeeStructureGrossAmount,
		StudentFeeStructureScholarshipAmount:     m.StudentFeeStructureScholarshipAmount,
		StudentFeeStructureDiscountType:          discountType,
		StudentFeeStructureDiscountValue:         m.StudentFeeStructureDiscountValue,
		StudentFeeStructureDiscountAmount:        m.StudentFeeStructureDiscountAmount,
		StudentFeeStructureDiscountRemarks:       m.StudentFeeStructureDiscountRemarks,
		StudentFeeStructureNetAmount:             m.StudentFeeStructureNetAmount,
		StudentFeeStructureInstallmentsGenerated: m.StudentFeeStructureInstallmentsGenerated,
		StudentFeeStructureCreatedAt:             m.StudentFeeStructureCreatedAt,
		StudentFeeStructureUpdatedAt:             m.StudentFeeStructureUpdatedAt,
	}
	for _, li := range m.LineItems {
		resp.LineItems = append(resp.LineItems, ToStudentFeeLineItemResponse(li))
	}
	return resp
}

func ToStudentFeeStructureResponses(ms []model.StudentFeeStructure) []StudentFeeStructureResponse {
	out := make([]StudentFeeStructureResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentFeeStructureResponse(m))
	}
	return out
}
