// file: internals/features/finance/structures/controller/student_fee_portal_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	instdto "vidyalaya_backend/internals/features/finance/installments/dto"
	instmodel "vidyalaya_backend/internals/features/finance/installments/model"
	instservice "vidyalaya_backend/internals/features/finance/installments/service"
	"vidyalaya_backend/internals/features/finance/structures/dto"
	"vidyalaya_backend/internals/features/finance/structures/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

/* ==============================================
   Parent/student portal — read only. The student
   id always comes from the token, never from a
   query param, so one family can never browse
   another family's ledger.
============================================== */

type StudentFeePortalHandler struct {
	DB *gorm.DB
}

// FeeSummaryResponse is the single payload the portal fee screen renders.
type FeeSummaryResponse struct {
	Structure dto.StudentFeeStructureResponse  `json:"structure"`
	Timeline  []instdto.FeeInstallmentResponse `json:"timeline"`
	NextDue   *instdto.FeeInstallmentResponse  `json:"next_due,omitempty"`
	Totals    instservice.Summary              `json:"totals"`
}

// -----------------------------------------
// MyFeeSummary (GET /my-fees?session_id=optional)
// -----------------------------------------
func (h *StudentFeePortalHandler) MyFeeSummary(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	studentID, err := helperAuth.GetStudentID(c)
	if err != nil {
		return err
	}
	today := helper.Today()

	q := h.DB.WithContext(c.Context()).
		Preload("LineItems").
		Where("student_fee_structure_org_id = ? AND student_fee_structure_student_id = ?", orgID, studentID)
	if v := c.Query("session_id"); v != "" {
		sessionID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid session_id")
		}
		q = q.Where("student_fee_structure_session_id = ?", sessionID)
	}

	var structures []model.StudentFeeStructure
	if err := q.Order("student_fee_structure_created_at DESC").
		Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(structures) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "no fee structure found")
	}

	out := make([]FeeSummaryResponse, 0, len(structures))
	for _, s := range structures {
		var rows []instmodel.FeeInstallment
		if err := h.DB.WithContext(c.Context()).
			Where("fee_installment_structure_id = ?", s.StudentFeeStructureID).
			Order("fee_installment_number ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}

		item := FeeSummaryResponse{
			Structure: dto.ToStudentFeeStructureResponse(s),
			Timeline:  instdto.ToFeeInstallmentResponses(rows, today),
			Totals:    instservice.Summarize(rows, today),
		}
		if next := instservice.NextDue(rows); next != nil {
			resp := instdto.ToFeeInstallmentResponse(*next, today)
			item.NextDue = &resp
		}
		out = append(out, item)
	}

	return helper.JsonOK(c, "fee summary", out)
}
