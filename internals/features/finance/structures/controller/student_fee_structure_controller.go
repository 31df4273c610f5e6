// file: internals/features/finance/structures/controller/student_fee_structure_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/structures/dto"
	"vidyalaya_backend/internals/features/finance/structures/model"
	"vidyalaya_backend/internals/features/finance/structures/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type StudentFeeStructureHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /student-fee-structures)
// Materializes a student-specific structure, either copied from the
// batch default or fully custom. Does NOT generate installments —
// that is a separate, explicit step on the EMI surface.
// -----------------------------------------
func (h *StudentFeeStructureHandler) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}

	var body dto.StudentFeeStructureCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	source := model.StudentFeeSource(body.StudentFeeStructureSource)
	switch source {
	case model.StudentFeeSourceBatchDefault:
		if body.BatchFeeStructureID == nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "batch_fee_structure_id is required for batch_default source")
		}
	case model.StudentFeeSourceCustom:
		if len(body.LineItems) == 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "line_items are required for custom source")
		}
	}

	var out model.StudentFeeStructure
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// one structure per (student, session)
		var dup int64
		if err := tx.Model(&model.StudentFeeStructure{}).
			Where("student_fee_structure_student_id = ? AND student_fee_structure_session_id = ?",
				body.StudentFeeStructureStudentID, body.StudentFeeStructureSessionID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return errs.ErrDuplicateStructure
		}

		var lines []model.StudentFeeLineItem
		switch source {
		case model.StudentFeeSourceBatchDefault:
			var batch model.BatchFeeStructure
			if err := tx.Preload("LineItems").
				Where("batch_fee_structure_id = ? AND batch_fee_structure_org_id = ?", *body.BatchFeeStructureID, orgID).
				First(&batch).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "batch fee structure not found")
				}
				return err
			}
			if batch.BatchFeeStructureIsSuperseded {
				return errs.ErrStructureSuperseded
			}
			lines = service.LinesFromBatch(batch.LineItems)

		case model.StudentFeeSourceCustom:
			ids := make([]uuid.UUID, 0, len(body.LineItems))
			for _, it := range body.LineItems {
				ids = append(ids, it.FeeComponentID)
			}
			byID, err := resolveComponents(tx, orgID, ids)
			if err != nil {
				return err
			}
			for _, it := range body.LineItems {
				cmp, ok := byID[it.FeeComponentID]
				if !ok {
					return fiber.NewError(fiber.StatusNotFound, "fee component not found: "+it.FeeComponentID.String())
				}
				if !cmp.FeeComponentIsActive {
					return errs.ErrComponentInactive
				}
				adjusted := it.OriginalAmount
				if it.AdjustedAmount != nil {
					adjusted = *it.AdjustedAmount
				}
				lines = append(lines, model.StudentFeeLineItem{
					StudentFeeLineItemFeeComponentID:        it.FeeComponentID,
					StudentFeeLineItemComponentNameSnapshot: cmp.FeeComponentName,
					StudentFeeLineItemOriginalAmount:        it.OriginalAmount,
					StudentFeeLineItemAdjustedAmount:        adjusted,
				})
			}
		}

		m := model.StudentFeeStructure{
			StudentFeeStructureOrgID:               orgID,
			StudentFeeStructureStudentID:           body.StudentFeeStructureStudentID,
			StudentFeeStructureSessionID:           body.StudentFeeStructureSessionID,
			StudentFeeStructureSource:              source,
			StudentFeeStructureBatchFeeStructureID: body.BatchFeeStructureID,
			StudentFeeStructureScholarshipAmount:   body.ScholarshipAmount,
		}
		if body.CustomDiscount != nil {
			dt := model.DiscountType(body.CustomDiscount.Type)
			dv := body.CustomDiscount.Value
			m.StudentFeeStructureDiscountType = &dt
			m.StudentFeeStructureDiscountValue = &dv
			m.StudentFeeStructureDiscountRemarks = body.CustomDiscount.Remarks
		}

		if err := service.RecomputeTotals(&m, lines); err != nil {
			return err
		}

		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].StudentFeeLineItemStructureID = m.StudentFeeStructureID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		m.LineItems = lines
		out = m
		return nil
	})
	if txErr != nil {
		return jsonDomainError(c, txErr)
	}

	log.Printf("[StudentFeeStructure] created id=%s student=%s net=%d",
		out.StudentFeeStructureID, out.StudentFeeStructureStudentID, out.StudentFeeStructureNetAmount)
	return helper.JsonCreated(c, "student fee structure created", dto.ToStudentFeeStructureResponse(out))
}

// -----------------------------------------
// WaiveLineItem (POST /student-fee-structures/:id/line-items/:lineId/waive)
// Frozen once installments exist: later changes need a new
// session-scoped structure.
// -----------------------------------------
func (h *StudentFeeStructureHandler) WaiveLineItem(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student fee structure id")
	}
	lineID, err := uuid.Parse(c.Params("lineId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid line item id")
	}

	var body dto.StudentFeeLineItemWaiveDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var out model.StudentFeeStructure
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var s model.StudentFeeStructure
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_fee_structure_id = ? AND student_fee_structure_org_id = ?", id, orgID).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if s.StudentFeeStructureInstallmentsGenerated {
			return errs.ErrStructureFrozen
		}

		var lines []model.StudentFeeLineItem
		if err := tx.
			Where("student_fee_line_item_structure_id = ?", s.StudentFeeStructureID).
			Order("student_fee_line_item_created_at ASC").
			Find(&lines).Error; err != nil {
			return err
		}

		idx := -1
		for i := range lines {
			if lines[i].StudentFeeLineItemID == lineID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errs.ErrNotFound
		}

		adjusted := 0
		if body.AdjustedAmount != nil {
			adjusted = *body.AdjustedAmount
		}
		if err := service.ApplyWaiver(&lines[idx], adjusted, body.WaiverReason); err != nil {
			return err
		}
		if err := tx.Model(&model.StudentFeeLineItem{}).
			Where("student_fee_line_item_id = ?", lineID).
			Updates(map[string]any{
				"student_fee_line_item_adjusted_amount": lines[idx].StudentFeeLineItemAdjustedAmount,
				"student_fee_line_item_waived":          true,
				"student_fee_line_item_waiver_reason":   lines[idx].StudentFeeLineItemWaiverReason,
			}).Error; err != nil {
			return err
		}

		if err := service.RecomputeTotals(&s, lines); err != nil {
			return err
		}
		if err := tx.Model(&model.StudentFeeStructure{}).
			Where("student_fee_structure_id = ?", s.StudentFeeStructureID).
			Updates(map[string]any{
				"student_fee_structure_gross_amount":    s.StudentFeeStructureGrossAmount,
				"student_fee_structure_discount_amount": s.StudentFeeStructureDiscountAmount,
				"student_fee_structure_net_amount":      s.StudentFeeStructureNetAmount,
			}).Error; err != nil {
			return err
		}

		s.LineItems = lines
		out = s
		return nil
	})
	if txErr != nil {
		return jsonDomainError(c, txErr)
	}

	return helper.JsonUpdated(c, "line item waived", dto.ToStudentFeeStructureResponse(out))
}

// -----------------------------------------
// List (GET /student-fee-structures)
// Query filters: student_id, session_id, source, generated (true|false)
// -----------------------------------------
func (h *StudentFeeStructureHandler) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.StudentFeeStructure{}).
		Where("student_fee_structure_org_id = ?", orgID)

	if v := c.Query("student_id"); v != "" {
		if sid, err := uuid.Parse(v); err == nil {
			q = q.Where("student_fee_structure_student_id = ?", sid)
		}
	}
	if v := c.Query("session_id"); v != "" {
		if sid, err := uuid.Parse(v); err == nil {
			q = q.Where("student_fee_structure_session_id = ?", sid)
		}
	}
	if v := c.Query("source"); v != "" {
		q = q.Where("student_fee_structure_source = ?", v)
	}
	if v := c.Query("generated"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("student_fee_structure_installments_generated = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("student_fee_structure_installments_generated = FALSE")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentFeeStructure
	if err := q.Order("student_fee_structure_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "student fee structures",
		dto.ToStudentFeeStructureResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /student-fee-structures/:id) — with line items
// -----------------------------------------
func (h *StudentFeeStructureHandler) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student fee structure id")
	}

	var m model.StudentFeeStructure
	if err := h.DB.WithContext(c.Context()).
		Preload("LineItems").
		Where("student_fee_structure_id = ? AND student_fee_structure_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "student fee structure", dto.ToStudentFeeStructureResponse(m))
}

// jsonDomainError maps domain errors (errs.*) and fiber errors coming
// out of a transaction to the standard envelope.
func jsonDomainError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if status := errs.HTTPStatus(err); status != fiber.StatusInternalServerError {
		return helper.JsonError(c, status, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
