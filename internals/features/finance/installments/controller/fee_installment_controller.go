// file: internals/features/finance/installments/controller/fee_installment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/installments/dto"
	"vidyalaya_backend/internals/features/finance/installments/model"
	"vidyalaya_backend/internals/features/finance/installments/service"
	structmodel "vidyalaya_backend/internals/features/finance/structures/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type FeeInstallmentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// ListByStructure (GET /fee-installments?structure_id=...)
// The ordered timeline of one structure. Statuses in the response are
// derived for today, not read from the cache column.
// -----------------------------------------
func (h *FeeInstallmentHandler) ListByStructure(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	structureID, err := uuid.Parse(c.Query("structure_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "structure_id query param is required")
	}

	var rows []model.FeeInstallment
	if err := h.DB.WithContext(c.Context()).
		Where("fee_installment_org_id = ? AND fee_installment_structure_id = ?", orgID, structureID).
		Order("fee_installment_number ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "installment timeline", dto.ToFeeInstallmentResponses(rows, helper.Today()))
}

// -----------------------------------------
// ListPending (GET /fee-installments/pending)
// Org-wide collection worklist: everything not fully paid, optionally
// only overdue or only due within a window. The filters work off the
// derivable columns (amount, paid, due_date), never the status cache.
// Query filters: overdue=true, due_before (2006-01-02), structure_id,
// student_id, session_id
// -----------------------------------------
func (h *FeeInstallmentHandler) ListPending(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)
	today := helper.Today()

	q := h.DB.WithContext(c.Context()).
		Model(&model.FeeInstallment{}).
		Where("fee_installment_org_id = ?", orgID).
		Where("fee_installment_paid_amount < fee_installment_amount")

	if strings.EqualFold(c.Query("overdue"), "true") {
		q = q.Where("fee_installment_due_date < ?", today)
	}
	if v := c.Query("due_before"); v != "" {
		cutoff, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_before date")
		}
		q = q.Where("fee_installment_due_date < ?", cutoff)
	}
	if v := c.Query("structure_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid structure_id")
		}
		q = q.Where("fee_installment_structure_id = ?", id)
	}
	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("fee_installment_structure_id IN (?)",
			h.DB.Model(&structmodel.StudentFeeStructure{}).
				Select("student_fee_structure_id").
				Where("student_fee_structure_student_id = ?", id))
	}
	if v := c.Query("session_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid session_id")
		}
		q = q.Where("fee_installment_structure_id IN (?)",
			h.DB.Model(&structmodel.StudentFeeStructure{}).
				Select("student_fee_structure_id").
				Where("student_fee_structure_session_id = ?", id))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeInstallment
	if err := q.Order("fee_installment_due_date ASC, fee_installment_number ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "pending installments", dto.ToFeeInstallmentResponses(rows, today),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// NextDue (GET /fee-installments/next-due?structure_id=...)
// -----------------------------------------
func (h *FeeInstallmentHandler) NextDue(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	structureID, err := uuid.Parse(c.Query("structure_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "structure_id query param is required")
	}

	var rows []model.FeeInstallment
	if err := h.DB.WithContext(c.Context()).
		Where("fee_installment_org_id = ? AND fee_installment_structure_id = ?", orgID, structureID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := service.NextDue(rows)
	if next == nil {
		return helper.JsonOK(c, "no installment outstanding", nil)
	}
	resp := dto.ToFeeInstallmentResponse(*next, helper.Today())
	return helper.JsonOK(c, "next due installment", resp)
}

// -----------------------------------------
// Summary (GET /fee-installments/summary?structure_id=...)
// -----------------------------------------
func (h *FeeInstallmentHandler) Summary(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	structureID, err := uuid.Parse(c.Query("structure_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "structure_id query param is required")
	}

	var rows []model.FeeInstallment
	if err := h.DB.WithContext(c.Context()).
		Where("fee_installment_org_id = ? AND fee_installment_structure_id = ?", orgID, structureID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "no installments for this structure")
	}

	return helper.JsonOK(c, "installment summary", service.Summarize(rows, helper.Today()))
}

// -----------------------------------------
// TouchReminder (POST /fee-installments/:id/reminder)
// Called by the dunning collaborator after a reminder goes out.
// -----------------------------------------
func (h *FeeInstallmentHandler) TouchReminder(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}

	// body is optional, sent_at defaults to now
	var body dto.ReminderTouchDTO
	_ = c.BodyParser(&body)
	sentAt := time.Now()
	if body.SentAt != nil {
		sentAt = *body.SentAt
	}

	res := h.DB.WithContext(c.Context()).
		Model(&model.FeeInstallment{}).
		Where("fee_installment_id = ? AND fee_installment_org_id = ?", id, orgID).
		Updates(map[string]any{
			"fee_installment_reminder_sent_at": sentAt,
			"fee_installment_reminder_count":   gorm.Expr("fee_installment_reminder_count + 1"),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "installment not found")
	}
	return helper.JsonUpdated(c, "reminder recorded", fiber.Map{
		"fee_installment_id": id,
		"sent_at":            sentAt,
	})
}

// -----------------------------------------
// SetPaymentLinkStatus (PATCH /fee-installments/:id/payment-link)
// Mirror of the external payment-link lifecycle; display only.
// -----------------------------------------
func (h *FeeInstallmentHandler) SetPaymentLinkStatus(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}

	var body dto.PaymentLinkStatusDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	res := h.DB.WithContext(c.Context()).
		Model(&model.FeeInstallment{}).
		Where("fee_installment_id = ? AND fee_installment_org_id = ?", id, orgID).
		Update("fee_installment_payment_link_status", body.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "installment not found")
	}
	return helper.JsonUpdated(c, "payment link status updated", fiber.Map{
		"fee_installment_id":                  id,
		"fee_installment_payment_link_status": body.Status,
	})
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
