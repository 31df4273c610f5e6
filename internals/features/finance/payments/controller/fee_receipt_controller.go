// file: internals/features/finance/payments/controller/fee_receipt_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/payments/dto"
	"vidyalaya_backend/internals/features/finance/payments/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type FeeReceiptHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /receipts)
// Query filters: student_id, installment_id, from, to (2006-01-02)
// -----------------------------------------
func (h *FeeReceiptHandler) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.FeeReceipt{}).
		Where("fee_receipt_org_id = ?", orgID)

	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("fee_receipt_student_id = ?", id)
	}
	if v := c.Query("installment_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment_id")
		}
		q = q.Where("fee_receipt_installment_id = ?", id)
	}
	if v := c.Query("from"); v != "" {
		from, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid from date")
		}
		q = q.Where("fee_receipt_issued_at >= ?", from)
	}
	if v := c.Query("to"); v != "" {
		to, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid to date")
		}
		// inclusive end of day
		q = q.Where("fee_receipt_issued_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeReceipt
	if err := q.Order("fee_receipt_issued_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "fee receipts", dto.ToFeeReceiptResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /receipts/:id)
// Accepts either the receipt UUID or the human receipt number
// (RCP-...), cashiers paste both.
// -----------------------------------------
func (h *FeeReceiptHandler) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	param := c.Params("id")

	q := h.DB.WithContext(c.Context()).
		Where("fee_receipt_org_id = ?", orgID)
	if strings.HasPrefix(strings.ToUpper(param), "RCP-") {
		q = q.Where("fee_receipt_no = ?", strings.ToUpper(param))
	} else {
		id, err := uuid.Parse(param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid receipt id")
		}
		q = q.Where("fee_receipt_id = ?", id)
	}

	var m model.FeeReceipt
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "receipt not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "fee receipt", dto.ToFeeReceiptResponse(m))
}
