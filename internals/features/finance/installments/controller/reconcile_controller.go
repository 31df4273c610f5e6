// file: internals/features/finance/installments/controller/reconcile_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/installments/dto"
	"vidyalaya_backend/internals/features/finance/installments/model"
	"vidyalaya_backend/internals/features/finance/installments/service"
	paymodel "vidyalaya_backend/internals/features/finance/payments/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

// -----------------------------------------
// Reconcile (POST /fee-installments/:id/reconcile)
// Rebuilds paid_amount from the append-only payment log and re-derives
// the status cache. The log is the source of truth; the installment
// columns are only a rollup of it. Safe to run any number of times.
// -----------------------------------------
func (h *FeeInstallmentHandler) Reconcile(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}
	today := helper.Today()

	var inst model.FeeInstallment
	var changed bool
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("fee_installment_id = ? AND fee_installment_org_id = ?", id, orgID).
			First(&inst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		var sum int64
		if err := tx.Model(&paymodel.InstallmentPayment{}).
			Where("installment_payment_installment_id = ?", inst.FeeInstallmentID).
			Select("COALESCE(SUM(installment_payment_amount), 0)").
			Scan(&sum).Error; err != nil {
			return err
		}

		paidChanged := inst.FeeInstallmentPaidAmount != int(sum)
		inst.FeeInstallmentPaidAmount = int(sum)
		statusChanged := service.Refresh(&inst, today)
		changed = paidChanged || statusChanged
		if !changed {
			return nil
		}

		return tx.Model(&model.FeeInstallment{}).
			Where("fee_installment_id = ?", inst.FeeInstallmentID).
			Updates(map[string]any{
				"fee_installment_paid_amount": inst.FeeInstallmentPaidAmount,
				"fee_installment_status":      inst.FeeInstallmentStatus,
			}).Error
	})
	if txErr != nil {
		return jsonDomainError(c, txErr)
	}

	if changed {
		log.Printf("[Reconcile] installment=%s paid=%d status=%s", id, inst.FeeInstallmentPaidAmount, inst.FeeInstallmentStatus)
	}
	return helper.JsonUpdated(c, "installment reconciled", fiber.Map{
		"changed":     changed,
		"installment": dto.ToFeeInstallmentResponse(inst, today),
	})
}
