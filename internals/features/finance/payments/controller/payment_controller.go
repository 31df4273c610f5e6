// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/finance/errs"
	instmodel "vidyalaya_backend/internals/features/finance/installments/model"
	instservice "vidyalaya_backend/internals/features/finance/installments/service"
	"vidyalaya_backend/internals/features/finance/payments/dto"
	"vidyalaya_backend/internals/features/finance/payments/model"
	"vidyalaya_backend/internals/features/finance/payments/service"
	structmodel "vidyalaya_backend/internals/features/finance/structures/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type PaymentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// ApplyPayment (POST /payments)
// One transaction covers the whole cashier action: admission check
// under a row lock, ledger append, paid-amount update, status refresh,
// receipt numbering and snapshot. Either all of it lands or none.
// -----------------------------------------
func (h *PaymentHandler) ApplyPayment(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var body dto.ApplyPaymentDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}
	if !model.PaymentMode(body.Mode).Valid() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "mode must be one of cash, upi, bank")
	}

	receivedAt := time.Now()
	if body.ReceivedAt != nil {
		receivedAt = *body.ReceivedAt
	}
	today := helper.Today()

	var result dto.ApplyPaymentResult
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// 1) lock the installment — concurrent cashiers must serialize here
		var inst instmodel.FeeInstallment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("fee_installment_id = ? AND fee_installment_org_id = ?", body.InstallmentID, orgID).
			First(&inst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		// 2) admission check against the locked state
		if err := service.CheckApplicable(body.Amount, inst.FeeInstallmentAmount, inst.FeeInstallmentPaidAmount); err != nil {
			return err
		}

		// 3) append to the ledger
		payment := model.InstallmentPayment{
			InstallmentPaymentOrgID:          orgID,
			InstallmentPaymentInstallmentID:  inst.FeeInstallmentID,
			InstallmentPaymentAmount:         body.Amount,
			InstallmentPaymentMode:           model.PaymentMode(body.Mode),
			InstallmentPaymentTransactionRef: body.TransactionRef,
			InstallmentPaymentReceivedAt:     receivedAt,
			InstallmentPaymentReceivedBy:     userID,
			InstallmentPaymentRemarks:        body.Remarks,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		// 4) roll forward the installment
		inst.FeeInstallmentPaidAmount = service.Apply(body.Amount, inst.FeeInstallmentPaidAmount)
		instservice.Refresh(&inst, today)
		if inst.RemainingDue() == 0 &&
			inst.FeeInstallmentPaymentLinkStatus != nil &&
			*inst.FeeInstallmentPaymentLinkStatus == instmodel.PaymentLinkStatusActive {
			paid := instmodel.PaymentLinkStatusPaid
			inst.FeeInstallmentPaymentLinkStatus = &paid
		}
		if err := tx.Model(&instmodel.FeeInstallment{}).
			Where("fee_installment_id = ?", inst.FeeInstallmentID).
			Updates(map[string]any{
				"fee_installment_paid_amount":         inst.FeeInstallmentPaidAmount,
				"fee_installment_status":              inst.FeeInstallmentStatus,
				"fee_installment_payment_link_status": inst.FeeInstallmentPaymentLinkStatus,
			}).Error; err != nil {
			return err
		}

		// 5) structure context for the receipt snapshot
		var s structmodel.StudentFeeStructure
		if err := tx.
			Preload("LineItems").
			Where("student_fee_structure_id = ?", inst.FeeInstallmentStructureID).
			First(&s).Error; err != nil {
			return err
		}

		// 6) next receipt number for this org and year; the unique index
		// on (org, no) backstops a lost count race
		year := receivedAt.Year()
		var seq int64
		if err := tx.Model(&model.FeeReceipt{}).
			Where("fee_receipt_org_id = ? AND fee_receipt_no LIKE ?", orgID, fmt.Sprintf("RCP-%d-%%", year)).
			Count(&seq).Error; err != nil {
			return err
		}
		receiptNo := service.FormatReceiptNo(year, seq+1)

		components := make([]service.ReceiptComponentLine, 0, len(s.LineItems))
		for _, li := range s.LineItems {
			components = append(components, service.ReceiptComponentLine{
				ComponentName:  li.StudentFeeLineItemComponentNameSnapshot,
				AdjustedAmount: li.StudentFeeLineItemAdjustedAmount,
			})
		}
		snapshot, err := service.MarshalSnapshot(service.ReceiptSnapshot{
			ReceiptNo:          receiptNo,
			IssuedAt:           receivedAt,
			StudentID:          s.StudentFeeStructureStudentID,
			StructureID:        s.StudentFeeStructureID,
			SessionID:          s.StudentFeeStructureSessionID,
			InstallmentNumber:  inst.FeeInstallmentNumber,
			InstallmentAmount:  inst.FeeInstallmentAmount,
			InstallmentDueDate: helper.FormatDate(inst.FeeInstallmentDueDate),
			PaymentAmount:      body.Amount,
			PaymentMode:        body.Mode,
			TransactionRef:     body.TransactionRef,
			ReceivedBy:         userID,
			PaidAfter:          inst.FeeInstallmentPaidAmount,
			RemainingAfter:     inst.RemainingDue(),
			Components:         components,
		})
		if err != nil {
			return err
		}

		receipt := model.FeeReceipt{
			FeeReceiptOrgID:         orgID,
			FeeReceiptNo:            receiptNo,
			FeeReceiptPaymentID:     payment.InstallmentPaymentID,
			FeeReceiptInstallmentID: inst.FeeInstallmentID,
			FeeReceiptStudentID:     s.StudentFeeStructureStudentID,
			FeeReceiptAmount:        body.Amount,
			FeeReceiptIssuedAt:      receivedAt,
			FeeReceiptSnapshot:      snapshot,
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}

		result = dto.ApplyPaymentResult{
			Payment:               dto.ToInstallmentPaymentResponse(payment),
			Receipt:               dto.ToFeeReceiptResponse(receipt),
			InstallmentPaidAmount: inst.FeeInstallmentPaidAmount,
			InstallmentRemaining:  inst.RemainingDue(),
			InstallmentStatus:     string(inst.FeeInstallmentStatus),
		}
		return nil
	})
	if txErr != nil {
		return jsonDomainError(c, txErr)
	}

	log.Printf("[ApplyPayment] installment=%s amount=%d receipt=%s",
		body.InstallmentID, body.Amount, result.Receipt.FeeReceiptNo)
	return helper.JsonCreated(c, "payment applied", result)
}

// -----------------------------------------
// ListByInstallment (GET /payments?installment_id=...)
// -----------------------------------------
func (h *PaymentHandler) ListByInstallment(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	instID, err := uuid.Parse(c.Query("installment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "installment_id query param is required")
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.InstallmentPayment{}).
		Where("installment_payment_org_id = ? AND installment_payment_installment_id = ?", orgID, instID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InstallmentPayment
	if err := q.Order("installment_payment_received_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "installment payments", dto.ToInstallmentPaymentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
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
