// file: internals/features/finance/emi/controller/schedule_generate_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	emidto "vidyalaya_backend/internals/features/finance/emi/dto"
	emimodel "vidyalaya_backend/internals/features/finance/emi/model"
	emiservice "vidyalaya_backend/internals/features/finance/emi/service"
	"vidyalaya_backend/internals/features/finance/errs"
	instdto "vidyalaya_backend/internals/features/finance/installments/dto"
	instmodel "vidyalaya_backend/internals/features/finance/installments/model"
	structmodel "vidyalaya_backend/internals/features/finance/structures/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type ScheduleGenerateHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Generate (POST /emi-schedules/generate)
// Turns a structure's net amount into concrete installments using the
// template's split config. At most one successful generation per
// structure: re-running is a hard AlreadyGenerated error, never an
// overwrite — and the whole schedule is persisted atomically or not
// at all.
// -----------------------------------------
func (h *ScheduleGenerateHandler) Generate(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}

	var body emidto.GenerateScheduleDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}
	startDate, err := helper.ParseDate(body.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "start_date must be a calendar date (2006-01-02)")
	}

	var out []instmodel.FeeInstallment
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// 1) lock the structure — the generation guard races with itself
		var s structmodel.StudentFeeStructure
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_fee_structure_id = ? AND student_fee_structure_org_id = ?", body.StudentFeeStructureID, orgID).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if s.StudentFeeStructureInstallmentsGenerated {
			return errs.ErrAlreadyGenerated
		}

		// belt and braces: the flag and the rows must agree
		var existing int64
		if err := tx.Model(&instmodel.FeeInstallment{}).
			Where("fee_installment_structure_id = ?", s.StudentFeeStructureID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errs.ErrAlreadyGenerated
		}

		// 2) template is a read-only input; no FK survives generation
		var tpl emimodel.EMIPlanTemplate
		if err := tx.
			Where("emi_plan_template_id = ? AND emi_plan_template_org_id = ?", body.EMIPlanTemplateID, orgID).
			First(&tpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if !tpl.EMIPlanTemplateIsActive {
			return fiber.NewError(fiber.StatusConflict, "emi template is inactive")
		}
		splits, err := tpl.Splits()
		if err != nil {
			return err
		}
		if err := emiservice.ValidateSplits(splits, tpl.EMIPlanTemplateInstallmentCount); err != nil {
			return err
		}

		// 3) pure computation, then one all-or-nothing insert
		slices, err := emiservice.BuildSchedule(s.StudentFeeStructureNetAmount, startDate, splits)
		if err != nil {
			return err
		}

		rows := make([]instmodel.FeeInstallment, 0, len(slices))
		for _, sl := range slices {
			rows = append(rows, instmodel.FeeInstallment{
				FeeInstallmentOrgID:       orgID,
				FeeInstallmentStructureID: s.StudentFeeStructureID,
				FeeInstallmentNumber:      sl.Number,
				FeeInstallmentAmount:      sl.Amount,
				FeeInstallmentDueDate:     sl.DueDate,
				FeeInstallmentPaidAmount:  0,
				FeeInstallmentStatus:      instmodel.InstallmentStatusUpcoming,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		// 4) freeze the structure
		if err := tx.Model(&structmodel.StudentFeeStructure{}).
			Where("student_fee_structure_id = ?", s.StudentFeeStructureID).
			Update("student_fee_structure_installments_generated", true).Error; err != nil {
			return err
		}

		out = rows
		return nil
	})
	if txErr != nil {
		return jsonDomainError(c, txErr)
	}

	log.Printf("[EMIGenerate] structure=%s installments=%d", body.StudentFeeStructureID, len(out))
	return helper.JsonCreated(c, "installment schedule generated",
		instdto.ToFeeInstallmentResponses(out, helper.Today()))
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
