// file: internals/features/finance/emi/controller/emi_plan_template_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/emi/dto"
	"vidyalaya_backend/internals/features/finance/emi/model"
	"vidyalaya_backend/internals/features/finance/emi/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type EMIPlanTemplateHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /emi-templates)
// -----------------------------------------
func (h *EMIPlanTemplateHandler) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}

	var body dto.EMIPlanTemplateCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	splits := dto.ToEMISplits(body.SplitConfig)
	if err := service.ValidateSplits(splits, len(splits)); err != nil {
		return jsonDomainError(c, err)
	}

	m := model.EMIPlanTemplate{
		EMIPlanTemplateOrgID:     orgID,
		EMIPlanTemplateName:      strings.TrimSpace(body.EMIPlanTemplateName),
		EMIPlanTemplateIsDefault: body.IsDefault,
		EMIPlanTemplateIsActive:  true,
	}
	if err := m.SetSplits(splits); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if body.IsDefault {
			// only one default per org
			if err := tx.Model(&model.EMIPlanTemplate{}).
				Where("emi_plan_template_org_id = ? AND emi_plan_template_is_default = TRUE", orgID).
				Update("emi_plan_template_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	resp, err := dto.ToEMIPlanTemplateResponse(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "emi template created", resp)
}

// -----------------------------------------
// Update (PATCH /emi-templates/:id)
// Safe at any time: generation copies the split config, it never links
// back to the template, so edits cannot touch existing schedules.
// -----------------------------------------
func (h *EMIPlanTemplateHandler) Update(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid emi template id")
	}

	var body dto.EMIPlanTemplateUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var m model.EMIPlanTemplate
	if err := h.DB.WithContext(c.Context()).
		Where("emi_plan_template_id = ? AND emi_plan_template_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "emi template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if body.EMIPlanTemplateName != nil {
		m.EMIPlanTemplateName = strings.TrimSpace(*body.EMIPlanTemplateName)
	}
	if body.SplitConfig != nil {
		splits := dto.ToEMISplits(body.SplitConfig)
		if err := service.ValidateSplits(splits, len(splits)); err != nil {
			return jsonDomainError(c, err)
		}
		if err := m.SetSplits(splits); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if body.IsActive != nil {
		m.EMIPlanTemplateIsActive = *body.IsActive
	}

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := dto.ToEMIPlanTemplateResponse(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "emi template updated", resp)
}

// -----------------------------------------
// SetDefault (POST /emi-templates/:id/set-default)
// -----------------------------------------
func (h *EMIPlanTemplateHandler) SetDefault(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid emi template id")
	}

	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.EMIPlanTemplate{}).
			Where("emi_plan_template_id = ? AND emi_plan_template_org_id = ?", id, orgID).
			Update("emi_plan_template_is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "emi template not found")
		}
		return tx.Model(&model.EMIPlanTemplate{}).
			Where("emi_plan_template_org_id = ? AND emi_plan_template_id <> ?", orgID, id).
			Update("emi_plan_template_is_default", false).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
	return helper.JsonUpdated(c, "emi template set as default", fiber.Map{"emi_plan_template_id": id})
}

// -----------------------------------------
// List (GET /emi-templates)
// Query filters: active (true|false)
// -----------------------------------------
func (h *EMIPlanTemplateHandler) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.EMIPlanTemplate{}).
		Where("emi_plan_template_org_id = ?", orgID)

	if v := c.Query("active"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("emi_plan_template_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("emi_plan_template_is_active = FALSE")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EMIPlanTemplate
	if err := q.Order("emi_plan_template_is_default DESC, emi_plan_template_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resps := make([]dto.EMIPlanTemplateResponse, 0, len(rows))
	for _, m := range rows {
		resp, err := dto.ToEMIPlanTemplateResponse(m)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		resps = append(resps, resp)
	}

	return helper.JsonList(c, "emi templates", resps,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /emi-templates/:id)
// -----------------------------------------
func (h *EMIPlanTemplateHandler) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid emi template id")
	}

	var m model.EMIPlanTemplate
	if err := h.DB.WithContext(c.Context()).
		Where("emi_plan_template_id = ? AND emi_plan_template_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "emi template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := dto.ToEMIPlanTemplateResponse(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "emi template", resp)
}
