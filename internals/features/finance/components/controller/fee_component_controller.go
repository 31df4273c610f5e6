// file: internals/features/finance/components/controller/fee_component_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/finance/components/dto"
	"vidyalaya_backend/internals/features/finance/components/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type FeeComponentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /fee-components)
// -----------------------------------------
func (h *FeeComponentHandler) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}

	var body dto.FeeComponentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	name := strings.TrimSpace(body.FeeComponentName)

	// duplicate name per org (case-insensitive)
	var count int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.FeeComponent{}).
		Where("fee_component_org_id = ? AND LOWER(fee_component_name) = ?", orgID, strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "fee component with this name already exists")
	}

	m := model.FeeComponent{
		FeeComponentOrgID:       orgID,
		FeeComponentName:        name,
		FeeComponentType:        model.FeeComponentType(body.FeeComponentType),
		FeeComponentDescription: body.FeeComponentDescription,
		FeeComponentIsActive:    true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee component created", dto.ToFeeComponentResponse(m))
}

// -----------------------------------------
// Update (PATCH /fee-components/:id)
// -----------------------------------------
func (h *FeeComponentHandler) Update(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee component id")
	}

	var body dto.FeeComponentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var m model.FeeComponent
	if err := h.DB.WithContext(c.Context()).
		Where("fee_component_id = ? AND fee_component_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee component not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if body.FeeComponentName != nil {
		m.FeeComponentName = strings.TrimSpace(*body.FeeComponentName)
	}
	if body.FeeComponentDescription != nil {
		m.FeeComponentDescription = body.FeeComponentDescription
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee component updated", dto.ToFeeComponentResponse(m))
}

// -----------------------------------------
// SetActive (POST /fee-components/:id/set-active)
// Components referenced by historical structures are never hard-deleted;
// this toggle is the only retirement path.
// -----------------------------------------
func (h *FeeComponentHandler) SetActive(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee component id")
	}

	var body dto.FeeComponentSetActiveDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	res := h.DB.WithContext(c.Context()).
		Model(&model.FeeComponent{}).
		Where("fee_component_id = ? AND fee_component_org_id = ?", id, orgID).
		Update("fee_component_is_active", body.FeeComponentIsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee component not found")
	}
	return helper.JsonUpdated(c, "fee component active flag updated", fiber.Map{
		"fee_component_id":        id,
		"fee_component_is_active": body.FeeComponentIsActive,
	})
}

// -----------------------------------------
// List (GET /fee-components)
// Query filters: type, active (true|false), q (name search)
// -----------------------------------------
func (h *FeeComponentHandler) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.FeeComponent{}).
		Where("fee_component_org_id = ?", orgID)

	if v := c.Query("type"); v != "" {
		q = q.Where("fee_component_type = ?", v)
	}
	if v := c.Query("active"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("fee_component_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("fee_component_is_active = FALSE")
		}
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("fee_component_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeComponent
	if err := q.Order("fee_component_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "fee components",
		dto.ToFeeComponentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /fee-components/:id)
// -----------------------------------------
func (h *FeeComponentHandler) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee component id")
	}

	var m model.FeeComponent
	if err := h.DB.WithContext(c.Context()).
		Where("fee_component_id = ? AND fee_component_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee component not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "fee component", dto.ToFeeComponentResponse(m))
}
