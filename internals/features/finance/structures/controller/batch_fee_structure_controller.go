// file: internals/features/finance/structures/controller/batch_fee_structure_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	componentModel "vidyalaya_backend/internals/features/finance/components/model"
	"vidyalaya_backend/internals/features/finance/structures/dto"
	"vidyalaya_backend/internals/features/finance/structures/model"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type BatchFeeStructureHandler struct {
	DB *gorm.DB
}

// resolveComponents loads the referenced fee components and rejects
// unknown or inactive ones. Returns id → component.
func resolveComponents(tx *gorm.DB, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]componentModel.FeeComponent, error) {
	var comps []componentModel.FeeComponent
	if err := tx.
		Where("fee_component_org_id = ? AND fee_component_id IN ?", orgID, ids).
		Find(&comps).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]componentModel.FeeComponent, len(comps))
	for _, cmp := range comps {
		byID[cmp.FeeComponentID] = cmp
	}
	return byID, nil
}

// -----------------------------------------
// Create (POST /batch-fee-structures)
// -----------------------------------------
func (h *BatchFeeStructureHandler) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}

	var body dto.BatchFeeStructureCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var out model.BatchFeeStructure
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// one live structure per (batch, session)
		var live int64
		if err := tx.Model(&model.BatchFeeStructure{}).
			Where("batch_fee_structure_batch_id = ? AND batch_fee_structure_session_id = ? AND batch_fee_structure_is_superseded = FALSE",
				body.BatchFeeStructureBatchID, body.BatchFeeStructureSessionID).
			Count(&live).Error; err != nil {
			return err
		}
		if live > 0 {
			return fiber.NewError(fiber.StatusConflict, "a live fee structure already exists for this batch and session; supersede it instead")
		}

		m, err := h.buildStructure(tx, orgID, body.BatchFeeStructureBatchID, body.BatchFeeStructureSessionID,
			strings.TrimSpace(body.BatchFeeStructureName), body.LineItems)
		if err != nil {
			return err
		}
		out = *m
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonCreated(c, "batch fee structure created", dto.ToBatchFeeStructureResponse(out))
}

// buildStructure validates components, computes the total and persists
// the structure plus its line items.
func (h *BatchFeeStructureHandler) buildStructure(
	tx *gorm.DB,
	orgID, batchID, sessionID uuid.UUID,
	name string,
	items []dto.BatchFeeLineItemInputDTO,
) (*model.BatchFeeStructure, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.FeeComponentID)
	}
	byID, err := resolveComponents(tx, orgID, ids)
	if err != nil {
		return nil, err
	}

	total := 0
	lines := make([]model.BatchFeeLineItem, 0, len(items))
	for _, it := range items {
		cmp, ok := byID[it.FeeComponentID]
		if !ok {
			return nil, fiber.NewError(fiber.StatusNotFound, "fee component not found: "+it.FeeComponentID.String())
		}
		if !cmp.FeeComponentIsActive {
			return nil, fiber.NewError(fiber.StatusConflict, "fee component is inactive: "+cmp.FeeComponentName)
		}
		total += it.Amount
		lines = append(lines, model.BatchFeeLineItem{
			BatchFeeLineItemFeeComponentID:        it.FeeComponentID,
			BatchFeeLineItemComponentNameSnapshot: cmp.FeeComponentName,
			BatchFeeLineItemAmount:                it.Amount,
		})
	}

	m := model.BatchFeeStructure{
		BatchFeeStructureOrgID:       orgID,
		BatchFeeStructureBatchID:     batchID,
		BatchFeeStructureSessionID:   sessionID,
		BatchFeeStructureName:        name,
		BatchFeeStructureTotalAmount: total,
	}
	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].BatchFeeLineItemStructureID = m.BatchFeeStructureID
	}
	if err := tx.Create(&lines).Error; err != nil {
		return nil, err
	}
	m.LineItems = lines
	return &m, nil
}

// -----------------------------------------
// Supersede (POST /batch-fee-structures/:id/supersede)
// Fee changes never mutate the old structure: a new row is created and
// the old one marked superseded, preserving the audit trail for
// students anchored to it.
// -----------------------------------------
func (h *BatchFeeStructureHandler) Supersede(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch fee structure id")
	}

	var body dto.BatchFeeStructureSupersedeDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var out model.BatchFeeStructure
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var old model.BatchFeeStructure
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("batch_fee_structure_id = ? AND batch_fee_structure_org_id = ?", id, orgID).
			First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "batch fee structure not found")
			}
			return err
		}
		if old.BatchFeeStructureIsSuperseded {
			return fiber.NewError(fiber.StatusConflict, "batch fee structure already superseded")
		}

		name := old.BatchFeeStructureName
		if body.BatchFeeStructureName != nil {
			name = strings.TrimSpace(*body.BatchFeeStructureName)
		}

		next, err := h.buildStructure(tx, orgID, old.BatchFeeStructureBatchID, old.BatchFeeStructureSessionID, name, body.LineItems)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.BatchFeeStructure{}).
			Where("batch_fee_structure_id = ?", old.BatchFeeStructureID).
			Updates(map[string]any{
				"batch_fee_structure_is_superseded":    true,
				"batch_fee_structure_superseded_by_id": next.BatchFeeStructureID,
			}).Error; err != nil {
			return err
		}

		log.Printf("[BatchFeeStructure] superseded old=%s new=%s batch=%s",
			old.BatchFeeStructureID, next.BatchFeeStructureID, old.BatchFeeStructureBatchID)
		out = *next
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonCreated(c, "batch fee structure superseded", dto.ToBatchFeeStructureResponse(out))
}

// -----------------------------------------
// List (GET /batch-fee-structures)
// Query filters: batch_id, session_id, superseded (true|false)
// -----------------------------------------
func (h *BatchFeeStructureHandler) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).
		Model(&model.BatchFeeStructure{}).
		Where("batch_fee_structure_org_id = ?", orgID)

	if v := c.Query("batch_id"); v != "" {
		if bid, err := uuid.Parse(v); err == nil {
			q = q.Where("batch_fee_structure_batch_id = ?", bid)
		}
	}
	if v := c.Query("session_id"); v != "" {
		if sid, err := uuid.Parse(v); err == nil {
			q = q.Where("batch_fee_structure_session_id = ?", sid)
		}
	}
	if v := c.Query("superseded"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("batch_fee_structure_is_superseded = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("batch_fee_structure_is_superseded = FALSE")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.BatchFeeStructure
	if err := q.Order("batch_fee_structure_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "batch fee structures",
		dto.ToBatchFeeStructureResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /batch-fee-structures/:id) — with line items
// -----------------------------------------
func (h *BatchFeeStructureHandler) GetByID(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch fee structure id")
	}

	var m model.BatchFeeStructure
	if err := h.DB.WithContext(c.Context()).
		Preload("LineItems").
		Where("batch_fee_structure_id = ? AND batch_fee_structure_org_id = ?", id, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "batch fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "batch fee structure", dto.ToBatchFeeStructureResponse(m))
}
