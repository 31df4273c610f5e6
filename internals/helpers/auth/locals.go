// file: internals/helpers/auth/locals.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==============================
   Locals keys (filled by AuthJWT)
============================== */

const (
	LocUserID    = "user_id"
	LocOrgID     = "org_id"
	LocStudentID = "student_id"
	LocRoles     = "roles"
)

// GetUserID reads the authenticated user id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetOrgID reads the active organization id from Locals.
func GetOrgID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocOrgID)
}

// GetStudentID reads the student id claim, when the caller is a
// student/parent session. Zero UUID + error when absent.
func GetStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocStudentID)
}

// HasRole reports whether the token carried the given role.
func HasRole(c *fiber.Ctx, role string) bool {
	v := c.Locals(LocRoles)
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case []string:
		for _, r := range t {
			if strings.EqualFold(strings.TrimSpace(r), role) {
				return true
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok && strings.EqualFold(strings.TrimSpace(s), role) {
				return true
			}
		}
	case string:
		return strings.EqualFold(strings.TrimSpace(t), role)
	}
	return false
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing "+key+" claim")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid "+key+" claim")
	}
	return id, nil
}
