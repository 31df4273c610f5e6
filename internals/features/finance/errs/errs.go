// file: internals/features/finance/errs/errs.go
package errs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Error taxonomy of the fee core
   - validation   → 422
   - state conflict → 409
   - not found    → 404
============================== */

var (
	// ValidationError kind
	ErrValidation = errors.New("validation error")

	// StateConflict kind
	ErrDuplicateStructure   = errors.New("fee structure already exists for this student and session")
	ErrAlreadyGenerated     = errors.New("installments already generated for this fee structure")
	ErrAlreadyPaid          = errors.New("installment is already fully paid")
	ErrOverpaymentRejected  = errors.New("payment exceeds the remaining due on this installment")
	ErrZeroAmount           = errors.New("net amount is zero, nothing to schedule")
	ErrStructureFrozen      = errors.New("fee structure is frozen once installments are generated")
	ErrComponentInactive    = errors.New("fee component is inactive")
	ErrStructureSuperseded  = errors.New("fee structure has been superseded")

	// NotFound kind
	ErrNotFound = errors.New("not found")
)

// HTTPStatus maps a domain error to its HTTP status. Unknown errors
// fall through to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateStructure),
		errors.Is(err, ErrAlreadyGenerated),
		errors.Is(err, ErrAlreadyPaid),
		errors.Is(err, ErrOverpaymentRejected),
		errors.Is(err, ErrZeroAmount),
		errors.Is(err, ErrStructureFrozen),
		errors.Is(err, ErrComponentInactive),
		errors.Is(err, ErrStructureSuperseded):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
