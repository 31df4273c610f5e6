// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	componentModel "vidyalaya_backend/internals/features/finance/components/model"
	componentRoute "vidyalaya_backend/internals/features/finance/components/route"
	emiRoute "vidyalaya_backend/internals/features/finance/emi/route"
	installmentRoute "vidyalaya_backend/internals/features/finance/installments/route"
	paymentRoute "vidyalaya_backend/internals/features/finance/payments/route"
	structureRoute "vidyalaya_backend/internals/features/finance/structures/route"
)

// FinanceAdminRoutes mounts the whole fee-management surface under /api/a.
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	componentRoute.FeeComponentAdminRoutes(admin, db)
	structureRoute.StructuresAdminRoutes(admin, db)
	emiRoute.EMIAdminRoutes(admin, db)
	installmentRoute.InstallmentsAdminRoutes(admin, db)
	paymentRoute.PaymentsAdminRoutes(admin, db)
}

// FinanceUserRoutes mounts the parent/student portal under /api/u.
func FinanceUserRoutes(user fiber.Router, db *gorm.DB) {
	structureRoute.StructuresUserRoutes(user, db)
}

// FinancePublicRoutes mounts the token-free surface under /api/p.
func FinancePublicRoutes(public fiber.Router, db *gorm.DB) {
	// static catalog for admission/enquiry forms
	public.Get("/fee-component-types", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": []componentModel.FeeComponentType{
				componentModel.FeeComponentTypeTuition,
				componentModel.FeeComponentTypeTransport,
				componentModel.FeeComponentTypeLab,
				componentModel.FeeComponentTypeLibrary,
				componentModel.FeeComponentTypeExam,
				componentModel.FeeComponentTypeHostel,
				componentModel.FeeComponentTypeAdmission,
				componentModel.FeeComponentTypeOther,
			},
		})
	})
}
