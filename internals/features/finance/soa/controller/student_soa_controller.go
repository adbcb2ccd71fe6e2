// file: internals/features/finance/soa/controller/student_soa_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "srcs_backend/internals/features/finance/payments/model"
	paymentService "srcs_backend/internals/features/finance/payments/service"
	"srcs_backend/internals/features/finance/soa/dto"
	"srcs_backend/internals/features/finance/soa/model"
	helper "srcs_backend/internals/helpers"
)

type StudentSoaController struct {
	DB     *gorm.DB
	Ledger *paymentService.LedgerService
}

func NewStudentSoaController(db *gorm.DB) *StudentSoaController {
	return &StudentSoaController{
		DB:     db,
		Ledger: paymentService.NewLedgerService(db),
	}
}

func (ctl *StudentSoaController) loadSoa(c *fiber.Ctx) (*model.StudentSoaModel, []paymentModel.PaymentModel, int, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, fiber.StatusBadRequest, errors.New("invalid soa id")
	}

	var soa model.StudentSoaModel
	if err := ctl.DB.Where("student_soa_id = ?", id).Take(&soa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.StatusNotFound, errors.New("statement of accounts not found")
		}
		return nil, nil, fiber.StatusInternalServerError, err
	}

	var payments []paymentModel.PaymentModel
	if err := ctl.DB.
		Where("payment_soa_id = ?", soa.StudentSoaID).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}
	return &soa, payments, 0, nil
}

// -----------------------------------------
// Detail (GET /soas/:id)
// -----------------------------------------
func (ctl *StudentSoaController) Detail(c *fiber.Ctx) error {
	soa, payments, status, err := ctl.loadSoa(c)
	if err != nil {
		return helper.JsonError(c, status, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentSoaResponse(*soa, payments))
}

// -----------------------------------------
// ByEnrollment (GET /enrollments/:id/soa)
// -----------------------------------------
func (ctl *StudentSoaController) ByEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var soa model.StudentSoaModel
	if err := ctl.DB.
		Where("student_soa_enrollment_id = ?", enrollmentID).
		Take(&soa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// grade levels outside 7-12 carry no fee schedule and no SOA
			return helper.JsonError(c, fiber.StatusNotFound, "no statement of accounts for this enrollment")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []paymentModel.PaymentModel
	if err := ctl.DB.
		Where("payment_soa_id = ?", soa.StudentSoaID).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.ToStudentSoaResponse(soa, payments))
}

// -----------------------------------------
// ApplySubsidy (PUT /soas/:id/subsidy)
// -----------------------------------------
func (ctl *StudentSoaController) ApplySubsidy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid soa id")
	}

	var in dto.SubsidyApplyDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	soa, err := ctl.Ledger.ApplySubsidy(c.UserContext(), id, in.SubsidyCentavos, in.SubsidyBreakdown)
	if err != nil {
		switch {
		case errors.Is(err, paymentService.ErrSoaNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, paymentService.ErrSubsidyOutOfRange):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "subsidy update failed")
		}
	}

	var payments []paymentModel.PaymentModel
	if err := ctl.DB.
		Where("payment_soa_id = ?", soa.StudentSoaID).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "subsidy applied", dto.ToStudentSoaResponse(*soa, payments))
}
