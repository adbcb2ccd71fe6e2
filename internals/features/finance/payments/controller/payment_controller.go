// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"srcs_backend/internals/features/finance/payments/dto"
	"srcs_backend/internals/features/finance/payments/model"
	"srcs_backend/internals/features/finance/payments/service"
	helper "srcs_backend/internals/helpers"
)

type PaymentController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:     db,
		Ledger: service.NewLedgerService(db),
	}
}

// statusForLedgerError maps service errors onto the error taxonomy:
// user-correctable validation -> 400, stale references -> 404,
// idempotency/state conflicts -> 409, everything else -> 500.
func statusForLedgerError(err error) (int, string) {
	var (
		over    *service.OverAllocationError
		unknown *service.UnknownLineItemError
	)
	switch {
	case errors.Is(err, service.ErrNothingToAllocate),
		errors.As(err, &over),
		errors.As(err, &unknown),
		errors.Is(err, service.ErrSubsidyOutOfRange):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSoaNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrPaymentVoided),
		errors.Is(err, service.ErrDuplicateOrNumber),
		errors.Is(err, service.ErrNotEnrolled):
		return fiber.StatusConflict, err.Error()
	default:
		return fiber.StatusInternalServerError, "payment operation failed"
	}
}

// -----------------------------------------
// List (GET /soas/:soa_id/payments)
// Display copy sorted reverse-chronological; voids included and
// flagged. Storage order is never touched.
// -----------------------------------------
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	soaID, err := uuid.Parse(c.Params("soa_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid soa id")
	}

	var list []model.PaymentModel
	if err := ctl.DB.
		Where("payment_soa_id = ?", soaID).
		Order("payment_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	display := make([]model.PaymentModel, len(list))
	copy(display, list)
	sort.SliceStable(display, func(i, j int) bool {
		return display[i].PaymentCreatedAt.After(display[j].PaymentCreatedAt)
	})

	return helper.JsonOK(c, "ok", dto.ToPaymentResponses(display))
}

// -----------------------------------------
// Create (POST /soas/:soa_id/payments)
// -----------------------------------------
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	soaID, err := uuid.Parse(c.Params("soa_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid soa id")
	}

	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	created, soa, err := ctl.Ledger.AppendPayment(c.UserContext(), service.AppendPaymentInput{
		SoaID:       soaID,
		Allocation:  in.PaymentAllocation,
		Mode:        model.PaymentMode(in.PaymentMode),
		OrNumber:    in.PaymentOrNumber,
		PaidAt:      in.PaymentPaidAt,
		ProcessedBy: helper.OperatorName(c),
	})
	if err != nil {
		status, msg := statusForLedgerError(err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "payment recorded", fiber.Map{
		"payment":          dto.ToPaymentResponse(*created),
		"balance_centavos": soa.StudentSoaBalanceCentavos,
		"balance_display":  helper.FormatPeso(soa.StudentSoaBalanceCentavos),
		"payment_status":   soa.Status(),
	})
}

// -----------------------------------------
// Update (PUT /soas/:soa_id/payments/:id)
// -----------------------------------------
func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	soaID, err := uuid.Parse(c.Params("soa_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid soa id")
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}

	var in dto.PaymentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	edited, soa, err := ctl.Ledger.EditPayment(c.UserContext(), soaID, paymentID, service.EditPaymentInput{
		Allocation: in.PaymentAllocation,
		Mode:       model.PaymentMode(in.PaymentMode),
		OrNumber:   in.PaymentOrNumber,
		PaidAt:     in.PaymentPaidAt,
		EditedBy:   helper.OperatorName(c),
	})
	if err != nil {
		status, msg := statusForLedgerError(err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonUpdated(c, "payment updated", fiber.Map{
		"payment":          dto.ToPaymentResponse(*edited),
		"balance_centavos": soa.StudentSoaBalanceCentavos,
		"balance_display":  helper.FormatPeso(soa.StudentSoaBalanceCentavos),
		"payment_status":   soa.Status(),
	})
}

// -----------------------------------------
// Void (POST /soas/:soa_id/payments/:id/void)
// -----------------------------------------
func (ctl *PaymentController) Void(c *fiber.Ctx) error {
	soaID, err := uuid.Parse(c.Params("soa_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid soa id")
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}

	voided, soa, err := ctl.Ledger.VoidPayment(c.UserContext(), soaID, paymentID, helper.OperatorName(c))
	if err != nil {
		status, msg := statusForLedgerError(err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonUpdated(c, "payment voided", fiber.Map{
		"payment":          dto.ToPaymentResponse(*voided),
		"balance_centavos": soa.StudentSoaBalanceCentavos,
		"balance_display":  helper.FormatPeso(soa.StudentSoaBalanceCentavos),
		"payment_status":   soa.Status(),
	})
}
