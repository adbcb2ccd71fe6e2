// file: internals/features/enrollment/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"srcs_backend/internals/features/enrollment/enrollments/dto"
	"srcs_backend/internals/features/enrollment/enrollments/model"
	"srcs_backend/internals/features/finance/fees"
	soaModel "srcs_backend/internals/features/finance/soa/model"
	helper "srcs_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

const duplicateEnrollmentMsg = "an enrollment for this student and school year already exists"

// statusForSubmitError maps the submit transaction's failure onto the
// response status. Two concurrent submits for the same student race
// past the pre-check; the loser's unique-index violation is the same
// conflict, not a server fault.
func statusForSubmitError(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.StatusConflict, duplicateEnrollmentMsg
	}
	return fiber.StatusInternalServerError, err.Error()
}

// -----------------------------------------
// Submit (POST /enrollments): public form
// Creates the enrollment and, when the grade level carries a fee
// schedule, the opening SOA in the same transaction: full balance,
// empty ledger.
// -----------------------------------------
func (ctl *EnrollmentController) Submit(c *fiber.Ctx) error {
	var in dto.EnrollmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date of birth")
	}

	studentKey := helper.BuildStudentKey(in.LastName, in.FirstName, in.DateOfBirth, in.SchoolYear)

	var exists int64
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_key = ?", studentKey).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, duplicateEnrollmentMsg)
	}

	reference, err := helper.GenerateReferenceNumber(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not issue reference number")
	}

	enr := model.EnrollmentModel{
		EnrollmentReferenceNumber: reference,
		EnrollmentStudentKey:      studentKey,
		EnrollmentLastName:        in.LastName,
		EnrollmentFirstName:       in.FirstName,
		EnrollmentMiddleName:      in.MiddleName,
		EnrollmentDateOfBirth:     dob,
		EnrollmentGradeLevel:      in.GradeLevel,
		EnrollmentSchoolYear:      in.SchoolYear,
		EnrollmentGuardianName:    in.GuardianName,
		EnrollmentContactNumber:   in.ContactNumber,
		EnrollmentEmail:           in.Email,
		EnrollmentAddress:         in.Address,
		EnrollmentRequirements:    in.Requirements,
		EnrollmentStatus:          model.EnrollmentStatusPending,
	}

	breakdown := fees.ResolveFees(in.GradeLevel)

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enr).Error; err != nil {
			return err
		}
		if breakdown != nil {
			soa := soaModel.StudentSoaModel{
				StudentSoaEnrollmentID:            enr.EnrollmentID,
				StudentSoaFeeBreakdown:            datatypes.NewJSONType(*breakdown),
				StudentSoaTotalAssessmentCentavos: breakdown.Total(),
				StudentSoaBalanceCentavos:         breakdown.Total(),
			}
			if err := tx.Create(&soa).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		status, msg := statusForSubmitError(err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "enrollment submitted", dto.ToEnrollmentResponse(enr))
}

// -----------------------------------------
// Track (GET /enrollments/track/:reference): public status tracker
// -----------------------------------------
func (ctl *EnrollmentController) Track(c *fiber.Ctx) error {
	reference := helper.NormalizeReferenceNumber(c.Params("reference"))
	if !helper.IsReferenceNumber(reference) {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid reference number")
	}

	var enr model.EnrollmentModel
	if err := ctl.DB.
		Where("enrollment_reference_number = ?", reference).
		Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no enrollment found for this reference number")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.ToEnrollmentTrackResponse(enr))
}
