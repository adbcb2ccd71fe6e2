// file: internals/features/enrollment/enrollments/controller/enrollment_admin_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"srcs_backend/internals/features/enrollment/enrollments/dto"
	"srcs_backend/internals/features/enrollment/enrollments/model"
	helper "srcs_backend/internals/helpers"
)

func buildOrderClause(sortBy, order string) string {
	// whitelist of sortable keys -> physical columns
	allowed := map[string]string{
		"created_at":  "enrollment_created_at",
		"updated_at":  "enrollment_updated_at",
		"last_name":   "enrollment_last_name",
		"grade_level": "enrollment_grade_level",
		"status":      "enrollment_status",
	}
	col, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// -----------------------------------------
// List (GET /enrollments)
// Query filters (optional):
// - status, grade_level, school_year
// - q (matches last/first name or reference number)
// - sort_by (created_at|updated_at|last_name|grade_level|status), order
// - page, per_page
// -----------------------------------------
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.EnrollmentModel{})

	if v := c.Query("status"); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}
	if v := c.Query("grade_level"); v != "" {
		q = q.Where("enrollment_grade_level = ?", v)
	}
	if v := c.Query("school_year"); v != "" {
		q = q.Where("enrollment_school_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToUpper(v) + "%"
		q = q.Where(
			"UPPER(enrollment_last_name) LIKE ? OR UPPER(enrollment_first_name) LIKE ? OR UPPER(enrollment_reference_number) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.EnrollmentModel
	if err := q.
		Order(buildOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok",
		dto.ToEnrollmentResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	)
}

// -----------------------------------------
// Detail (GET /enrollments/:id)
// -----------------------------------------
func (ctl *EnrollmentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var enr model.EnrollmentModel
	if err := ctl.DB.Where("enrollment_id = ?", id).Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.ToEnrollmentResponse(enr))
}

// -----------------------------------------
// UpdateStatus (PATCH /enrollments/:id/status)
// Pending|Enrolled|Rejected: only Enrolled records accept cashiering.
// -----------------------------------------
func (ctl *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var in dto.EnrollmentStatusUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var enr model.EnrollmentModel
	if err := ctl.DB.Where("enrollment_id = ?", id).Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	enr.EnrollmentStatus = model.EnrollmentStatus(in.Status)
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", id).
		Update("enrollment_status", enr.EnrollmentStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "status updated", dto.ToEnrollmentResponse(enr))
}
