// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "srcs_backend/internals/features/enrollment/enrollments/model"
	paymentModel "srcs_backend/internals/features/finance/payments/model"
	"srcs_backend/internals/features/finance/reports/service"
	soaModel "srcs_backend/internals/features/finance/soa/model"
	helper "srcs_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type collectionScanRow struct {
	OrNumber    string    `gorm:"column:payment_or_number"`
	LastName    string    `gorm:"column:enrollment_last_name"`
	FirstName   string    `gorm:"column:enrollment_first_name"`
	GradeLevel  string    `gorm:"column:enrollment_grade_level"`
	Mode        string    `gorm:"column:payment_mode"`
	ProcessedBy string    `gorm:"column:payment_processed_by"`
	PaidAt      time.Time `gorm:"column:payment_paid_at"`
	Amount      int64     `gorm:"column:payment_amount_centavos"`
}

// -----------------------------------------
// Collections (GET /reports/collections?date_from=&date_to=[&format=xlsx])
// Non-void transactions inside an inclusive local day range, with a
// trailing grand total. format=xlsx streams a spreadsheet instead.
// -----------------------------------------
func (ctl *ReportController) Collections(c *fiber.Ctx) error {
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to", dateFrom)

	r, err := service.ParseDayRange(dateFrom, dateTo, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var scanned []collectionScanRow
	if err := ctl.DB.
		Table("payments").
		Select(`payment_or_number, enrollment_last_name, enrollment_first_name,
			enrollment_grade_level, payment_mode, payment_processed_by,
			payment_paid_at, payment_amount_centavos`).
		Joins("JOIN student_soas ON student_soa_id = payment_soa_id").
		Joins("JOIN enrollments ON enrollment_id = student_soa_enrollment_id").
		Where("payment_is_void = FALSE").
		Where("payment_paid_at >= ? AND payment_paid_at < ?", r.Start, r.EndExclusive).
		Order("payment_paid_at ASC").
		Scan(&scanned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	rows := make([]service.CollectionRow, 0, len(scanned))
	for _, s := range scanned {
		rows = append(rows, service.CollectionRow{
			OrNumber:       s.OrNumber,
			StudentName:    s.LastName + ", " + s.FirstName,
			GradeLevel:     s.GradeLevel,
			Mode:           s.Mode,
			ProcessedBy:    s.ProcessedBy,
			PaidAt:         s.PaidAt,
			AmountCentavos: s.Amount,
		})
	}

	report := service.BuildCollectionReport(dateFrom, dateTo, r, rows)

	if c.Query("format") == "xlsx" {
		f, err := service.CollectionReportXLSX(report)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "report export failed")
		}
		defer f.Close()

		filename := fmt.Sprintf("collections_%s_%s.xlsx", dateFrom, dateTo)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return f.Write(c.Response().BodyWriter())
	}

	return helper.JsonOK(c, "ok", report)
}

// -----------------------------------------
// Receipt (GET /payments/:id/receipt)
// Pure projection of one payment + student identity; voided records
// come back flagged so the renderer can watermark them.
// -----------------------------------------
func (ctl *ReportController) Receipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}

	var p paymentModel.PaymentModel
	if err := ctl.DB.Where("payment_id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var soa soaModel.StudentSoaModel
	if err := ctl.DB.Where("student_soa_id = ?", p.PaymentSoaID).Take(&soa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var enr enrollmentModel.EnrollmentModel
	if err := ctl.DB.Where("enrollment_id = ?", soa.StudentSoaEnrollmentID).Take(&enr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", service.BuildReceipt(p, enr))
}
