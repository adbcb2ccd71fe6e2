// file: internals/features/finance/soa/model/student_soa_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"srcs_backend/internals/features/finance/fees"
)

// =========================================================
// DERIVED STATUS: never persisted; computed from balance
// =========================================================

type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "Unpaid"
	PaymentStatusPartial   PaymentStatus = "Partial"
	PaymentStatusFullyPaid PaymentStatus = "Fully Paid"
)

// StatusForBalance derives the display status from the running balance
// against the total assessment. Persisting this alongside the balance
// invites the two to drift apart, so it is computed at read time only.
func StatusForBalance(balanceCentavos, totalAssessmentCentavos, subsidyCentavos int64) PaymentStatus {
	switch {
	case balanceCentavos <= 0:
		return PaymentStatusFullyPaid
	case balanceCentavos >= totalAssessmentCentavos-subsidyCentavos:
		return PaymentStatusUnpaid
	default:
		return PaymentStatusPartial
	}
}

// =========================================================
// MODEL: statement of accounts, one per enrollment
// =========================================================

type StudentSoaModel struct {
	// PK
	StudentSoaID uuid.UUID `gorm:"column:student_soa_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_soa_id"`

	// FK -> enrollments(enrollment_id); one SOA per enrollment
	StudentSoaEnrollmentID uuid.UUID `gorm:"column:student_soa_enrollment_id;type:uuid;not null;uniqueIndex:uq_student_soa_enrollment" json:"student_soa_enrollment_id"`

	// Fee schedule snapshot taken at enrollment time
	StudentSoaFeeBreakdown datatypes.JSONType[fees.FeeBreakdown] `gorm:"column:student_soa_fee_breakdown;type:jsonb;not null" json:"student_soa_fee_breakdown"`

	// Assessment & subsidy (integer centavos)
	StudentSoaTotalAssessmentCentavos int64                                `gorm:"column:student_soa_total_assessment_centavos;not null;check:student_soa_total_assessment_centavos>=0" json:"student_soa_total_assessment_centavos"`
	StudentSoaSubsidyCentavos         int64                                `gorm:"column:student_soa_subsidy_centavos;not null;default:0;check:student_soa_subsidy_centavos>=0" json:"student_soa_subsidy_centavos"`
	StudentSoaSubsidyBreakdown        datatypes.JSONType[map[string]int64] `gorm:"column:student_soa_subsidy_breakdown;type:jsonb" json:"student_soa_subsidy_breakdown"`

	// Running balance; always recomputable as
	// assessment - subsidy - sum(non-void payment amounts).
	StudentSoaBalanceCentavos int64 `gorm:"column:student_soa_balance_centavos;not null" json:"student_soa_balance_centavos"`

	// Timestamps
	StudentSoaCreatedAt time.Time      `gorm:"column:student_soa_created_at;not null;autoCreateTime" json:"student_soa_created_at"`
	StudentSoaUpdatedAt time.Time      `gorm:"column:student_soa_updated_at;not null;autoUpdateTime" json:"student_soa_updated_at"`
	StudentSoaDeletedAt gorm.DeletedAt `gorm:"column:student_soa_deleted_at;index" json:"-"`
}

func (StudentSoaModel) TableName() string {
	return "student_soas"
}

// Status derives the payment status from the current balance.
func (m *StudentSoaModel) Status() PaymentStatus {
	return StatusForBalance(
		m.StudentSoaBalanceCentavos,
		m.StudentSoaTotalAssessmentCentavos,
		m.StudentSoaSubsidyCentavos,
	)
}
