// file: internals/features/enrollment/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM: enrollment status
// =========================================================

type EnrollmentStatus string

const (
	EnrollmentStatusPending  EnrollmentStatus = "Pending"
	EnrollmentStatusEnrolled EnrollmentStatus = "Enrolled"
	EnrollmentStatusRejected EnrollmentStatus = "Rejected"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusEnrolled, EnrollmentStatusRejected:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`

	// Public tracking key: SRCS-<year>-<6-char code>
	EnrollmentReferenceNumber string `gorm:"column:enrollment_reference_number;type:varchar(20);not null;uniqueIndex:uq_enrollments_reference" json:"enrollment_reference_number"`

	// Derived document key LASTNAME-FIRSTNAME-DOB-SCHOOLYEAR;
	// unique per student per school year
	EnrollmentStudentKey string `gorm:"column:enrollment_student_key;type:varchar(160);not null;uniqueIndex:uq_enrollments_student_key" json:"enrollment_student_key"`

	// Student identity
	EnrollmentLastName    string    `gorm:"column:enrollment_last_name;type:varchar(80);not null" json:"enrollment_last_name"`
	EnrollmentFirstName   string    `gorm:"column:enrollment_first_name;type:varchar(80);not null" json:"enrollment_first_name"`
	EnrollmentMiddleName  *string   `gorm:"column:enrollment_middle_name;type:varchar(80)" json:"enrollment_middle_name,omitempty"`
	EnrollmentDateOfBirth time.Time `gorm:"column:enrollment_date_of_birth;type:date;not null" json:"enrollment_date_of_birth"`

	// Placement
	EnrollmentGradeLevel string `gorm:"column:enrollment_grade_level;type:varchar(20);not null;index:ix_enrollments_grade_level" json:"enrollment_grade_level"`
	EnrollmentSchoolYear string `gorm:"column:enrollment_school_year;type:varchar(12);not null;index:ix_enrollments_school_year" json:"enrollment_school_year"`

	// Contact
	EnrollmentGuardianName  string  `gorm:"column:enrollment_guardian_name;type:varchar(160);not null" json:"enrollment_guardian_name"`
	EnrollmentContactNumber string  `gorm:"column:enrollment_contact_number;type:varchar(20);not null" json:"enrollment_contact_number"`
	EnrollmentEmail         *string `gorm:"column:enrollment_email;type:varchar(160)" json:"enrollment_email,omitempty"`
	EnrollmentAddress       string  `gorm:"column:enrollment_address;type:text;not null" json:"enrollment_address"`

	// Registrar checklist of requirement names handed over at the
	// window (Form 137, PSA birth certificate, ...). Names only.
	EnrollmentRequirements pq.StringArray `gorm:"column:enrollment_requirements;type:text[]" json:"enrollment_requirements,omitempty"`

	// Status gates cashiering: only Enrolled records accept payments
	EnrollmentStatus EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:'Pending';index:ix_enrollments_status" json:"enrollment_status"`

	// Timestamps
	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;not null;autoCreateTime;index:ix_enrollments_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;not null;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"-"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// FullName renders "LAST, First Middle" the way printed forms expect.
func (m *EnrollmentModel) FullName() string {
	name := m.EnrollmentLastName + ", " + m.EnrollmentFirstName
	if m.EnrollmentMiddleName != nil && *m.EnrollmentMiddleName != "" {
		name += " " + *m.EnrollmentMiddleName
	}
	return name
}
