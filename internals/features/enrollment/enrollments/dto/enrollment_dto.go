// file: internals/features/enrollment/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"srcs_backend/internals/features/enrollment/enrollments/model"
)

////////////////////////////////////////////////////////////////////////////////
// ENROLLMENTS: DTO
////////////////////////////////////////////////////////////////////////////////

// Create (public enrollment form)
type EnrollmentCreateDTO struct {
	LastName      string   `json:"last_name" validate:"required,max=80"`
	FirstName     string   `json:"first_name" validate:"required,max=80"`
	MiddleName    *string  `json:"middle_name,omitempty" validate:"omitempty,max=80"`
	DateOfBirth   string   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	GradeLevel    string   `json:"grade_level" validate:"required,max=20"`
	SchoolYear    string   `json:"school_year" validate:"required,max=12"`
	GuardianName  string   `json:"guardian_name" validate:"required,max=160"`
	ContactNumber string   `json:"contact_number" validate:"required,max=20"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email,max=160"`
	Address       string   `json:"address" validate:"required"`
	Requirements  []string `json:"requirements,omitempty" validate:"omitempty,dive,max=80"`
}

// Status update (admin)
type EnrollmentStatusUpdateDTO struct {
	Status string `json:"status" validate:"required,oneof=Pending Enrolled Rejected"`
}

// Full response (admin)
type EnrollmentResponse struct {
	EnrollmentID    uuid.UUID `json:"enrollment_id"`
	ReferenceNumber string    `json:"reference_number"`
	StudentKey      string    `json:"student_key"`

	LastName    string    `json:"last_name"`
	FirstName   string    `json:"first_name"`
	MiddleName  *string   `json:"middle_name,omitempty"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`

	GradeLevel string `json:"grade_level"`
	SchoolYear string `json:"school_year"`

	GuardianName  string   `json:"guardian_name"`
	ContactNumber string   `json:"contact_number"`
	Email         *string  `json:"email,omitempty"`
	Address       string   `json:"address"`
	Requirements  []string `json:"requirements,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tracker response (public): limited projection keyed by reference number.
type EnrollmentTrackResponse struct {
	ReferenceNumber string    `json:"reference_number"`
	FullName        string    `json:"full_name"`
	GradeLevel      string    `json:"grade_level"`
	SchoolYear      string    `json:"school_year"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToEnrollmentResponse(m model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:    m.EnrollmentID,
		ReferenceNumber: m.EnrollmentReferenceNumber,
		StudentKey:      m.EnrollmentStudentKey,

		LastName:    m.EnrollmentLastName,
		FirstName:   m.EnrollmentFirstName,
		MiddleName:  m.EnrollmentMiddleName,
		FullName:    m.FullName(),
		DateOfBirth: m.EnrollmentDateOfBirth,

		GradeLevel: m.EnrollmentGradeLevel,
		SchoolYear: m.EnrollmentSchoolYear,

		GuardianName:  m.EnrollmentGuardianName,
		ContactNumber: m.EnrollmentContactNumber,
		Email:         m.EnrollmentEmail,
		Address:       m.EnrollmentAddress,
		Requirements:  m.EnrollmentRequirements,

		Status:    string(m.EnrollmentStatus),
		CreatedAt: m.EnrollmentCreatedAt,
		UpdatedAt: m.EnrollmentUpdatedAt,
	}
}

func ToEnrollmentResponses(list []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToEnrollmentResponse(m))
	}
	return out
}

func ToEnrollmentTrackResponse(m model.EnrollmentModel) EnrollmentTrackResponse {
	return EnrollmentTrackResponse{
		ReferenceNumber: m.EnrollmentReferenceNumber,
		FullName:        m.FullName(),
		GradeLevel:      m.EnrollmentGradeLevel,
		SchoolYear:      m.EnrollmentSchoolYear,
		Status:          string(m.EnrollmentStatus),
		SubmittedAt:     m.EnrollmentCreatedAt,
	}
}
