// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"srcs_backend/internals/features/finance/payments/model"
	helper "srcs_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS: DTO
////////////////////////////////////////////////////////////////////////////////

// Create (cashier posts one transaction against an SOA)
type PaymentCreateDTO struct {
	PaymentAllocation map[string]int64 `json:"payment_allocation" validate:"required,min=1"`
	PaymentMode       string           `json:"payment_mode" validate:"required,oneof=Cash GCash 'Bank Transfer'"`
	PaymentOrNumber   string           `json:"payment_or_number,omitempty" validate:"omitempty,max=30"`
	PaymentPaidAt     *time.Time       `json:"payment_paid_at,omitempty"`
}

// Update (full content replace of one non-void record)
type PaymentUpdateDTO struct {
	PaymentAllocation map[string]int64 `json:"payment_allocation" validate:"required,min=1"`
	PaymentMode       string           `json:"payment_mode,omitempty" validate:"omitempty,oneof=Cash GCash 'Bank Transfer'"`
	PaymentOrNumber   string           `json:"payment_or_number,omitempty" validate:"omitempty,max=30"`
	PaymentPaidAt     *time.Time       `json:"payment_paid_at,omitempty"`
}

// Response
type PaymentResponse struct {
	PaymentID             uuid.UUID        `json:"payment_id"`
	PaymentSoaID          uuid.UUID        `json:"payment_soa_id"`
	PaymentOrNumber       string           `json:"payment_or_number"`
	PaymentAmountCentavos int64            `json:"payment_amount_centavos"`
	PaymentAmountDisplay  string           `json:"payment_amount_display"`
	PaymentAllocation     map[string]int64 `json:"payment_allocation"`
	PaymentMode           string           `json:"payment_mode"`
	PaymentPaidAt         time.Time        `json:"payment_paid_at"`
	PaymentProcessedBy    string           `json:"payment_processed_by"`
	PaymentIsVoid         bool             `json:"payment_is_void"`
	PaymentVoidedAt       *time.Time       `json:"payment_voided_at,omitempty"`
	PaymentVoidedBy       *string          `json:"payment_voided_by,omitempty"`
	PaymentCreatedAt      time.Time        `json:"payment_created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentSoaID:          m.PaymentSoaID,
		PaymentOrNumber:       m.PaymentOrNumber,
		PaymentAmountCentavos: m.PaymentAmountCentavos,
		PaymentAmountDisplay:  helper.FormatPeso(m.PaymentAmountCentavos),
		PaymentAllocation:     m.Allocation(),
		PaymentMode:           string(m.PaymentMode),
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentProcessedBy:    m.PaymentProcessedBy,
		PaymentIsVoid:         m.PaymentIsVoid,
		PaymentVoidedAt:       m.PaymentVoidedAt,
		PaymentVoidedBy:       m.PaymentVoidedBy,
		PaymentCreatedAt:      m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
