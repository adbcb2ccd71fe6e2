// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =========================================================
// MODEL: one cashiering transaction against an SOA
//
// Rows are never physically deleted or reordered: void is a
// soft flag so the audit trail and issued receipt addresses
// stay valid. Stable identity is the uuid PK, not a position.
// =========================================================

type PaymentModel struct {
	// PK: stable identity for edit/void addressing
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// FK -> student_soas(student_soa_id)
	PaymentSoaID uuid.UUID `gorm:"column:payment_soa_id;type:uuid;not null;index:ix_payments_soa" json:"payment_soa_id"`

	// Official receipt number; operator-supplied or generated
	// OR-YYMMDD-NNNN. Duplicates among active records are rejected.
	PaymentOrNumber string `gorm:"column:payment_or_number;type:varchar(30);not null;index:ix_payments_or_number" json:"payment_or_number"`

	// Amount in centavos; always > 0 and equal to the allocation sum
	PaymentAmountCentavos int64 `gorm:"column:payment_amount_centavos;not null;check:payment_amount_centavos>0" json:"payment_amount_centavos"`

	// line item -> centavos; entries are all > 0
	PaymentAllocation datatypes.JSONType[map[string]int64] `gorm:"column:payment_allocation;type:jsonb;not null" json:"payment_allocation"`

	PaymentMode   PaymentMode `gorm:"column:payment_mode;type:varchar(20);not null" json:"payment_mode"`
	PaymentPaidAt time.Time   `gorm:"column:payment_paid_at;not null;index:ix_payments_paid_at" json:"payment_paid_at"`

	// Operator identity (from the cashier token)
	PaymentProcessedBy string `gorm:"column:payment_processed_by;type:varchar(120);not null" json:"payment_processed_by"`

	// Soft void: terminal; a voided record is immutable
	PaymentIsVoid   bool       `gorm:"column:payment_is_void;not null;default:false;index:ix_payments_is_void" json:"payment_is_void"`
	PaymentVoidedAt *time.Time `gorm:"column:payment_voided_at" json:"payment_voided_at,omitempty"`
	PaymentVoidedBy *string    `gorm:"column:payment_voided_by;type:varchar(120)" json:"payment_voided_by,omitempty"`

	// Timestamps; created_at order is the ledger order
	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;autoCreateTime;index:ix_payments_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// Allocation unwraps the JSON column into a plain map.
func (m *PaymentModel) Allocation() map[string]int64 {
	return m.PaymentAllocation.Data()
}
