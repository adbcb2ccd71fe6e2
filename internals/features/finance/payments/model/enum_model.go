// file: internals/features/finance/payments/model/enum_model.go
package model

type PaymentMode string

// Over-the-counter tender modes accepted at the cashier window.
const (
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeGCash        PaymentMode = "GCash"
	PaymentModeBankTransfer PaymentMode = "Bank Transfer"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeGCash, PaymentModeBankTransfer:
		return true
	}
	return false
}
