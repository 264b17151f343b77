package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entrykind", validateEntryKind)
	}
}

// validateEntryKind checks that a bound field holds a known ledger entry kind.
// A parameter narrows the accepted set: `entrykind=charge` admits only the
// debit-side kinds and `entrykind=payment` only PAYMENT and REFUND; without a
// parameter any member of the closed kind set passes.
func validateEntryKind(fl validator.FieldLevel) bool {
	kind := domain.EntryKind(fl.Field().String())
	switch fl.Param() {
	case "charge":
		return kind.IsCharge()
	case "payment":
		return kind.IsPayment()
	default:
		return kind.IsValid()
	}
}
