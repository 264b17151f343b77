package billing

import (
	"errors"
	"fmt"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStay     = errors.New("stay must cover at least one night")
	ErrInvalidLineItem = errors.New("line item amount and quantity must not be negative")
)

// BuildSummary assembles a checkout receipt from a folio and its itemized
// charge projections. It is a pure function: no clock, no randomness, so
// identical inputs produce a byte-identical summary and reprints are exact.
// The receipt id is derived from the folio id for the same reason.
func BuildSummary(folio domain.Folio, roomRate decimal.Decimal, nights int, services []domain.ServiceLineItem, penalties []domain.PenaltyLineItem, surcharges []domain.SurchargeLineItem) (domain.CheckoutSummary, error) {
	if nights <= 0 {
		return domain.CheckoutSummary{}, ErrInvalidStay
	}
	if roomRate.IsNegative() {
		return domain.CheckoutSummary{}, ErrInvalidLineItem
	}

	summary := domain.CheckoutSummary{
		ReceiptID:    "RCPT-" + folio.FolioID,
		CustomerName: folio.CustomerName,
		RoomName:     folio.RoomName,
		RoomTypeName: folio.RoomTypeName,
		CheckInDate:  folio.CheckInDate,
		CheckOutDate: folio.CheckOutDate,
		Nights:       nights,
		RoomRate:     roomRate,
		RoomTotal:    roomRate.Mul(decimal.NewFromInt(int64(nights))),

		ServicesTotal:   decimal.Zero,
		PenaltiesTotal:  decimal.Zero,
		SurchargesTotal: decimal.Zero,

		Services:   make([]domain.ServiceLineItem, 0, len(services)),
		Penalties:  make([]domain.PenaltyLineItem, 0, len(penalties)),
		Surcharges: make([]domain.SurchargeLineItem, 0, len(surcharges)),
	}

	for _, item := range services {
		if item.Quantity < 0 || item.UnitPrice.IsNegative() {
			return domain.CheckoutSummary{}, fmt.Errorf("%w: service %q", ErrInvalidLineItem, item.Description)
		}
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		summary.Services = append(summary.Services, item)
		summary.ServicesTotal = summary.ServicesTotal.Add(item.Total)
	}
	for _, item := range penalties {
		if item.Amount.IsNegative() {
			return domain.CheckoutSummary{}, fmt.Errorf("%w: penalty %q", ErrInvalidLineItem, item.Description)
		}
		summary.Penalties = append(summary.Penalties, item)
		summary.PenaltiesTotal = summary.PenaltiesTotal.Add(item.Amount)
	}
	for _, item := range surcharges {
		if item.Amount.IsNegative() {
			return domain.CheckoutSummary{}, fmt.Errorf("%w: surcharge %q", ErrInvalidLineItem, item.Description)
		}
		summary.Surcharges = append(summary.Surcharges, item)
		summary.SurchargesTotal = summary.SurchargesTotal.Add(item.Amount)
	}

	summary.GrandTotal = summary.RoomTotal.
		Add(summary.ServicesTotal).
		Add(summary.PenaltiesTotal).
		Add(summary.SurchargesTotal)

	return summary, nil
}

// AddAdHocCharge returns a new summary with one charge appended and only the
// affected sub-total plus the grand total recomputed. This models adding a
// service, penalty or surcharge at the checkout desk without re-querying all
// source records.
func AddAdHocCharge(summary domain.CheckoutSummary, kind domain.EntryKind, description string, amount decimal.Decimal) (domain.CheckoutSummary, error) {
	if amount.IsNegative() {
		return domain.CheckoutSummary{}, ErrInvalidLineItem
	}

	switch kind {
	case domain.KindServiceCharge:
		summary.Services = append(cloneSlice(summary.Services), domain.ServiceLineItem{
			Description: description,
			Quantity:    1,
			UnitPrice:   amount,
			Total:       amount,
		})
		summary.ServicesTotal = summary.ServicesTotal.Add(amount)
	case domain.KindPenaltyCharge:
		summary.Penalties = append(cloneSlice(summary.Penalties), domain.PenaltyLineItem{
			Description: description,
			Amount:      amount,
		})
		summary.PenaltiesTotal = summary.PenaltiesTotal.Add(amount)
	case domain.KindSurcharge:
		summary.Surcharges = append(cloneSlice(summary.Surcharges), domain.SurchargeLineItem{
			Description: description,
			Amount:      amount,
		})
		summary.SurchargesTotal = summary.SurchargesTotal.Add(amount)
	default:
		return domain.CheckoutSummary{}, domain.ErrInvalidKind
	}

	summary.GrandTotal = summary.GrandTotal.Add(amount)
	return summary, nil
}

// cloneSlice copies before append so the input summary stays untouched even
// when the backing array has spare capacity.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
