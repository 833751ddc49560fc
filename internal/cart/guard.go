package cart

import (
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
)

// Notice is the advisory raised when the agent-mode constraint is violated.
// Shortfall is the rupiah amount still needed to reach the Silver package
// target; the UI offers buying the Silver bundle as the one-click remedy.
type Notice struct {
	Shortfall int64
}

// NextMode applies the agent-mode eligibility rule after a cart or mode
// change. Agen Kecil is only valid while the cart holds exactly one distinct
// product; once a second distinct product appears the mode is forced back to
// Consumer and a notice is returned. The function is pure and idempotent:
// re-evaluating the same violating state yields the same result.
func NextMode(mode pricing.Mode, distinctCount int, totalPrice int64) (pricing.Mode, *Notice) {
	if mode != pricing.ModeAgenKecil || distinctCount <= 1 {
		return mode, nil
	}
	target, _ := pricing.ModeSilver.Target()
	shortfall := target - totalPrice
	if shortfall < 0 {
		shortfall = 0
	}
	return pricing.ModeConsumer, &Notice{Shortfall: shortfall}
}
