package pricing

// Mode is the buyer's selected purchase tier. Each mode maps 1:1 to a tier
// name in the catalog and drives price resolution and the bundle multiplier.
type Mode string

const (
	ModeConsumer    Mode = "Consumer"
	ModeDropshipper Mode = "Dropshipper"
	ModeAgenKecil   Mode = "Agen Kecil"
	ModeSilver      Mode = "Silver"
	ModeGold        Mode = "Gold"
	ModePlatinum    Mode = "Platinum"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeConsumer, ModeDropshipper, ModeAgenKecil, ModeSilver, ModeGold, ModePlatinum}

var labels = map[Mode]string{
	ModeConsumer:    "Konsumen",
	ModeDropshipper: "Dropshipper",
	ModeAgenKecil:   "Agen Kecil",
	ModeSilver:      "Paket Silver",
	ModeGold:        "Paket Gold",
	ModePlatinum:    "Paket Platinum",
}

var multipliers = map[Mode]int{
	ModeSilver:   12,
	ModeGold:     30,
	ModePlatinum: 100,
}

// Fixed reference amounts, in rupiah, a bundle total is compared against.
var targets = map[Mode]int64{
	ModeSilver:   6_366_000,
	ModeGold:     13_905_000,
	ModePlatinum: 37_500_000,
}

func (m Mode) Valid() bool {
	_, ok := labels[m]
	return ok
}

// TierName is the catalog tier this mode prices against.
func (m Mode) TierName() string { return string(m) }

func (m Mode) Label() string { return labels[m] }

// Multiplier is the number of units purchased per bundle action: 1 for the
// single-unit modes, 12/30/100 for Silver/Gold/Platinum.
func (m Mode) Multiplier() int {
	if n, ok := multipliers[m]; ok {
		return n
	}
	return 1
}

// Target reports the bundle target amount; ok is false for modes without one.
func (m Mode) Target() (int64, bool) {
	t, ok := targets[m]
	return t, ok
}

// IsBundle reports whether the mode buys in bulk (multiplier > 1).
func (m Mode) IsBundle() bool { return m.Multiplier() > 1 }

// Parse accepts either a tier name ("Silver") or a display label
// ("Paket Silver") and reports whether it names a known mode.
func Parse(s string) (Mode, bool) {
	m := Mode(s)
	if m.Valid() {
		return m, true
	}
	for mode, label := range labels {
		if label == s {
			return mode, true
		}
	}
	return "", false
}
