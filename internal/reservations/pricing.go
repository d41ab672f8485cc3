package reservations

import "strconv"

// OptionPrices is the single source of truth for per-option pricing, in won.
var OptionPrices = struct {
	ExtraCapacity   int
	Multitrack      int
	PersonalMonitor int
	ExtraOperator   int // per hour
}{
	ExtraCapacity:   100000,
	Multitrack:      100000,
	PersonalMonitor: 100000,
	ExtraOperator:   20000,
}

// ToMinutes converts an HH:MM string to minutes since midnight.
// The caller guarantees the time regex already matched.
func ToMinutes(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}

// ComputeAdditionalPrice sums the selected option prices. Unset flags
// contribute zero.
func ComputeAdditionalPrice(opts Options) int {
	total := 0
	if opts.ExtraCapacity {
		total += OptionPrices.ExtraCapacity
	}
	if opts.Multitrack {
		total += OptionPrices.Multitrack
	}
	if opts.PersonalMonitor {
		total += OptionPrices.PersonalMonitor
	}
	if opts.ExtraOperator {
		total += OptionPrices.ExtraOperator * opts.ExtraOperatorHours
	}
	return total
}
