package state

// Window identifies one earnings accumulator
type Window int

const (
	WindowDaily Window = iota
	WindowWeekly
	WindowMonthly
)

func (w Window) String() string {
	switch w {
	case WindowDaily:
		return "daily"
	case WindowWeekly:
		return "weekly"
	case WindowMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ResetScheduler holds the three window reset registers. The gates are
// independent: any subset may fire in a single settlement pass.
type ResetScheduler struct {
	periods map[Window]int64
	lastUs  map[Window]int64
}

func NewResetScheduler(dailyUs, weeklyUs, monthlyUs int64) *ResetScheduler {
	return &ResetScheduler{
		periods: map[Window]int64{
			WindowDaily:   dailyUs,
			WindowWeekly:  weeklyUs,
			WindowMonthly: monthlyUs,
		},
		lastUs: make(map[Window]int64),
	}
}

// Initialize sets all registers to the genesis timestamp
func (rs *ResetScheduler) Initialize(nowUs int64) {
	for w := range rs.periods {
		rs.lastUs[w] = nowUs
	}
}

// DueWindows returns the windows whose full period has elapsed, in fixed
// order daily, weekly, monthly.
func (rs *ResetScheduler) DueWindows(nowUs int64) []Window {
	due := make([]Window, 0, 3)
	for _, w := range []Window{WindowDaily, WindowWeekly, WindowMonthly} {
		if nowUs-rs.lastUs[w] >= rs.periods[w] {
			due = append(due, w)
		}
	}
	return due
}

// MarkReset advances a window's register to the settlement time
func (rs *ResetScheduler) MarkReset(w Window, nowUs int64) {
	rs.lastUs[w] = nowUs
}

// LastReset returns a window's register (for snapshots and queries)
func (rs *ResetScheduler) LastReset(w Window) int64 {
	return rs.lastUs[w]
}

// RestoreLastReset directly sets a register (used for snapshot restore)
func (rs *ResetScheduler) RestoreLastReset(w Window, tsUs int64) {
	rs.lastUs[w] = tsUs
}
