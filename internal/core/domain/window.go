package domain

import "time"

// PricingWindow is the span of break times a pricing sheet applies to. The
// window starts at the sheet date and runs up to, but not including, the
// next sheet date. A nil Next means the window is open-ended.
type PricingWindow struct {
	Start time.Time
	Next  *time.Time
}

// NewPricingWindow builds the window of the sheet dated date, given the date
// of the next later sheet if one exists.
func NewPricingWindow(date time.Time, next *time.Time) PricingWindow {
	w := PricingWindow{Start: truncateDay(date)}
	if next != nil {
		n := truncateDay(*next)
		w.Next = &n
	}
	return w
}

// LastDay is the final calendar day covered by the window: the day before
// the next sheet. It is nil for an open-ended window.
func (w PricingWindow) LastDay() *time.Time {
	if w.Next == nil {
		return nil
	}
	d := w.Next.AddDate(0, 0, -1)
	return &d
}

// Contains reports whether a break airing at t falls inside the window.
func (w PricingWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return w.Next == nil || t.Before(*w.Next)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
