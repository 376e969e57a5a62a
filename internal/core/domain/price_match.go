package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MatchFailure names the first filter stage that left a break without any
// candidate price.
type MatchFailure string

const (
	FailNoStationPrices    MatchFailure = "No station pricing rows"
	FailSalesHouseMismatch MatchFailure = "Sales house mismatch"
	FailDurationMismatch   MatchFailure = "Duration mismatch"
	FailHourMismatch       MatchFailure = "Hour mismatch"
)

// PriceAssignment is the resolved price of one break.
type PriceAssignment struct {
	BreakID int64 `json:"break_id"`
	PriceID int64 `json:"price_id"`
}

// UnmatchedBreak is a break no price row could be resolved for.
type UnmatchedBreak struct {
	Break  Break        `json:"break"`
	Reason MatchFailure `json:"reason"`
}

// ResolvePrices picks, for every break, the single applicable price row.
//
// Candidates are narrowed stage by stage: station, sales house, spot
// duration, hour of day. The surviving row with the highest ID wins, so a
// rule entered later overrides an earlier one regardless of how specific
// either is. Breaks are returned in input order.
func ResolvePrices(breaks []Break, prices []StationPrice) ([]PriceAssignment, []UnmatchedBreak) {
	ordered := make([]StationPrice, len(prices))
	copy(ordered, prices)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID > ordered[j].ID })

	byStation := make(map[int64][]StationPrice)
	for _, p := range ordered {
		byStation[p.StationID] = append(byStation[p.StationID], p)
	}

	matched := make([]PriceAssignment, 0, len(breaks))
	var unmatched []UnmatchedBreak
	for _, b := range breaks {
		price, reason := resolveBreak(b, byStation[b.StationID])
		if price == nil {
			unmatched = append(unmatched, UnmatchedBreak{Break: b, Reason: reason})
			continue
		}
		matched = append(matched, PriceAssignment{BreakID: b.ID, PriceID: price.ID})
	}
	return matched, unmatched
}

// resolveBreak applies the filter stages to the station's rows, which are
// already in priority order.
func resolveBreak(b Break, candidates []StationPrice) (*StationPrice, MatchFailure) {
	if len(candidates) == 0 {
		return nil, FailNoStationPrices
	}
	candidates = filterPrices(candidates, func(p StationPrice) bool {
		return p.SalesHouseID == nil || (b.SalesHouseID != nil && *p.SalesHouseID == *b.SalesHouseID)
	})
	if len(candidates) == 0 {
		return nil, FailSalesHouseMismatch
	}
	candidates = filterPrices(candidates, func(p StationPrice) bool {
		return p.Duration == nil || *p.Duration == b.SpotDuration
	})
	if len(candidates) == 0 {
		return nil, FailDurationMismatch
	}
	hour := b.Time.Hour()
	candidates = filterPrices(candidates, func(p StationPrice) bool {
		return p.CoversHour(hour)
	})
	if len(candidates) == 0 {
		return nil, FailHourMismatch
	}
	return &candidates[0], ""
}

// CoversHour reports whether the rule's hour range admits hour. The range is
// half-open; a rule without hours admits every hour. A rule with only one
// bound admits none.
func (p StationPrice) CoversHour(hour int) bool {
	switch {
	case p.StartHour == nil && p.EndHour == nil:
		return true
	case p.StartHour == nil || p.EndHour == nil:
		return false
	}
	return *p.StartHour <= hour && hour < *p.EndHour
}

func filterPrices(in []StationPrice, keep func(StationPrice) bool) []StationPrice {
	out := make([]StationPrice, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// PriceAssignmentError reports the breaks of a pricing date that could not be
// priced. Nothing is persisted when it is returned.
type PriceAssignmentError struct {
	PriceDate time.Time
	Unmatched []UnmatchedBreak
}

func (e *PriceAssignmentError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d break(s) without a price for sheet %s", len(e.Unmatched), e.PriceDate.Format(DateLayout))
	for i, u := range e.Unmatched {
		if i == 5 {
			fmt.Fprintf(&sb, "; and %d more", len(e.Unmatched)-i)
			break
		}
		fmt.Fprintf(&sb, "; break %d at %s: %s", u.Break.ID, u.Break.Time.Format("2006-01-02 15:04"), u.Reason)
	}
	return sb.String()
}
