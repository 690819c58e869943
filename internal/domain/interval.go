package domain

import "time"

// Interval represents the occupied time span of a single appointment.
// Start must be strictly before End; Validate reports a violation instead of
// letting the overlap math silently misbehave.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval has a positive length.
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Minutes returns the interval length in whole minutes.
func (i Interval) Minutes() int64 {
	return int64(i.End.Sub(i.Start) / time.Minute)
}

// Overlaps reports whether the two intervals share any instant.
//
// The check is the union of three cases against the candidate interval i
// (S1, E1) and the other interval o (S2, E2):
//  1. S2 in [S1, E1) - the other interval starts during or at the start of i;
//  2. E2 in (S1, E1] - the other interval ends during or at the end of i;
//  3. S2 <= S1 and E2 >= E1 - the other interval envelops i entirely.
//
// The cases are not mutually exclusive, but together they catch every
// intersection of two closed-start/open-end intervals, including exact
// containment in either direction. Intervals that merely touch (one ends
// exactly where the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	s1, e1 := i.Start, i.End
	s2, e2 := o.Start, o.End

	switch {
	case (s2.After(s1) || s2.Equal(s1)) && s2.Before(e1):
		return true
	case e2.After(s1) && (e2.Before(e1) || e2.Equal(e1)):
		return true
	case (s2.Before(s1) || s2.Equal(s1)) && (e2.After(e1) || e2.Equal(e1)):
		return true
	}

	return false
}
