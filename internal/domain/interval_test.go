package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse("2006-01-02 15:04", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02 15:04", end)
	require.NoError(t, err)
	return Interval{Start: s, End: e}
}

func TestInterval_Overlaps(t *testing.T) {
	candidate := interval(t, "2024-03-13 10:00", "2024-03-13 11:00")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"enveloped by candidate", interval(t, "2024-03-13 10:30", "2024-03-13 10:45"), true},
		{"straddles candidate end", interval(t, "2024-03-13 10:45", "2024-03-13 11:15"), true},
		{"straddles candidate start", interval(t, "2024-03-13 09:30", "2024-03-13 10:15"), true},
		{"envelops candidate", interval(t, "2024-03-13 09:00", "2024-03-13 12:00"), true},
		{"identical", interval(t, "2024-03-13 10:00", "2024-03-13 11:00"), true},
		{"same start", interval(t, "2024-03-13 10:00", "2024-03-13 10:30"), true},
		{"same end", interval(t, "2024-03-13 10:30", "2024-03-13 11:00"), true},
		{"adjacent before", interval(t, "2024-03-13 09:00", "2024-03-13 10:00"), false},
		{"adjacent after", interval(t, "2024-03-13 11:00", "2024-03-13 12:00"), false},
		{"disjoint before", interval(t, "2024-03-13 08:00", "2024-03-13 09:00"), false},
		{"disjoint after", interval(t, "2024-03-13 12:00", "2024-03-13 13:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidate.Overlaps(tt.other))
		})
	}
}

// Overlap is symmetric: if A conflicts with B, B treated as candidate
// conflicts with A.
func TestInterval_OverlapsSymmetry(t *testing.T) {
	intervals := []Interval{
		interval(t, "2024-03-13 10:00", "2024-03-13 11:00"),
		interval(t, "2024-03-13 10:30", "2024-03-13 10:45"),
		interval(t, "2024-03-13 10:45", "2024-03-13 11:15"),
		interval(t, "2024-03-13 09:00", "2024-03-13 10:00"),
		interval(t, "2024-03-13 09:00", "2024-03-13 12:00"),
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a),
				"overlap must be symmetric for %v and %v", a, b)
		}
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(t, "2024-03-13 10:00", "2024-03-13 10:01").IsValid())
	assert.False(t, interval(t, "2024-03-13 10:00", "2024-03-13 10:00").IsValid())
	assert.False(t, interval(t, "2024-03-13 11:00", "2024-03-13 10:00").IsValid())
}

func TestInterval_Minutes(t *testing.T) {
	assert.Equal(t, int64(90), interval(t, "2024-03-13 10:00", "2024-03-13 11:30").Minutes())
}
