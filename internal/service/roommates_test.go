package service

import (
	"errors"
	"math"
	"testing"

	"homefinder/internal/model"
)

func TestBestMatch(t *testing.T) {
	matcher := NewRoommateMatcher(DefaultCandidates())

	tests := []struct {
		name     string
		traits   []float64
		wantName string
		wantSim  float64
	}{
		{
			name:     "quiet pet owner",
			traits:   []float64{1, 0, 1},
			wantName: "User A",
			wantSim:  1,
		},
		{
			name:     "social pet owner",
			traits:   []float64{0, 1, 1},
			wantName: "User B",
			wantSim:  1,
		},
		{
			name:     "quiet and social",
			traits:   []float64{1, 1, 0},
			wantName: "User C",
			wantSim:  1,
		},
		{
			name:     "all traits ties break on candidate order",
			traits:   []float64{1, 1, 1},
			wantName: "User A",
			wantSim:  2 / (math.Sqrt(3) * math.Sqrt(2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, sim, err := matcher.BestMatch(tt.traits)
			if err != nil {
				t.Fatalf("BestMatch returned error: %v", err)
			}
			if best.Name != tt.wantName {
				t.Errorf("expected %s, got %s", tt.wantName, best.Name)
			}
			if math.Abs(sim-tt.wantSim) > scoreEpsilon {
				t.Errorf("expected similarity %v, got %v", tt.wantSim, sim)
			}
		})
	}
}

func TestBestMatchZeroVector(t *testing.T) {
	matcher := NewRoommateMatcher(DefaultCandidates())

	best, sim, err := matcher.BestMatch([]float64{0, 0, 0})
	if err != nil {
		t.Fatalf("BestMatch returned error: %v", err)
	}
	if sim != 0 {
		t.Errorf("zero-magnitude vector should score 0 against every candidate, got %v", sim)
	}
	if best.Name != "User A" {
		t.Errorf("expected the first candidate on a full tie, got %s", best.Name)
	}
}

func TestBestMatchDimensionMismatch(t *testing.T) {
	matcher := NewRoommateMatcher(DefaultCandidates())

	_, _, err := matcher.BestMatch([]float64{1, 0})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBestMatchNoCandidates(t *testing.T) {
	matcher := NewRoommateMatcher(nil)

	_, _, err := matcher.BestMatch([]float64{1, 0, 1})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
