package service

import (
	"fmt"
	"math"

	"homefinder/internal/model"
)

// RoommateProfile is one candidate with a binary trait vector
// (quiet, social, pets).
type RoommateProfile struct {
	Name   string    `json:"name"`
	Traits []float64 `json:"traits"`
}

// RoommateMatcher finds the candidate most similar to a user's traits
// by cosine similarity.
type RoommateMatcher struct {
	candidates []RoommateProfile
}

// NewRoommateMatcher creates a matcher over the given candidates
func NewRoommateMatcher(candidates []RoommateProfile) *RoommateMatcher {
	return &RoommateMatcher{candidates: candidates}
}

// DefaultCandidates returns the demo candidate pool
func DefaultCandidates() []RoommateProfile {
	return []RoommateProfile{
		{Name: "User A", Traits: []float64{1, 0, 1}},
		{Name: "User B", Traits: []float64{0, 1, 1}},
		{Name: "User C", Traits: []float64{1, 1, 0}},
	}
}

// BestMatch returns the candidate with the highest cosine similarity to
// the given trait vector, plus the similarity value. A vector of the
// wrong dimension is a validation error.
func (m *RoommateMatcher) BestMatch(traits []float64) (RoommateProfile, float64, error) {
	if len(m.candidates) == 0 {
		return RoommateProfile{}, 0, fmt.Errorf("%w: no candidates configured", model.ErrValidation)
	}

	best := m.candidates[0]
	bestSim := math.Inf(-1)
	for _, c := range m.candidates {
		if len(c.Traits) != len(traits) {
			return RoommateProfile{}, 0, fmt.Errorf("%w: expected %d traits, got %d",
				model.ErrValidation, len(c.Traits), len(traits))
		}
		sim := cosineSimilarity(traits, c.Traits)
		if sim > bestSim {
			best = c
			bestSim = sim
		}
	}
	return best, bestSim, nil
}

// cosineSimilarity returns 0 when either vector has zero magnitude
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
