package service

import (
	"encoding/json"
	"fmt"

	"homefinder/internal/catalog"
	"homefinder/internal/model"
	"homefinder/internal/session"
)

// requiredIncomeFactor is how many times the listing price the user's
// monthly income must cover.
const requiredIncomeFactor = 2

// EligibilityAssessor decides whether a user may pursue a listing and
// records qualifying listings on the session's homes log.
type EligibilityAssessor struct {
	catalog *catalog.Catalog
	session *session.Session
}

// NewEligibilityAssessor creates a new assessor
func NewEligibilityAssessor(c *catalog.Catalog, s *session.Session) *EligibilityAssessor {
	return &EligibilityAssessor{catalog: c, session: s}
}

// Assess applies the income/age rule to the profile and the listing with
// the given id. A qualifying listing is appended (serialized) to the
// homes log; an unknown id yields model.ErrNotFound. Unset profile
// fields are zero values and fail the comparison.
func (a *EligibilityAssessor) Assess(profile model.UserProfile, listingID int64) (bool, error) {
	listing, err := a.catalog.GetByID(listingID)
	if err != nil {
		return false, err
	}

	requiredIncome := listing.Price * requiredIncomeFactor
	if profile.MonthlyIncome < requiredIncome || profile.Age < 18 {
		return false, nil
	}

	serialized, err := json.Marshal(listing)
	if err != nil {
		return false, fmt.Errorf("failed to serialize listing: %w", err)
	}
	a.session.AppendHome(string(serialized))
	return true, nil
}
