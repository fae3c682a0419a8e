package model

import (
	"fmt"
	"time"
)

// Segment is the user category driving which predicate set applies
type Segment string

const (
	SegmentProfessional Segment = "Professional"
	SegmentStudent      Segment = "Student"
	SegmentFamily       Segment = "Family"
)

// PreferenceCriteria is the per-flow filter input supplied by a user.
// It is constructed fresh for every matching request and never stored.
type PreferenceCriteria struct {
	Segment  Segment     `json:"segment" binding:"required"`
	Type     ListingType `json:"transaction_type" binding:"required"`
	PriceMin float64     `json:"price_min"`
	PriceMax float64     `json:"price_max"`
	SizeMin  float64     `json:"size_min"`
	SizeMax  float64     `json:"size_max"`

	// Family-only flags
	ProximitySchoolsRequired bool `json:"proximity_schools_required"`
	ProximityParksRequired   bool `json:"proximity_parks_required"`

	// Shared-housing-only fields. MaxOccupantsWished and SameGenderPreferred
	// are collected but not applied as predicates; only the listing's own
	// same-sex preference is enforced.
	Gender              Gender `json:"gender,omitempty"`
	SameGenderPreferred bool   `json:"same_gender_preferred"`
	MaxOccupantsWished  int    `json:"max_occupants_wished"`
}

// Validate rejects unknown segments and segment/type combinations the
// guided flows never produce. Inverted numeric bounds are not an error
// here; the matcher treats them as zero matches.
func (c *PreferenceCriteria) Validate() error {
	switch c.Segment {
	case SegmentProfessional, SegmentFamily:
		if c.Type != ListingTypeRent && c.Type != ListingTypeSale {
			return fmt.Errorf("%w: %s flow supports Rent or Sale, got %q", ErrValidation, c.Segment, c.Type)
		}
	case SegmentStudent:
		if c.Type != ListingTypeRent && c.Type != ListingTypeSharedHousing {
			return fmt.Errorf("%w: Student flow supports Rent or Shared Housing, got %q", ErrValidation, c.Type)
		}
	default:
		return fmt.Errorf("%w: unknown segment %q", ErrValidation, c.Segment)
	}

	if c.PriceMin < 0 || c.PriceMax < 0 || c.SizeMin < 0 || c.SizeMax < 0 {
		return fmt.Errorf("%w: bounds must not be negative", ErrValidation)
	}

	return nil
}

// MatchResult is the outcome of one matching flow. CatalogEmpty
// distinguishes "no properties available" from "zero matches found";
// both are valid non-error outcomes with different user messaging.
type MatchResult struct {
	Matches      []Listing `json:"matches"`
	Total        int       `json:"total"`
	CatalogEmpty bool      `json:"catalog_empty"`
}

// LocationPreference is the simple preference vector used by the
// location explorer for scoring and district counting.
type LocationPreference struct {
	Price          float64 `json:"price"`
	Transportation int     `json:"transportation"`
	SharedLiving   bool    `json:"shared_living"`
}

// ScoredListing pairs a listing with its desirability score
type ScoredListing struct {
	Listing
	Score float64 `json:"score"`
}

// DistrictCount is the number of preference-matching listings in one district
type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// DirectMessage is one entry of the session's user-to-user message log
type DirectMessage struct {
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}
