package model

import (
	"fmt"
)

// ListingType is the transaction type of a property listing
type ListingType string

const (
	ListingTypeRent          ListingType = "Rent"
	ListingTypeSale          ListingType = "Sale"
	ListingTypeSharedHousing ListingType = "Shared Housing"
)

// Audience is a target-audience tag attached to a listing
type Audience string

const (
	AudienceStudents      Audience = "Students"
	AudienceProfessionals Audience = "Professionals"
	AudienceFamilies      Audience = "Families"
	AudienceNoPreference  Audience = "No preference"
)

// Gender for shared-housing compatibility checks
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// SharedHousingDetails holds the fields that only exist on shared-housing listings
type SharedHousingDetails struct {
	Gender            Gender `json:"gender"`
	IsStudent         bool   `json:"is_student"`
	CurrentOccupants  int    `json:"current_occupants"`
	MaxOccupants      int    `json:"max_occupants"`
	SameSexPreference bool   `json:"same_sex_preference"`
}

// Listing represents a property listing
type Listing struct {
	ID               int64                 `json:"id"`
	Price            float64               `json:"price"`
	Transportation   int                   `json:"transportation"` // 1-10, higher = closer to transit
	SharedLiving     bool                  `json:"shared_living"`
	Latitude         float64               `json:"latitude"`
	Longitude        float64               `json:"longitude"`
	Region           string                `json:"region"`
	Address          string                `json:"address"`
	Type             ListingType           `json:"type"`
	Size             float64               `json:"size"` // sq. meters
	Preferences      []Audience            `json:"preferences"`
	ProximitySchools bool                  `json:"proximity_schools"`
	ProximityParks   bool                  `json:"proximity_parks"`
	OwnerName        string                `json:"owner_name"`
	SharedHousing    *SharedHousingDetails `json:"shared_housing,omitempty"`
}

// Validate checks the construction-time invariants of a listing
func (l *Listing) Validate() error {
	switch l.Type {
	case ListingTypeRent, ListingTypeSale, ListingTypeSharedHousing:
	default:
		return fmt.Errorf("%w: unknown listing type %q", ErrValidation, l.Type)
	}

	if l.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if l.Size <= 0 {
		return fmt.Errorf("%w: size must be greater than zero", ErrValidation)
	}

	if l.Type == ListingTypeSharedHousing {
		sh := l.SharedHousing
		if sh == nil {
			return fmt.Errorf("%w: shared-housing listings need occupancy details", ErrValidation)
		}
		if sh.CurrentOccupants < 0 {
			return fmt.Errorf("%w: current occupants must not be negative", ErrValidation)
		}
		if sh.MaxOccupants <= sh.CurrentOccupants {
			return fmt.Errorf("%w: max occupants (%d) must exceed current occupants (%d)",
				ErrValidation, sh.MaxOccupants, sh.CurrentOccupants)
		}
	} else if l.SharedHousing != nil {
		return fmt.Errorf("%w: occupancy details are only valid for shared-housing listings", ErrValidation)
	}

	return nil
}

// AcceptsAudience reports whether the listing targets the given audience,
// either explicitly or via the "No preference" tag.
func (l *Listing) AcceptsAudience(a Audience) bool {
	for _, p := range l.Preferences {
		if p == a || p == AudienceNoPreference {
			return true
		}
	}
	return false
}

// UserProfile holds the session user's identity and financial data.
// Age and MonthlyIncome default to zero when unset, which makes an
// incomplete profile fail the eligibility check.
type UserProfile struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Surname       string  `json:"surname"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Age           int     `json:"age"`
	Job           string  `json:"job"` // "Student", "Professional" or empty
	MonthlyIncome float64 `json:"monthly_income"`
	Gender        Gender  `json:"gender,omitempty"`
}
