package service

import (
	"fmt"
	"strings"

	"homefinder/internal/catalog"
	"homefinder/internal/model"
)

// Matcher applies the segment-specific predicate sets to the catalog.
// All operations are pure reads; catalog order is preserved.
type Matcher struct {
	catalog *catalog.Catalog
}

// NewMatcher creates a new matcher over the given catalog
func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match returns the listings satisfying every predicate of the selected
// segment. An empty catalog is not an error; the result carries a
// CatalogEmpty flag so callers can message it apart from zero matches.
// Inverted bounds (min > max) yield zero matches rather than an error.
func (m *Matcher) Match(criteria *model.PreferenceCriteria) (*model.MatchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	result := &model.MatchResult{Matches: []model.Listing{}}
	if m.catalog.Len() == 0 {
		result.CatalogEmpty = true
		return result, nil
	}

	predicate, err := m.predicateFor(criteria)
	if err != nil {
		return nil, err
	}

	for _, l := range m.catalog.All() {
		if predicate(&l) {
			result.Matches = append(result.Matches, l)
		}
	}
	result.Total = len(result.Matches)
	return result, nil
}

// predicateFor selects the predicate set for the criteria's segment
func (m *Matcher) predicateFor(c *model.PreferenceCriteria) (func(*model.Listing) bool, error) {
	switch c.Segment {
	case model.SegmentProfessional:
		return func(l *model.Listing) bool {
			return typeMatches(l, c.Type) &&
				withinBounds(l, c) &&
				l.AcceptsAudience(model.AudienceProfessionals)
		}, nil

	case model.SegmentStudent:
		if c.Type == model.ListingTypeSharedHousing {
			return func(l *model.Listing) bool {
				return m.sharedHousingMatch(l, c)
			}, nil
		}
		return func(l *model.Listing) bool {
			return typeMatches(l, c.Type) &&
				withinBounds(l, c) &&
				l.AcceptsAudience(model.AudienceStudents)
		}, nil

	case model.SegmentFamily:
		return func(l *model.Listing) bool {
			return typeMatches(l, c.Type) &&
				withinBounds(l, c) &&
				l.AcceptsAudience(model.AudienceFamilies) &&
				(!c.ProximitySchoolsRequired || l.ProximitySchools) &&
				(!c.ProximityParksRequired || l.ProximityParks)
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown segment %q", model.ErrValidation, c.Segment)
}

// sharedHousingMatch applies the Student / Shared Housing predicate set.
// A listing is rejected on gender only when it requires gender-matching
// and the requester's gender differs from the listing's stated gender.
func (m *Matcher) sharedHousingMatch(l *model.Listing, c *model.PreferenceCriteria) bool {
	if l.Type != model.ListingTypeSharedHousing || l.SharedHousing == nil {
		return false
	}
	sh := l.SharedHousing
	return l.Price <= c.PriceMax &&
		(!sh.SameSexPreference || sh.Gender == c.Gender) &&
		sh.IsStudent &&
		sh.CurrentOccupants < sh.MaxOccupants &&
		l.AcceptsAudience(model.AudienceStudents)
}

func typeMatches(l *model.Listing, t model.ListingType) bool {
	return strings.EqualFold(string(l.Type), string(t))
}

func withinBounds(l *model.Listing, c *model.PreferenceCriteria) bool {
	return l.Price >= c.PriceMin && l.Price <= c.PriceMax &&
		l.Size >= c.SizeMin && l.Size <= c.SizeMax
}
