package service

import (
	"fmt"
	"math"
	"sort"

	"homefinder/internal/model"
)

// Scorer computes the location-explorer desirability score and the
// per-district counts sharing the same filter semantics.
type Scorer struct {
	weightPrice          float64
	weightTransportation float64
	weightSharedLiving   float64
}

// NewScorer creates a new scorer with the specified weights
func NewScorer(weightPrice, weightTransportation, weightSharedLiving float64) *Scorer {
	return &Scorer{
		weightPrice:          weightPrice,
		weightTransportation: weightTransportation,
		weightSharedLiving:   weightSharedLiving,
	}
}

// Score computes the desirability of one listing against the preference
// vector. The price term goes negative when the listing deviates from
// the target by more than 100%; the score is deliberately not clamped.
func (s *Scorer) Score(l model.Listing, pref model.LocationPreference) (float64, error) {
	if pref.Price <= 0 {
		return 0, fmt.Errorf("%w: got %v", model.ErrZeroTargetPrice, pref.Price)
	}

	priceTerm := 1 - math.Abs(l.Price-pref.Price)/pref.Price
	transportTerm := float64(l.Transportation) / 10
	sharedTerm := 0.0
	if l.SharedLiving == pref.SharedLiving {
		sharedTerm = 1.0
	}

	return s.weightPrice*priceTerm +
		s.weightTransportation*transportTerm +
		s.weightSharedLiving*sharedTerm, nil
}

// RankListings scores every listing and returns them ordered by score
// descending, ties broken by id for determinism.
func (s *Scorer) RankListings(listings []model.Listing, pref model.LocationPreference) ([]model.ScoredListing, error) {
	results := make([]model.ScoredListing, 0, len(listings))
	for _, l := range listings {
		score, err := s.Score(l, pref)
		if err != nil {
			return nil, err
		}
		results = append(results, model.ScoredListing{Listing: l, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results, nil
}

// matchesPreference is the boolean filter shared by the district counter:
// affordable, at least as close to transit as wished, same living mode.
func matchesPreference(l *model.Listing, pref model.LocationPreference) bool {
	return l.Price <= pref.Price &&
		l.Transportation >= pref.Transportation &&
		l.SharedLiving == pref.SharedLiving
}

// FilterByPreference returns the listings passing the boolean filter,
// in input order.
func (s *Scorer) FilterByPreference(listings []model.Listing, pref model.LocationPreference) []model.Listing {
	var out []model.Listing
	for i := range listings {
		if matchesPreference(&listings[i], pref) {
			out = append(out, listings[i])
		}
	}
	return out
}

// CountByDistrict filters the listings by the preference vector and
// counts the survivors per region, ordered by count descending and
// district name ascending on ties.
func (s *Scorer) CountByDistrict(listings []model.Listing, pref model.LocationPreference) []model.DistrictCount {
	counts := make(map[string]int)
	for i := range listings {
		if matchesPreference(&listings[i], pref) {
			counts[listings[i].Region]++
		}
	}

	out := make([]model.DistrictCount, 0, len(counts))
	for district, n := range counts {
		out = append(out, model.DistrictCount{District: district, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].District < out[j].District
	})
	return out
}
