package service

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"homefinder/internal/model"
)

const scoreEpsilon = 1e-9

func defaultScorer() *Scorer {
	return NewScorer(0.5, 0.3, 0.2)
}

func TestScoreFormula(t *testing.T) {
	scorer := defaultScorer()

	tests := []struct {
		name    string
		listing model.Listing
		pref    model.LocationPreference
		want    float64
	}{
		{
			name:    "exact price, shared match",
			listing: model.Listing{Price: 1500, Transportation: 7, SharedLiving: true},
			pref:    model.LocationPreference{Price: 1500, Transportation: 5, SharedLiving: true},
			want:    0.5*1 + 0.3*0.7 + 0.2*1, // 0.91
		},
		{
			name:    "shared mismatch drops the shared term",
			listing: model.Listing{Price: 1500, Transportation: 7, SharedLiving: false},
			pref:    model.LocationPreference{Price: 1500, Transportation: 5, SharedLiving: true},
			want:    0.5*1 + 0.3*0.7,
		},
		{
			name:    "half the target price",
			listing: model.Listing{Price: 500, Transportation: 10, SharedLiving: false},
			pref:    model.LocationPreference{Price: 1000, Transportation: 1, SharedLiving: false},
			want:    0.5*0.5 + 0.3*1 + 0.2*1,
		},
		{
			name:    "large deviation goes negative, no clamping",
			listing: model.Listing{Price: 1000, Transportation: 1, SharedLiving: true},
			pref:    model.LocationPreference{Price: 100, Transportation: 1, SharedLiving: false},
			want:    0.5*(1-9.0) + 0.3*0.1, // -3.97
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(tt.listing, tt.pref)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if math.Abs(got-tt.want) > scoreEpsilon {
				t.Errorf("expected score %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScoreSymmetricPriceDeviation(t *testing.T) {
	scorer := defaultScorer()
	pref := model.LocationPreference{Price: 1000, Transportation: 5, SharedLiving: false}

	below, err := scorer.Score(model.Listing{Price: 800, Transportation: 5}, pref)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	above, err := scorer.Score(model.Listing{Price: 1200, Transportation: 5}, pref)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if math.Abs(below-above) > scoreEpsilon {
		t.Errorf("equal deviations should score equally: below=%v above=%v", below, above)
	}
}

func TestScoreMonotonicInTransportation(t *testing.T) {
	scorer := defaultScorer()
	pref := model.LocationPreference{Price: 1000, Transportation: 1, SharedLiving: false}

	prev := math.Inf(-1)
	for transport := 1; transport <= 10; transport++ {
		got, err := scorer.Score(model.Listing{Price: 1000, Transportation: transport}, pref)
		if err != nil {
			t.Fatalf("Score returned error: %v", err)
		}
		if got <= prev {
			t.Fatalf("score should strictly increase with transportation: %v then %v", prev, got)
		}
		prev = got
	}
}

func TestScoreZeroTargetPrice(t *testing.T) {
	scorer := defaultScorer()

	for _, price := range []float64{0, -100} {
		_, err := scorer.Score(model.Listing{Price: 1000, Transportation: 5},
			model.LocationPreference{Price: price})
		if !errors.Is(err, model.ErrZeroTargetPrice) {
			t.Errorf("price %v: expected ErrZeroTargetPrice, got %v", price, err)
		}
	}
}

func TestRankListingsOrder(t *testing.T) {
	scorer := defaultScorer()
	pref := model.LocationPreference{Price: 1000, Transportation: 1, SharedLiving: false}

	listings := []model.Listing{
		{ID: 1, Price: 1000, Transportation: 3},
		{ID: 2, Price: 1000, Transportation: 9},
		{ID: 3, Price: 1000, Transportation: 9},
		{ID: 4, Price: 3000, Transportation: 1},
	}

	ranked, err := scorer.RankListings(listings, pref)
	if err != nil {
		t.Fatalf("RankListings returned error: %v", err)
	}

	gotIDs := make([]int64, len(ranked))
	for i, r := range ranked {
		gotIDs[i] = r.ID
	}
	wantIDs := []int64{2, 3, 1, 4}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("expected order %v, got %v", wantIDs, gotIDs)
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatal("scores should be non-increasing")
		}
	}
}

func TestFilterByPreference(t *testing.T) {
	scorer := defaultScorer()
	pref := model.LocationPreference{Price: 1000, Transportation: 5, SharedLiving: false}

	listings := []model.Listing{
		{ID: 1, Price: 900, Transportation: 6},                     // passes
		{ID: 2, Price: 1000, Transportation: 5},                    // boundary values pass
		{ID: 3, Price: 1100, Transportation: 9},                    // too expensive
		{ID: 4, Price: 800, Transportation: 4},                     // too far from transit
		{ID: 5, Price: 800, Transportation: 9, SharedLiving: true}, // wrong living mode
	}

	got := scorer.FilterByPreference(listings, pref)
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("expected listings 1 and 2 in input order, got %d and %d", got[0].ID, got[1].ID)
	}
}

func TestCountByDistrict(t *testing.T) {
	scorer := defaultScorer()
	pref := model.LocationPreference{Price: 1000, Transportation: 5, SharedLiving: false}

	listings := []model.Listing{
		{ID: 1, Region: "Schwabing-West", Price: 900, Transportation: 6},
		{ID: 2, Region: "Schwabing-West", Price: 800, Transportation: 7},
		{ID: 3, Region: "Sendling", Price: 700, Transportation: 8},
		{ID: 4, Region: "Allach", Price: 950, Transportation: 9},
		{ID: 5, Region: "Sendling", Price: 2000, Transportation: 9}, // filtered out
	}

	got := scorer.CountByDistrict(listings, pref)
	want := []model.DistrictCount{
		{District: "Schwabing-West", Count: 2},
		{District: "Allach", Count: 1},
		{District: "Sendling", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
