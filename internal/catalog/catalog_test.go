package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"homefinder/internal/model"
)

func newSeededCatalog(perDistrict int) *Catalog {
	cat := New(rand.New(rand.NewSource(42)))
	cat.Seed(perDistrict)
	return cat
}

func TestSeed(t *testing.T) {
	const perDistrict = 5
	cat := newSeededCatalog(perDistrict)

	if want := perDistrict * len(Districts); cat.Len() != want {
		t.Fatalf("expected %d listings, got %d", want, cat.Len())
	}

	perRegion := make(map[string]int)
	for i, l := range cat.All() {
		if l.ID != int64(i+1) {
			t.Fatalf("expected sequential ids, listing %d has id %d", i, l.ID)
		}
		if l.Price < 500 || l.Price >= 3000 {
			t.Errorf("listing %d: price %v out of range", l.ID, l.Price)
		}
		if l.Transportation < 1 || l.Transportation >= 10 {
			t.Errorf("listing %d: transportation %d out of range", l.ID, l.Transportation)
		}
		if l.Size < 30 || l.Size >= 200 {
			t.Errorf("listing %d: size %v out of range", l.ID, l.Size)
		}
		if len(l.Preferences) == 0 {
			t.Errorf("listing %d: audience tags must not be empty", l.ID)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("listing %d: generated listing is invalid: %v", l.ID, err)
		}
		if l.Type == model.ListingTypeSharedHousing {
			if !l.SharedLiving {
				t.Errorf("listing %d: shared-housing listing must be shared living", l.ID)
			}
			sh := l.SharedHousing
			if sh.CurrentOccupants >= sh.MaxOccupants {
				t.Errorf("listing %d: occupancy %d/%d leaves no free spot",
					l.ID, sh.CurrentOccupants, sh.MaxOccupants)
			}
		}
		perRegion[l.Region]++
	}

	if len(perRegion) != len(Districts) {
		t.Errorf("expected listings in all %d districts, got %d", len(Districts), len(perRegion))
	}
	for region, n := range perRegion {
		if n != perDistrict {
			t.Errorf("district %s: expected %d listings, got %d", region, perDistrict, n)
		}
	}
}

func TestSeedJitterStaysNearCenter(t *testing.T) {
	cat := newSeededCatalog(3)

	centers := make(map[string]District)
	for _, d := range Districts {
		centers[d.Name] = d
	}

	for _, l := range cat.All() {
		d := centers[l.Region]
		if diff := l.Latitude - d.Latitude; diff < -coordinateJitter || diff > coordinateJitter {
			t.Errorf("listing %d: latitude %v too far from %s center", l.ID, l.Latitude, d.Name)
		}
		if diff := l.Longitude - d.Longitude; diff < -coordinateJitter || diff > coordinateJitter {
			t.Errorf("listing %d: longitude %v too far from %s center", l.ID, l.Longitude, d.Name)
		}
	}
}

func TestGetByID(t *testing.T) {
	cat := newSeededCatalog(2)

	l, err := cat.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if l.ID != 1 {
		t.Errorf("expected listing 1, got %d", l.ID)
	}

	_, err = cat.GetByID(int64(cat.Len()) + 1)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmit(t *testing.T) {
	cat := newSeededCatalog(1)
	before := cat.Len()

	submitted, err := cat.Submit(model.Listing{
		Type:        model.ListingTypeRent,
		Price:       1200,
		Size:        65,
		Address:     "Giesing Street 99",
		Preferences: []model.Audience{model.AudienceNoPreference},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if submitted.ID != int64(before)+1 {
		t.Errorf("expected id %d, got %d", before+1, submitted.ID)
	}
	if submitted.SharedLiving {
		t.Error("a rent listing should not be marked shared living")
	}
	if submitted.Transportation < 1 || submitted.Transportation > 9 {
		t.Errorf("expected a randomized transportation default, got %d", submitted.Transportation)
	}
	if submitted.Region != "Unknown" {
		t.Errorf("expected the default region, got %q", submitted.Region)
	}
	if submitted.Latitude == 0 || submitted.Longitude == 0 {
		t.Error("expected randomized default coordinates")
	}
	if cat.Len() != before+1 {
		t.Errorf("expected catalog to grow by one, got %d", cat.Len())
	}

	stored, err := cat.GetByID(submitted.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Address != "Giesing Street 99" {
		t.Errorf("stored listing has address %q", stored.Address)
	}
}

func TestSubmitSharedHousing(t *testing.T) {
	cat := New(rand.New(rand.NewSource(7)))

	submitted, err := cat.Submit(model.Listing{
		Type:        model.ListingTypeSharedHousing,
		Price:       650,
		Size:        20,
		Address:     "Schwabing-West Street 12",
		Preferences: []model.Audience{model.AudienceStudents},
		SharedHousing: &model.SharedHousingDetails{
			Gender:           model.GenderOther,
			IsStudent:        true,
			CurrentOccupants: 2,
			MaxOccupants:     4,
		},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !submitted.SharedLiving {
		t.Error("shared-housing submissions should be marked shared living")
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		listing model.Listing
	}{
		{
			name:    "unknown type",
			listing: model.Listing{Type: "Lease", Price: 100, Size: 10},
		},
		{
			name:    "zero size",
			listing: model.Listing{Type: model.ListingTypeRent, Price: 100, Size: 0},
		},
		{
			name:    "negative price",
			listing: model.Listing{Type: model.ListingTypeRent, Price: -1, Size: 10},
		},
		{
			name:    "shared housing without details",
			listing: model.Listing{Type: model.ListingTypeSharedHousing, Price: 600, Size: 20},
		},
		{
			name: "full occupancy",
			listing: model.Listing{
				Type: model.ListingTypeSharedHousing, Price: 600, Size: 20,
				SharedHousing: &model.SharedHousingDetails{CurrentOccupants: 3, MaxOccupants: 3},
			},
		},
		{
			name: "occupancy details on a rent listing",
			listing: model.Listing{
				Type: model.ListingTypeRent, Price: 600, Size: 20,
				SharedHousing: &model.SharedHousingDetails{CurrentOccupants: 1, MaxOccupants: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := New(rand.New(rand.NewSource(1)))
			if _, err := cat.Submit(tt.listing); !errors.Is(err, model.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if cat.Len() != 0 {
				t.Error("rejected listings must not be stored")
			}
		})
	}
}
