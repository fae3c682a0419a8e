package catalog

import (
	"fmt"

	"homefinder/internal/model"
)

// coordinateJitter is how far synthetic listings scatter around a
// district center, in degrees.
const coordinateJitter = 0.01

var audiencePool = []model.Audience{
	model.AudienceStudents,
	model.AudienceProfessionals,
	model.AudienceFamilies,
	model.AudienceNoPreference,
}

var listingTypes = []model.ListingType{
	model.ListingTypeRent,
	model.ListingTypeSale,
	model.ListingTypeSharedHousing,
}

var genders = []model.Gender{
	model.GenderMale,
	model.GenderFemale,
	model.GenderOther,
}

// Seed fills the catalog with synthetic listings, perDistrict per
// district: price in [500,3000), transportation in [1,10), size in
// [30,200), coordinates jittered around the district center. Shared
// housing listings always get a valid occupancy pair.
func (c *Catalog) Seed(perDistrict int) {
	id := int64(c.Len())
	for _, d := range Districts {
		for i := 0; i < perDistrict; i++ {
			id++
			l := model.Listing{
				ID:               id,
				Price:            float64(500 + c.rng.Intn(2500)),
				Transportation:   1 + c.rng.Intn(9),
				SharedLiving:     c.rng.Intn(2) == 0,
				Latitude:         d.Latitude - coordinateJitter + c.rng.Float64()*2*coordinateJitter,
				Longitude:        d.Longitude - coordinateJitter + c.rng.Float64()*2*coordinateJitter,
				Region:           d.Name,
				Address:          fmt.Sprintf("%s Street %d", d.Name, i),
				Type:             listingTypes[c.rng.Intn(len(listingTypes))],
				Size:             float64(30 + c.rng.Intn(170)),
				Preferences:      c.randomAudiences(),
				ProximitySchools: c.rng.Intn(2) == 0,
				ProximityParks:   c.rng.Intn(2) == 0,
				OwnerName:        fmt.Sprintf("Owner %d", i),
			}
			if l.Type == model.ListingTypeSharedHousing {
				current := 1 + c.rng.Intn(4)
				l.SharedLiving = true
				l.SharedHousing = &model.SharedHousingDetails{
					Gender:            genders[c.rng.Intn(len(genders))],
					IsStudent:         c.rng.Intn(2) == 0,
					CurrentOccupants:  current,
					MaxOccupants:      current + 1 + c.rng.Intn(3),
					SameSexPreference: c.rng.Intn(2) == 0,
				}
			}
			c.append(l)
		}
	}
}

// randomAudiences picks a non-empty subset of audience tags without repeats
func (c *Catalog) randomAudiences() []model.Audience {
	n := 1 + c.rng.Intn(len(audiencePool))
	perm := c.rng.Perm(len(audiencePool))
	out := make([]model.Audience, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, audiencePool[idx])
	}
	return out
}
