package catalog

import (
	"fmt"
	"math/rand"
	"sync"

	"homefinder/internal/model"
)

// Catalog is the in-memory set of property listings for one session.
// Listings are appended at initialization or through Submit and are
// never deleted; insertion order is preserved for deterministic matching.
type Catalog struct {
	mu       sync.RWMutex
	listings []model.Listing
	rng      *rand.Rand
}

// New creates an empty catalog. The rng is used for the randomized
// defaults of submitted listings and for synthetic seeding.
func New(rng *rand.Rand) *Catalog {
	return &Catalog{rng: rng}
}

// Len returns the number of listings in the catalog
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listings)
}

// All returns the listings in insertion order
func (c *Catalog) All() []model.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// GetByID returns the listing with the given id or model.ErrNotFound
func (c *Catalog) GetByID(id int64) (*model.Listing, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.listings {
		if c.listings[i].ID == id {
			l := c.listings[i]
			return &l, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", model.ErrNotFound, id)
}

// Submit validates and appends a user-submitted listing, assigning the
// next integer id (max existing id + 1). Unset transportation, region
// and coordinates get the same randomized defaults the submission form
// always produced.
func (c *Catalog) Submit(l model.Listing) (model.Listing, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l.ID = c.nextID()
	l.SharedLiving = l.Type == model.ListingTypeSharedHousing
	if l.Transportation == 0 {
		l.Transportation = 1 + c.rng.Intn(9)
	}
	if l.Region == "" {
		l.Region = "Unknown"
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		l.Latitude = 48.1 + c.rng.Float64()*0.1
		l.Longitude = 11.5 + c.rng.Float64()*0.2
	}

	if err := l.Validate(); err != nil {
		return model.Listing{}, err
	}

	c.listings = append(c.listings, l)
	return l, nil
}

// nextID assumes c.mu is held
func (c *Catalog) nextID() int64 {
	var max int64
	for i := range c.listings {
		if c.listings[i].ID > max {
			max = c.listings[i].ID
		}
	}
	return max + 1
}

// append is the seeding path; listings are assumed valid by construction
func (c *Catalog) append(l model.Listing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings = append(c.listings, l)
}
