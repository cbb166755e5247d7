package venue

import "context"

type Repository interface {
	// SearchVenues returns the matching venues ordered by id, and their count.
	SearchVenues(ctx context.Context, f Filter) ([]*Venue, int, error)
	GetVenue(ctx context.Context, id int64) (*Venue, error)
	ListLocations(ctx context.Context) ([]*Location, error)
	CreateVenue(ctx context.Context, v *Venue) error

	// UpdateVenue applies input to the stored venue and returns the result.
	UpdateVenue(ctx context.Context, id int64, input UpdateInput) (*Venue, error)

	// DeleteVenue removes the venue and its shows, returning the number of shows removed.
	DeleteVenue(ctx context.Context, id int64) (int, error)
}

// rowScanner is satisfied by single rows and row cursors of both drivers.
type rowScanner interface {
	Scan(dest ...any) error
}
