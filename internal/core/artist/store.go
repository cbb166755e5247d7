package artist

import "context"

type Repository interface {
	ListArtists(ctx context.Context) ([]*Artist, error)

	// SearchArtists returns the matching artists ordered by id, and their count.
	SearchArtists(ctx context.Context, f Filter) ([]*Artist, int, error)
	GetArtist(ctx context.Context, id int64) (*Artist, error)
	CreateArtist(ctx context.Context, a *Artist) error

	// UpdateArtist applies input and, when the image link changed, rewrites the
	// snapshot image of every show of the artist. It returns the updated artist
	// and the number of shows rewritten.
	UpdateArtist(ctx context.Context, id int64, input UpdateInput) (*Artist, int, error)

	// DeleteArtist removes the artist and its shows, returning the number of shows removed.
	DeleteArtist(ctx context.Context, id int64) (int, error)
}

// rowScanner is satisfied by single rows and row cursors of both drivers.
type rowScanner interface {
	Scan(dest ...any) error
}
