package show

import "github.com/taibuivan/fyyur/internal/platform/apperr"

var (
	// ErrArtistReference is returned when a show names an artist that does not exist.
	ErrArtistReference = apperr.Referential("Artist not found", nil)

	// ErrVenueReference is returned when a show names a venue that does not exist.
	ErrVenueReference = apperr.Referential("Venue not found", nil)
)
