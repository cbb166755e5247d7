package artist

import "github.com/taibuivan/fyyur/internal/platform/apperr"

var (
	// ErrArtistNotFound is returned when no artist has the requested id.
	ErrArtistNotFound = apperr.NotFound("Artist")
)
