package venue

import "github.com/taibuivan/fyyur/internal/platform/apperr"

var (
	// ErrVenueNotFound is returned when no venue has the requested id.
	ErrVenueNotFound = apperr.NotFound("Venue")
)
