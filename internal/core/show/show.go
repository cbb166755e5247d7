package show

import (
	"time"

	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Show books one artist onto one venue at a point in time.
//
// ArtistName, VenueName and ArtistImageLink are snapshots taken when the show is
// created. Only the image link is kept in sync afterwards (see artist updates).
type Show struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"start_time"`
	ArtistID        int64     `json:"artist_id"`
	VenueID         int64     `json:"venue_id"`
	ArtistName      string    `json:"artist_name"`
	VenueName       string    `json:"venue_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}

// CreateInput is the payload of the show creation command.
type CreateInput struct {
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// Timeframe partitions shows relative to a reference instant.
type Timeframe string

const (
	// All selects every show regardless of start time.
	All Timeframe = "all"
	// Past selects shows that started strictly before the reference instant.
	Past Timeframe = "past"
	// Upcoming selects shows that start strictly after the reference instant.
	Upcoming Timeframe = "upcoming"
	// Current is the classification of a show starting exactly at the reference
	// instant. It belongs to neither Past nor Upcoming.
	Current Timeframe = "current"
)

// Side names the record a set of shows hangs off.
type Side int

const (
	AnySide Side = iota
	VenueSide
	ArtistSide
)

// Owner identifies the venue or artist whose shows are requested.
// The zero Owner matches every show.
type Owner struct {
	Side Side
	ID   int64
}

// AtVenue selects the shows booked at a venue.
func AtVenue(id int64) Owner { return Owner{Side: VenueSide, ID: id} }

// ByArtist selects the shows performed by an artist.
func ByArtist(id int64) Owner { return Owner{Side: ArtistSide, ID: id} }

// Filter holds the parameters of a show listing.
type Filter struct {
	Owner     Owner
	Timeframe Timeframe
	Now       time.Time
}

// Timeline is the past/upcoming split shown on venue and artist pages.
type Timeline struct {
	PastShows          []*Show `json:"past_shows"`
	PastShowsCount     int     `json:"past_shows_count"`
	UpcomingShows      []*Show `json:"upcoming_shows"`
	UpcomingShowsCount int     `json:"upcoming_shows_count"`
}

// Classify reports where start falls relative to now.
func Classify(show *Show, now time.Time) Timeframe {
	switch {
	case show.StartTime.Before(now):
		return Past
	case show.StartTime.After(now):
		return Upcoming
	default:
		return Current
	}
}

// NormalizeTime converts t to the stored precision: UTC, whole seconds.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
	FieldWhen      = "when"
)

// ParseTimeframe reads the ?when= query value. An empty value means [All].
func ParseTimeframe(raw string) (Timeframe, error) {
	if raw == "" {
		return All, nil
	}

	err := (&validate.Validator{}).
		OneOf(FieldWhen, raw, string(All), string(Past), string(Upcoming)).
		Err()
	if err != nil {
		return "", err
	}

	return Timeframe(raw), nil
}
