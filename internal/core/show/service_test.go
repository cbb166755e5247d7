package show_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/sqlite/sqlitetest"
)

var now = time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*show.Service, *sql.DB) {
	t.Helper()

	db := sqlitetest.Open(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return show.NewService(show.NewSQLiteRepository(db), logger), db
}

func insert(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()

	result, err := db.Exec(query, args...)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

func seedArtist(t *testing.T, db *sql.DB, name, imageLink string) int64 {
	return insert(t, db, `INSERT INTO artists (name, image_link) VALUES (?, NULLIF(?, ''))`, name, imageLink)
}

func seedVenue(t *testing.T, db *sql.DB, name string) int64 {
	return insert(t, db, `INSERT INTO venues (name, city, state) VALUES (?, 'San Francisco', 'CA')`, name)
}

func countShows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var total int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM shows`).Scan(&total))
	return total
}

/*
TestService_CreateShow snapshots the artist and venue at creation time.
*/
func TestService_CreateShow(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	artistID := seedArtist(t, db, "Guns N Petals", "https://images.example.com/guns-n-petals.jpg")
	venueID := seedVenue(t, db, "The Musical Hop")
	start := time.Date(2019, 5, 21, 21, 30, 0, 500, time.FixedZone("PDT", -7*3600))

	created, err := service.CreateShow(ctx, show.CreateInput{ArtistID: artistID, VenueID: venueID, StartTime: start})
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "Guns N Petals", created.ArtistName)
	assert.Equal(t, "The Musical Hop", created.VenueName)
	assert.Equal(t, "https://images.example.com/guns-n-petals.jpg", created.ArtistImageLink)
	assert.Equal(t, show.NormalizeTime(start), created.StartTime)

	listed, err := service.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, created.ArtistImageLink, listed[0].ArtistImageLink)
	assert.True(t, created.StartTime.Equal(listed[0].StartTime))
}

/*
TestService_CreateShow_Rejected leaves the store unchanged on every failure.
*/
func TestService_CreateShow_Rejected(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	artistID := seedArtist(t, db, "Matt Quevedo", "")
	venueID := seedVenue(t, db, "Park Square Live Music & Coffee")

	tests := []struct {
		name  string
		input show.CreateInput
		code  string
		msg   string
	}{
		{"missing_artist", show.CreateInput{ArtistID: 999, VenueID: venueID, StartTime: now}, apperr.CodeReferential, "Artist not found"},
		{"missing_venue", show.CreateInput{ArtistID: artistID, VenueID: 999, StartTime: now}, apperr.CodeReferential, "Venue not found"},
		{"zero_ids", show.CreateInput{StartTime: now}, apperr.CodeValidation, "Validation failed"},
		{"zero_start", show.CreateInput{ArtistID: artistID, VenueID: venueID}, apperr.CodeValidation, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := service.CreateShow(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, created)
			assert.True(t, apperr.HasCode(err, tt.code))
			assert.Equal(t, tt.msg, err.Error())
			assert.Zero(t, countShows(t, db))
		})
	}
}

/*
TestService_Timeline splits shows strictly around now, ordered by start time.
*/
func TestService_Timeline(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	artistID := seedArtist(t, db, "The Wild Sax Band", "")
	otherArtistID := seedArtist(t, db, "Matt Quevedo", "")
	venueID := seedVenue(t, db, "Park Square Live Music & Coffee")

	for _, start := range []time.Time{
		now.Add(48 * time.Hour),
		now.Add(-72 * time.Hour),
		now,
		now.Add(time.Second),
		now.Add(-time.Second),
	} {
		_, err := service.CreateShow(ctx, show.CreateInput{ArtistID: artistID, VenueID: venueID, StartTime: start})
		require.NoError(t, err)
	}
	_, err := service.CreateShow(ctx, show.CreateInput{ArtistID: otherArtistID, VenueID: venueID, StartTime: now.Add(time.Hour)})
	require.NoError(t, err)

	timeline, err := service.Timeline(ctx, show.ByArtist(artistID), now)
	require.NoError(t, err)

	require.Len(t, timeline.PastShows, 2)
	assert.Equal(t, now.Add(-72*time.Hour), timeline.PastShows[0].StartTime)
	assert.Equal(t, now.Add(-time.Second), timeline.PastShows[1].StartTime)
	assert.Equal(t, 2, timeline.PastShowsCount)

	require.Len(t, timeline.UpcomingShows, 2)
	assert.Equal(t, now.Add(time.Second), timeline.UpcomingShows[0].StartTime)
	assert.Equal(t, now.Add(48*time.Hour), timeline.UpcomingShows[1].StartTime)
	assert.Equal(t, 2, timeline.UpcomingShowsCount)

	for _, s := range append(timeline.PastShows, timeline.UpcomingShows...) {
		assert.Equal(t, artistID, s.ArtistID)
		assert.NotEqual(t, show.Current, show.Classify(s, now))
	}

	venueTimeline, err := service.Timeline(ctx, show.AtVenue(venueID), now)
	require.NoError(t, err)
	assert.Equal(t, 2, venueTimeline.PastShowsCount)
	assert.Equal(t, 3, venueTimeline.UpcomingShowsCount)
}

/*
TestService_Counts matches the count queries against the list lengths.
*/
func TestService_Counts(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	artistID := seedArtist(t, db, "Guns N Petals", "")
	venueID := seedVenue(t, db, "The Dueling Pianos Bar")

	for _, offset := range []time.Duration{-3 * time.Hour, -2 * time.Hour, time.Hour} {
		_, err := service.CreateShow(ctx, show.CreateInput{ArtistID: artistID, VenueID: venueID, StartTime: now.Add(offset)})
		require.NoError(t, err)
	}

	owner := show.AtVenue(venueID)

	past, err := service.PastShows(ctx, owner, now)
	require.NoError(t, err)
	pastCount, err := service.PastShowsCount(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, len(past), pastCount)
	assert.Equal(t, 2, pastCount)

	upcoming, err := service.UpcomingShows(ctx, owner, now)
	require.NoError(t, err)
	upcomingCount, err := service.UpcomingShowsCount(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, len(upcoming), upcomingCount)
	assert.Equal(t, 1, upcomingCount)

	empty, err := service.PastShows(ctx, show.AtVenue(venueID+100), now)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
