package artist_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/sqlite/sqlitetest"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

type fixture struct {
	db      *sql.DB
	artists *artist.Service
	shows   *show.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := sqlitetest.Open(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return &fixture{
		db:      db,
		artists: artist.NewService(artist.NewSQLiteRepository(db), logger),
		shows:   show.NewService(show.NewSQLiteRepository(db), logger),
	}
}

func (f *fixture) createArtist(t *testing.T, input artist.CreateInput) *artist.Artist {
	t.Helper()

	created, err := f.artists.CreateArtist(context.Background(), input)
	require.NoError(t, err)
	return created
}

func (f *fixture) seedVenue(t *testing.T, name string) int64 {
	t.Helper()

	result, err := f.db.Exec(`INSERT INTO venues (name) VALUES (?)`, name)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

func (f *fixture) book(t *testing.T, artistID, venueID int64, start time.Time) *show.Show {
	t.Helper()

	created, err := f.shows.CreateShow(context.Background(), show.CreateInput{ArtistID: artistID, VenueID: venueID, StartTime: start})
	require.NoError(t, err)
	return created
}

func gunsNPetals() artist.CreateInput {
	return artist.CreateInput{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://images.example.com/guns-n-petals.jpg",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Genres:             []string{"Rock n Roll"},
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
}

/*
TestService_CreateArtist persists every field.
*/
func TestService_CreateArtist(t *testing.T) {
	f := newFixture(t)

	created := f.createArtist(t, gunsNPetals())

	fetched, err := f.artists.GetArtist(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.True(t, fetched.SeekingVenue)
}

/*
TestService_CreateArtist_Rejected covers validation and uniqueness.
*/
func TestService_CreateArtist_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createArtist(t, gunsNPetals())

	_, err := f.artists.CreateArtist(ctx, artist.CreateInput{Name: ""})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = f.artists.CreateArtist(ctx, artist.CreateInput{Name: "Matt Quevedo", ImageLink: "not-a-link"})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = f.artists.CreateArtist(ctx, artist.CreateInput{Name: "Guns N Petals"})
	assert.True(t, apperr.HasCode(err, apperr.CodeUniquenessViolation))

	_, err = f.artists.CreateArtist(ctx, artist.CreateInput{Name: "Matt Quevedo", ImageLink: gunsNPetals().ImageLink})
	assert.True(t, apperr.HasCode(err, apperr.CodeUniquenessViolation))

	artists, err := f.artists.ListArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 1)
}

/*
TestService_SearchArtists matches names case-insensitively.
*/
func TestService_SearchArtists(t *testing.T) {
	f := newFixture(t)

	guns := f.createArtist(t, artist.CreateInput{Name: "Guns N Petals"})
	matt := f.createArtist(t, artist.CreateInput{Name: "Matt Quevedo"})
	sax := f.createArtist(t, artist.CreateInput{Name: "The Wild Sax Band"})
	cafe := f.createArtist(t, artist.CreateInput{Name: "CAFÉ ÖSTERREICH"})

	tests := []struct {
		term string
		want []int64
	}{
		{"A", []int64{guns.ID, matt.ID, sax.ID, cafe.ID}},
		{"band", []int64{sax.ID}},
		{"PETALS", []int64{guns.ID}},
		{"", []int64{guns.ID, matt.ID, sax.ID, cafe.ID}},
		{"café österreich", []int64{cafe.ID}},
		{"Österreich", []int64{cafe.ID}},
		{"zzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			artists, total, err := f.artists.SearchArtists(context.Background(), tt.term)
			require.NoError(t, err)
			assert.Equal(t, len(artists), total)

			ids := make([]int64, 0, len(artists))
			for _, a := range artists {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

/*
TestService_UpdateArtist_PropagatesImageLink rewrites snapshots of every show.
*/
func TestService_UpdateArtist_PropagatesImageLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guns := f.createArtist(t, gunsNPetals())
	other := f.createArtist(t, artist.CreateInput{Name: "Matt Quevedo", ImageLink: "https://images.example.com/matt.jpg"})
	venueID := f.seedVenue(t, "The Musical Hop")

	f.book(t, guns.ID, venueID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	f.book(t, guns.ID, venueID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	f.book(t, other.ID, venueID, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC))

	newLink := "https://images.example.com/guns-n-petals-2.jpg"
	updated, err := f.artists.UpdateArtist(ctx, guns.ID, artist.UpdateInput{
		Name:      pointer.To("Guns N Roses N Petals"),
		ImageLink: pointer.To(newLink),
	})
	require.NoError(t, err)
	assert.Equal(t, newLink, updated.ImageLink)

	shows, err := f.shows.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 3)

	for _, s := range shows {
		if s.ArtistID == guns.ID {
			assert.Equal(t, newLink, s.ArtistImageLink)
			// Names are snapshots and stay as booked.
			assert.Equal(t, "Guns N Petals", s.ArtistName)
			continue
		}
		assert.Equal(t, "https://images.example.com/matt.jpg", s.ArtistImageLink)
	}
}

/*
TestService_ShowImageSnapshot_StoresEmptyString keeps a missing image as ""
rather than NULL, both when booked and when cleared.
*/
func TestService_ShowImageSnapshot_StoresEmptyString(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	matt := f.createArtist(t, artist.CreateInput{Name: "Matt Quevedo"})
	guns := f.createArtist(t, gunsNPetals())
	venueID := f.seedVenue(t, "The Musical Hop")

	bare := f.book(t, matt.ID, venueID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	cleared := f.book(t, guns.ID, venueID, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC))
	assert.Empty(t, bare.ArtistImageLink)
	assert.NotEmpty(t, cleared.ArtistImageLink)

	_, err := f.artists.UpdateArtist(ctx, guns.ID, artist.UpdateInput{ImageLink: pointer.To("")})
	require.NoError(t, err)

	for _, id := range []int64{bare.ID, cleared.ID} {
		var link sql.NullString
		err := f.db.QueryRow(`SELECT artist_image_link FROM shows WHERE id = ?`, id).Scan(&link)
		require.NoError(t, err)
		assert.True(t, link.Valid, "show %d", id)
		assert.Equal(t, "", link.String)
	}

	_, err = f.db.Exec(`INSERT INTO shows (start_time, artist_id, venue_id, artist_name, venue_name, artist_image_link)
		VALUES (0, ?, ?, 'x', 'y', NULL)`, matt.ID, venueID)
	require.Error(t, err)
}

/*
TestService_UpdateArtist_Errors leaves the artist and its shows unchanged.
*/
func TestService_UpdateArtist_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guns := f.createArtist(t, gunsNPetals())
	matt := f.createArtist(t, artist.CreateInput{Name: "Matt Quevedo", ImageLink: "https://images.example.com/matt.jpg"})
	venueID := f.seedVenue(t, "The Musical Hop")
	f.book(t, guns.ID, venueID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))

	_, err := f.artists.UpdateArtist(ctx, 999, artist.UpdateInput{City: pointer.To("Oakland")})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = f.artists.UpdateArtist(ctx, guns.ID, artist.UpdateInput{Genres: &[]string{""}})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	// Taking another artist's image fails before any show is touched.
	_, err = f.artists.UpdateArtist(ctx, guns.ID, artist.UpdateInput{ImageLink: pointer.To(matt.ImageLink)})
	assert.True(t, apperr.HasCode(err, apperr.CodeUniquenessViolation))

	shows, err := f.shows.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, guns.ImageLink, shows[0].ArtistImageLink)
}

/*
TestService_DeleteArtist removes the artist together with their shows.
*/
func TestService_DeleteArtist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guns := f.createArtist(t, gunsNPetals())
	venueID := f.seedVenue(t, "The Musical Hop")
	f.book(t, guns.ID, venueID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))

	removed, err := f.artists.DeleteArtist(ctx, guns.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.artists.GetArtist(ctx, guns.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = f.artists.DeleteArtist(ctx, guns.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	shows, err := f.shows.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}
