package artist_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/postgres/pgtest"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

/*
TestPostgresRepository_ImageRelink updates the artist and their shows together.
*/
func TestPostgresRepository_ImageRelink(t *testing.T) {
	pool := pgtest.Open(t)
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	artists := artist.NewService(artist.NewPostgresRepository(pool), logger)
	shows := show.NewService(show.NewPostgresRepository(pool), logger)

	var venueID int64
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO venues (name) VALUES ('The Musical Hop') RETURNING id`).Scan(&venueID))

	guns, err := artists.CreateArtist(ctx, gunsNPetals())
	require.NoError(t, err)

	_, err = artists.CreateArtist(ctx, artist.CreateInput{Name: "Matt Quevedo", ImageLink: guns.ImageLink})
	assert.True(t, apperr.HasCode(err, apperr.CodeUniquenessViolation))

	_, err = shows.CreateShow(ctx, show.CreateInput{ArtistID: guns.ID, VenueID: venueID, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	_, err = shows.CreateShow(ctx, show.CreateInput{ArtistID: guns.ID + 100, VenueID: venueID, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)})
	assert.True(t, apperr.HasCode(err, apperr.CodeReferential))

	newLink := "https://images.example.com/guns-n-petals-2.jpg"
	_, err = artists.UpdateArtist(ctx, guns.ID, artist.UpdateInput{ImageLink: pointer.To(newLink)})
	require.NoError(t, err)

	listed, err := shows.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, newLink, listed[0].ArtistImageLink)

	removed, err := artists.DeleteArtist(ctx, guns.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
