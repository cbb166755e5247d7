package artist_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
)

func serve(f *fixture, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Route("/artists", artist.NewHandler(f.artists, f.shows).RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

/*
TestHandler_ListAndSearch distinguishes a listing from a search.
*/
func TestHandler_ListAndSearch(t *testing.T) {
	f := newFixture(t)
	f.createArtist(t, artist.CreateInput{Name: "Guns N Petals"})
	f.createArtist(t, artist.CreateInput{Name: "The Wild Sax Band"})

	all := serve(f, http.MethodGet, "/artists", "")
	require.Equal(t, http.StatusOK, all.Code)
	assert.Contains(t, all.Body.String(), `"total":2`)

	search := serve(f, http.MethodGet, "/artists?q=sax", "")
	require.Equal(t, http.StatusOK, search.Code)
	assert.Contains(t, search.Body.String(), `"total":1`)
	assert.Contains(t, search.Body.String(), "The Wild Sax Band")
}

/*
TestHandler_GetArtist returns the detail with its timeline and maps errors.
*/
func TestHandler_GetArtist(t *testing.T) {
	f := newFixture(t)
	guns := f.createArtist(t, gunsNPetals())
	venueID := f.seedVenue(t, "The Musical Hop")
	f.book(t, guns.ID, venueID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))

	id := strconv.FormatInt(guns.ID, 10)

	detail := serve(f, http.MethodGet, "/artists/"+id, "")
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), `"past_shows_count":1`)
	assert.Contains(t, detail.Body.String(), `"upcoming_shows_count":0`)
	assert.Contains(t, detail.Body.String(), `"upcoming_shows":[]`)

	past := serve(f, http.MethodGet, "/artists/"+id+"/shows?when=past", "")
	require.Equal(t, http.StatusOK, past.Code)
	assert.Contains(t, past.Body.String(), `"venue_name":"The Musical Hop"`)

	missing := serve(f, http.MethodGet, "/artists/999", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	updated := serve(f, http.MethodPatch, "/artists/"+id, `{"website":"ftp://example.com"}`)
	assert.Equal(t, http.StatusBadRequest, updated.Code)

	deleted := serve(f, http.MethodDelete, "/artists/"+id, "")
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.Contains(t, deleted.Body.String(), `"shows_removed":1`)
}
