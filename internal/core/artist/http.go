package artist

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

// ShowViews is the read side of the show service used by artist pages.
type ShowViews interface {
	Timeline(ctx context.Context, owner show.Owner, now time.Time) (*show.Timeline, error)
	Shows(ctx context.Context, owner show.Owner, timeframe show.Timeframe, now time.Time) ([]*show.Show, error)
}

// Detail is an artist with their past and upcoming shows.
type Detail struct {
	*Artist
	*show.Timeline
}

// DeleteResult reports what an artist deletion removed.
type DeleteResult struct {
	ID           int64 `json:"id"`
	ShowsRemoved int   `json:"shows_removed"`
}

type Handler struct {
	service *Service
	shows   ShowViews
	now     func() time.Time
}

func NewHandler(service *Service, shows ShowViews) *Handler {
	return &Handler{service: service, shows: shows, now: time.Now}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtists)
	router.Get("/{id}", handler.getArtist)
	router.Get("/{id}/shows", handler.artistShows)

	router.Post("/", handler.createArtist)
	router.Patch("/{id}", handler.updateArtist)
	router.Delete("/{id}", handler.deleteArtist)
}

// listArtists lists every artist, or searches when ?q= is present.
func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Query().Has(constants.QuerySearchTerm) {
		artists, total, err := handler.service.SearchArtists(request.Context(), requestutil.Query(request, constants.QuerySearchTerm))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.List(writer, artists, total)
		return
	}

	artists, err := handler.service.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, artists, len(artists))
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.GetArtist(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	timeline, err := handler.shows.Timeline(request.Context(), show.ByArtist(artistID), handler.now())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Detail{Artist: artist, Timeline: timeline})
}

func (handler *Handler) artistShows(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	timeframe, err := show.ParseTimeframe(requestutil.Query(request, constants.QueryTimeframe))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.GetArtist(request.Context(), artistID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shows, err := handler.shows.Shows(request.Context(), show.ByArtist(artistID), timeframe, handler.now())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, shows, len(shows))
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.CreateArtist(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, artist)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.UpdateArtist(request.Context(), artistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.DeleteArtist(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, DeleteResult{ID: artistID, ShowsRemoved: removed})
}
