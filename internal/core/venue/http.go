package venue

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

// ShowViews is the read side of the show service used by venue pages.
type ShowViews interface {
	Timeline(ctx context.Context, owner show.Owner, now time.Time) (*show.Timeline, error)
	Shows(ctx context.Context, owner show.Owner, timeframe show.Timeframe, now time.Time) ([]*show.Show, error)
}

// Detail is a venue with its past and upcoming shows.
type Detail struct {
	*Venue
	*show.Timeline
}

// DeleteResult reports what a venue deletion removed.
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
	router.Get("/", handler.searchVenues)
	router.Get("/locations", handler.venuesByLocation)
	router.Get("/{id}", handler.getVenue)
	router.Get("/{id}/shows", handler.venueShows)

	router.Post("/", handler.createVenue)
	router.Patch("/{id}", handler.updateVenue)
	router.Delete("/{id}", handler.deleteVenue)
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	venues, total, err := handler.service.SearchVenues(request.Context(), requestutil.Query(request, constants.QuerySearchTerm))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, venues, total)
}

func (handler *Handler) venuesByLocation(writer http.ResponseWriter, request *http.Request) {
	locations, err := handler.service.VenuesByLocation(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, locations, len(locations))
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.GetVenue(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	timeline, err := handler.shows.Timeline(request.Context(), show.AtVenue(venueID), handler.now())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Detail{Venue: venue, Timeline: timeline})
}

func (handler *Handler) venueShows(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	timeframe, err := show.ParseTimeframe(requestutil.Query(request, constants.QueryTimeframe))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.GetVenue(request.Context(), venueID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shows, err := handler.shows.Shows(request.Context(), show.AtVenue(venueID), timeframe, handler.now())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, shows, len(shows))
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.CreateVenue(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, venue)
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	venue, err := handler.service.UpdateVenue(request.Context(), venueID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, venue)
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.DeleteVenue(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, DeleteResult{ID: venueID, ShowsRemoved: removed})
}
