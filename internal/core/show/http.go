package show

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listShows)
	router.Post("/", handler.createShow)
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	shows, err := handler.service.ListShows(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, shows, len(shows))
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.CreateShow(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, show)
}
