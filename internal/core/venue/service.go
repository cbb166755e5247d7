package venue

import (
	"context"
	"log/slog"

	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/query"
)

// Column sizes of the venues table.
const (
	maxNameLen        = 200
	maxTextLen        = 120
	maxImageLinkLen   = 500
	maxWebsiteLen     = 120
	maxDescriptionLen = 200
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SearchVenues matches term case-insensitively against venue names.
// An empty term matches every venue. The count always equals len(venues).
func (service *Service) SearchVenues(ctx context.Context, term string) ([]*Venue, int, error) {
	return service.repo.SearchVenues(ctx, Filter{Query: query.Term(term)})
}

func (service *Service) GetVenue(ctx context.Context, id int64) (*Venue, error) {
	return service.repo.GetVenue(ctx, id)
}

// VenuesByLocation groups every venue by (city, state).
func (service *Service) VenuesByLocation(ctx context.Context) ([]*Location, error) {
	return service.repo.ListLocations(ctx)
}

func (service *Service) CreateVenue(ctx context.Context, input CreateInput) (*Venue, error) {
	venue := input.Venue()

	validator := &validate.Validator{}
	validator.Required(FieldName, venue.Name)
	checkFields(validator, UpdateInput{
		Name: &venue.Name, City: &venue.City, State: &venue.State, Address: &venue.Address,
		Phone: &venue.Phone, ImageLink: &venue.ImageLink, FacebookLink: &venue.FacebookLink,
		Genres: &venue.Genres, Website: &venue.Website, SeekingDescription: &venue.SeekingDescription,
	})

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created", slog.Int64("venue_id", venue.ID), slog.String("name", venue.Name))
	return venue, nil
}

func (service *Service) UpdateVenue(ctx context.Context, id int64, input UpdateInput) (*Venue, error) {
	input.Normalize()

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name)
	}
	checkFields(validator, input)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	venue, err := service.repo.UpdateVenue(ctx, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int64("venue_id", venue.ID))
	return venue, nil
}

// DeleteVenue removes the venue and every show booked there.
// It returns the number of shows removed.
func (service *Service) DeleteVenue(ctx context.Context, id int64) (int, error) {
	removed, err := service.repo.DeleteVenue(ctx, id)
	if err != nil {
		return 0, err
	}

	service.logger.Warn("venue_deleted", slog.Int64("venue_id", id), slog.Int("shows_removed", removed))
	return removed, nil
}

// checkFields applies the column rules to every provided field of input.
func checkFields(validator *validate.Validator, input UpdateInput) {
	text := func(field string, value *string, max int) {
		if value != nil {
			validator.MaxLen(field, *value, max)
		}
	}
	link := func(field string, value *string, max int) {
		if value != nil {
			validator.MaxLen(field, *value, max).URL(field, *value)
		}
	}

	text(FieldName, input.Name, maxNameLen)
	text(FieldCity, input.City, maxTextLen)
	text(FieldState, input.State, maxTextLen)
	text(FieldAddress, input.Address, maxTextLen)
	text(FieldPhone, input.Phone, maxTextLen)
	link(FieldImageLink, input.ImageLink, maxImageLinkLen)
	link(FieldFacebookLink, input.FacebookLink, maxTextLen)
	link(FieldWebsite, input.Website, maxWebsiteLen)
	text(FieldSeekingDescription, input.SeekingDescription, maxDescriptionLen)

	if input.Genres != nil {
		validator.NoBlank(FieldGenres, *input.Genres)
	}
}
