package artist

import (
	"context"
	"log/slog"

	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/query"
)

// Column sizes of the artists table.
const (
	maxNameLen        = 200
	maxTextLen        = 120
	maxLinkLen        = 500
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

// ListArtists returns every artist ordered by id.
func (service *Service) ListArtists(ctx context.Context) ([]*Artist, error) {
	return service.repo.ListArtists(ctx)
}

// SearchArtists matches term case-insensitively against artist names.
// An empty term matches every artist. The count always equals len(artists).
func (service *Service) SearchArtists(ctx context.Context, term string) ([]*Artist, int, error) {
	return service.repo.SearchArtists(ctx, Filter{Query: query.Term(term)})
}

func (service *Service) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	return service.repo.GetArtist(ctx, id)
}

func (service *Service) CreateArtist(ctx context.Context, input CreateInput) (*Artist, error) {
	artist := input.Artist()

	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name)
	checkFields(validator, UpdateInput{
		Name: &artist.Name, City: &artist.City, State: &artist.State, Phone: &artist.Phone,
		ImageLink: &artist.ImageLink, FacebookLink: &artist.FacebookLink, Genres: &artist.Genres,
		Website: &artist.Website, SeekingDescription: &artist.SeekingDescription,
	})

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created", slog.Int64("artist_id", artist.ID), slog.String("name", artist.Name))
	return artist, nil
}

// UpdateArtist applies a partial update. A changed image link is copied onto
// every show of the artist in the same transaction; name changes are not.
func (service *Service) UpdateArtist(ctx context.Context, id int64, input UpdateInput) (*Artist, error) {
	input.Normalize()

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name)
	}
	checkFields(validator, input)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	artist, relinked, err := service.repo.UpdateArtist(ctx, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.Int64("artist_id", artist.ID), slog.Int("shows_relinked", relinked))
	return artist, nil
}

// DeleteArtist removes the artist and every show they perform.
// It returns the number of shows removed.
func (service *Service) DeleteArtist(ctx context.Context, id int64) (int, error) {
	removed, err := service.repo.DeleteArtist(ctx, id)
	if err != nil {
		return 0, err
	}

	service.logger.Warn("artist_deleted", slog.Int64("artist_id", id), slog.Int("shows_removed", removed))
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
	text(FieldPhone, input.Phone, maxTextLen)
	link(FieldImageLink, input.ImageLink, maxLinkLen)
	link(FieldFacebookLink, input.FacebookLink, maxTextLen)
	link(FieldWebsite, input.Website, maxLinkLen)
	text(FieldSeekingDescription, input.SeekingDescription, maxDescriptionLen)

	if input.Genres != nil {
		validator.NoBlank(FieldGenres, *input.Genres)
	}
}
