package show

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Service answers show queries relative to an explicit reference instant.
// Nothing is cached; every call reads the store.
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

// ListShows returns every show ordered by start time.
func (service *Service) ListShows(ctx context.Context) ([]*Show, error) {
	return service.repo.ListShows(ctx, Filter{Timeframe: All})
}

// Shows returns the owner's shows in the given timeframe.
func (service *Service) Shows(ctx context.Context, owner Owner, timeframe Timeframe, now time.Time) ([]*Show, error) {
	return service.repo.ListShows(ctx, Filter{Owner: owner, Timeframe: timeframe, Now: now})
}

func (service *Service) PastShows(ctx context.Context, owner Owner, now time.Time) ([]*Show, error) {
	return service.Shows(ctx, owner, Past, now)
}

func (service *Service) PastShowsCount(ctx context.Context, owner Owner, now time.Time) (int, error) {
	return service.repo.CountShows(ctx, Filter{Owner: owner, Timeframe: Past, Now: now})
}

func (service *Service) UpcomingShows(ctx context.Context, owner Owner, now time.Time) ([]*Show, error) {
	return service.Shows(ctx, owner, Upcoming, now)
}

func (service *Service) UpcomingShowsCount(ctx context.Context, owner Owner, now time.Time) (int, error) {
	return service.repo.CountShows(ctx, Filter{Owner: owner, Timeframe: Upcoming, Now: now})
}

// Timeline splits the owner's shows around now. Counts are the list lengths.
func (service *Service) Timeline(ctx context.Context, owner Owner, now time.Time) (*Timeline, error) {
	past, err := service.PastShows(ctx, owner, now)
	if err != nil {
		return nil, err
	}

	upcoming, err := service.UpcomingShows(ctx, owner, now)
	if err != nil {
		return nil, err
	}

	return &Timeline{
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (service *Service) CreateShow(ctx context.Context, input CreateInput) (*Show, error) {
	validator := &validate.Validator{}
	validator.
		Positive(FieldArtistID, input.ArtistID).
		Positive(FieldVenueID, input.VenueID).
		Custom(FieldStartTime, input.StartTime.IsZero(), "This field is required")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	show := &Show{
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
		StartTime: NormalizeTime(input.StartTime),
	}

	if err := service.repo.CreateShow(ctx, show); err != nil {
		return nil, err
	}

	service.logger.Info("show_created",
		slog.Int64("show_id", show.ID),
		slog.Int64("artist_id", show.ArtistID),
		slog.Int64("venue_id", show.VenueID),
		slog.Time("start_time", show.StartTime),
	)
	return show, nil
}
