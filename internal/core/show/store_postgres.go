package show

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectShows is the projection shared by every show query.
var selectShows = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, %s, %s
	FROM %s`,
	schema.Shows.ID, schema.Shows.StartTime, schema.Shows.ArtistID, schema.Shows.VenueID,
	schema.Shows.ArtistName, schema.Shows.VenueName, schema.Shows.ArtistImageLink,
	schema.Shows.Table,
)

func (repository *PostgresRepository) ListShows(ctx context.Context, f Filter) ([]*Show, error) {
	where, args := whereClause(f.predicates(), dollar, asTimestamp)
	query := selectShows + where + fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.Shows.StartTime, schema.Shows.ID)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	shows := make([]*Show, 0)
	for rows.Next() {
		s := &Show{}
		if err := rows.Scan(&s.ID, &s.StartTime, &s.ArtistID, &s.VenueID, &s.ArtistName, &s.VenueName, &s.ArtistImageLink); err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		s.StartTime = s.StartTime.UTC()
		shows = append(shows, s)
	}

	return shows, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *PostgresRepository) CountShows(ctx context.Context, f Filter) (int, error) {
	where, args := whereClause(f.predicates(), dollar, asTimestamp)
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Shows.Table) + where

	var total int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, dberr.Wrap(err, "count_shows")
}

func (repository *PostgresRepository) CreateShow(ctx context.Context, s *Show) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "create_show_begin")
	}
	defer transaction.Rollback(ctx)

	// Lock both referenced rows so neither can be deleted before the insert lands.
	artistQuery := fmt.Sprintf(`SELECT %s, COALESCE(%s, '') FROM %s WHERE %s = $1 FOR SHARE`,
		schema.Artists.Name, schema.Artists.ImageLink, schema.Artists.Table, schema.Artists.ID,
	)
	err = transaction.QueryRow(ctx, artistQuery, s.ArtistID).Scan(&s.ArtistName, &s.ArtistImageLink)
	if dberr.IsNoRows(err) {
		return ErrArtistReference
	}
	if err != nil {
		return dberr.Wrap(err, "create_show_artist")
	}

	venueQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR SHARE`,
		schema.Venues.Name, schema.Venues.Table, schema.Venues.ID,
	)
	err = transaction.QueryRow(ctx, venueQuery, s.VenueID).Scan(&s.VenueName)
	if dberr.IsNoRows(err) {
		return ErrVenueReference
	}
	if err != nil {
		return dberr.Wrap(err, "create_show_venue")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.Shows.Table, schema.Shows.StartTime, schema.Shows.ArtistID, schema.Shows.VenueID,
		schema.Shows.ArtistName, schema.Shows.VenueName, schema.Shows.ArtistImageLink,
		schema.Shows.ID,
	)
	err = transaction.QueryRow(ctx, insertQuery,
		s.StartTime, s.ArtistID, s.VenueID, s.ArtistName, s.VenueName, s.ArtistImageLink,
	).Scan(&s.ID)
	if err != nil {
		return dberr.Wrap(err, "create_show")
	}

	return dberr.Wrap(transaction.Commit(ctx), "create_show_commit")
}

func dollar(position int) string {
	return "$" + strconv.Itoa(position)
}

func asTimestamp(t time.Time) any {
	return t.UTC()
}

