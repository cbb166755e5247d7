package show

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

// SQLiteRepository stores shows in SQLite. Start times are Unix microseconds.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) ListShows(ctx context.Context, f Filter) ([]*Show, error) {
	where, args := whereClause(f.predicates(), question, asMicros)
	query := selectShows + where + fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.Shows.StartTime, schema.Shows.ID)

	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	shows := make([]*Show, 0)
	for rows.Next() {
		s := &Show{}
		var startTime int64
		if err := rows.Scan(&s.ID, &startTime, &s.ArtistID, &s.VenueID, &s.ArtistName, &s.VenueName, &s.ArtistImageLink); err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		s.StartTime = fromMicros(startTime)
		shows = append(shows, s)
	}

	return shows, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *SQLiteRepository) CountShows(ctx context.Context, f Filter) (int, error) {
	where, args := whereClause(f.predicates(), question, asMicros)
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Shows.Table) + where

	var total int
	err := repository.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, dberr.Wrap(err, "count_shows")
}

func (repository *SQLiteRepository) CreateShow(ctx context.Context, s *Show) error {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return dberr.Wrap(err, "create_show_begin")
	}
	defer transaction.Rollback()

	artistQuery := fmt.Sprintf(`SELECT %s, COALESCE(%s, '') FROM %s WHERE %s = ?`,
		schema.Artists.Name, schema.Artists.ImageLink, schema.Artists.Table, schema.Artists.ID,
	)
	err = transaction.QueryRowContext(ctx, artistQuery, s.ArtistID).Scan(&s.ArtistName, &s.ArtistImageLink)
	if dberr.IsNoRows(err) {
		return ErrArtistReference
	}
	if err != nil {
		return dberr.Wrap(err, "create_show_artist")
	}

	venueQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Venues.Name, schema.Venues.Table, schema.Venues.ID,
	)
	err = transaction.QueryRowContext(ctx, venueQuery, s.VenueID).Scan(&s.VenueName)
	if dberr.IsNoRows(err) {
		return ErrVenueReference
	}
	if err != nil {
		return dberr.Wrap(err, "create_show_venue")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING %s
	`,
		schema.Shows.Table, schema.Shows.StartTime, schema.Shows.ArtistID, schema.Shows.VenueID,
		schema.Shows.ArtistName, schema.Shows.VenueName, schema.Shows.ArtistImageLink,
		schema.Shows.ID,
	)
	err = transaction.QueryRowContext(ctx, insertQuery,
		asMicros(s.StartTime), s.ArtistID, s.VenueID, s.ArtistName, s.VenueName, s.ArtistImageLink,
	).Scan(&s.ID)
	if err != nil {
		return dberr.Wrap(err, "create_show")
	}

	return dberr.Wrap(transaction.Commit(), "create_show_commit")
}

func question(int) string {
	return "?"
}

func asMicros(t time.Time) any {
	return t.UTC().UnixMicro()
}

func fromMicros(value int64) time.Time {
	return time.UnixMicro(value).UTC()
}
