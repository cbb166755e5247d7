package venue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	sqlitestore "github.com/taibuivan/fyyur/internal/platform/sqlite"
	"github.com/taibuivan/fyyur/pkg/query"
)

// SQLiteRepository stores venues in SQLite. Genres are a JSON array column.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanSQLiteVenue(row rowScanner) (*Venue, error) {
	v := &Venue{}
	var genres string
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &genres, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(genres), &v.Genres); err != nil {
		return nil, fmt.Errorf("decode genres of venue %d: %w", v.ID, err)
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return v, nil
}

func encodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	encoded, err := json.Marshal(genres)
	return string(encoded), err
}

func (repository *SQLiteRepository) SearchVenues(ctx context.Context, f Filter) ([]*Venue, int, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues_begin")
	}
	defer transaction.Rollback()

	where := ""
	args := []any{}
	if f.Query != "" {
		where = fmt.Sprintf(" WHERE %[1]s(%[2]s) LIKE %[1]s(?) %[3]s", sqlitestore.FoldFunction, schema.Venues.Name, query.EscapeClause)
		args = append(args, query.Contains(f.Query))
	}

	rows, err := transaction.QueryContext(ctx, selectVenues+where+fmt.Sprintf(" ORDER BY %s ASC", schema.Venues.ID), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues")
	}

	venues := make([]*Venue, 0)
	for rows.Next() {
		v, err := scanSQLiteVenue(rows)
		if err != nil {
			rows.Close()
			return nil, 0, dberr.Wrap(err, "scan_venue")
		}
		venues = append(venues, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Venues.Table) + where
	if err := transaction.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_venues")
	}

	if err := transaction.Commit(); err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues_commit")
	}

	return venues, total, nil
}

func (repository *SQLiteRepository) GetVenue(ctx context.Context, id int64) (*Venue, error) {
	query := selectVenues + fmt.Sprintf(" WHERE %s = ?", schema.Venues.ID)

	v, err := scanSQLiteVenue(repository.db.QueryRowContext(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}
	return v, nil
}

// ListLocations reads every venue in location order and groups them in memory.
func (repository *SQLiteRepository) ListLocations(ctx context.Context) ([]*Location, error) {
	query := selectVenues + fmt.Sprintf(" ORDER BY %s ASC, %s ASC, %s ASC", schema.Venues.State, schema.Venues.City, schema.Venues.ID)

	rows, err := repository.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locations")
	}
	defer rows.Close()

	var venues []*Venue
	for rows.Next() {
		v, err := scanSQLiteVenue(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_venue")
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_locations")
	}

	return GroupByLocation(venues), nil
}

func (repository *SQLiteRepository) CreateVenue(ctx context.Context, v *Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return dberr.Wrap(err, "encode_genres")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?)
		RETURNING %s
	`,
		schema.Venues.Table,
		schema.Venues.Name, schema.Venues.City, schema.Venues.State, schema.Venues.Address,
		schema.Venues.Phone, schema.Venues.ImageLink, schema.Venues.FacebookLink, schema.Venues.Genres,
		schema.Venues.Website, schema.Venues.SeekingTalent, schema.Venues.SeekingDescription,
		schema.Venues.ID,
	)

	err = repository.db.QueryRowContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, genres, v.Website, v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	return dberr.Wrap(err, "create_venue")
}

func (repository *SQLiteRepository) UpdateVenue(ctx context.Context, id int64, input UpdateInput) (*Venue, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue_begin")
	}
	defer transaction.Rollback()

	selectQuery := selectVenues + fmt.Sprintf(" WHERE %s = ?", schema.Venues.ID)
	v, err := scanSQLiteVenue(transaction.QueryRowContext(ctx, selectQuery, id))
	if dberr.IsNoRows(err) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue_select")
	}

	input.Apply(v)

	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return nil, dberr.Wrap(err, "encode_genres")
	}

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = ?, %s = ?, %s = ?, %s = ?, %s = ?, %s = NULLIF(?, ''),
		    %s = ?, %s = ?, %s = ?, %s = ?, %s = ?
		WHERE %s = ?
	`,
		schema.Venues.Table,
		schema.Venues.Name, schema.Venues.City, schema.Venues.State, schema.Venues.Address,
		schema.Venues.Phone, schema.Venues.ImageLink, schema.Venues.FacebookLink, schema.Venues.Genres,
		schema.Venues.Website, schema.Venues.SeekingTalent, schema.Venues.SeekingDescription,
		schema.Venues.ID,
	)

	_, err = transaction.ExecContext(ctx, updateQuery,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, genres, v.Website, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue")
	}

	if err := transaction.Commit(); err != nil {
		return nil, dberr.Wrap(err, "update_venue_commit")
	}
	return v, nil
}

func (repository *SQLiteRepository) DeleteVenue(ctx context.Context, id int64) (int, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue_begin")
	}
	defer transaction.Rollback()

	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Shows.Table, schema.Shows.VenueID)
	removed, err := transaction.ExecContext(ctx, showsQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue_shows")
	}

	venueQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Venues.Table, schema.Venues.ID)
	deleted, err := transaction.ExecContext(ctx, venueQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue")
	}

	affected, err := deleted.RowsAffected()
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue")
	}
	if affected == 0 {
		return 0, ErrVenueNotFound
	}

	if err := transaction.Commit(); err != nil {
		return 0, dberr.Wrap(err, "delete_venue_commit")
	}

	count, err := removed.RowsAffected()
	return int(count), dberr.Wrap(err, "delete_venue_shows")
}
