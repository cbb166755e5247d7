package venue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/pkg/query"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectVenues is the projection shared by every venue query. Columns follow
// [schema.VenueTable.Columns] order; a NULL image link reads as empty.
var selectVenues = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, %s, COALESCE(%s, ''), %s, %s, %s, %s, %s
	FROM %s`,
	schema.Venues.ID, schema.Venues.Name, schema.Venues.City, schema.Venues.State,
	schema.Venues.Address, schema.Venues.Phone, schema.Venues.ImageLink, schema.Venues.FacebookLink,
	schema.Venues.Genres, schema.Venues.Website, schema.Venues.SeekingTalent, schema.Venues.SeekingDescription,
	schema.Venues.Table,
)

func scanPostgresVenue(row rowScanner) (*Venue, error) {
	v := &Venue{}
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Genres, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return v, err
}

func (repository *PostgresRepository) SearchVenues(ctx context.Context, f Filter) ([]*Venue, int, error) {

	// Rows and count read the same snapshot.
	transaction, err := repository.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues_begin")
	}
	defer transaction.Rollback(ctx)

	where := ""
	args := []any{}
	if f.Query != "" {
		where = fmt.Sprintf(" WHERE %s ILIKE $1 %s", schema.Venues.Name, query.EscapeClause)
		args = append(args, query.Contains(f.Query))
	}

	rows, err := transaction.Query(ctx, selectVenues+where+fmt.Sprintf(" ORDER BY %s ASC", schema.Venues.ID), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues")
	}

	venues := make([]*Venue, 0)
	for rows.Next() {
		v, err := scanPostgresVenue(rows)
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
	if err := transaction.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_venues")
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, 0, dberr.Wrap(err, "search_venues_commit")
	}

	return venues, total, nil
}

func (repository *PostgresRepository) GetVenue(ctx context.Context, id int64) (*Venue, error) {
	query := selectVenues + fmt.Sprintf(" WHERE %s = $1", schema.Venues.ID)

	v, err := scanPostgresVenue(repository.db.QueryRow(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}
	return v, nil
}

func (repository *PostgresRepository) ListLocations(ctx context.Context) ([]*Location, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, array_agg(%s ORDER BY %s), array_agg(%s ORDER BY %s)
		FROM %s
		GROUP BY %s, %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.Venues.City, schema.Venues.State,
		schema.Venues.ID, schema.Venues.ID, schema.Venues.Name, schema.Venues.ID,
		schema.Venues.Table,
		schema.Venues.City, schema.Venues.State,
		schema.Venues.State, schema.Venues.City,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locations")
	}
	defer rows.Close()

	locations := make([]*Location, 0)
	for rows.Next() {
		var city, state string
		var ids []int64
		var names []string
		if err := rows.Scan(&city, &state, &ids, &names); err != nil {
			return nil, dberr.Wrap(err, "scan_location")
		}

		location := NewLocation(city, state)
		location.VenueIDs = ids
		location.VenueNames = names
		locations = append(locations, location)
	}

	return locations, dberr.Wrap(rows.Err(), "list_locations")
}

func (repository *PostgresRepository) CreateVenue(ctx context.Context, v *Venue) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)
		RETURNING %s
	`,
		schema.Venues.Table,
		schema.Venues.Name, schema.Venues.City, schema.Venues.State, schema.Venues.Address,
		schema.Venues.Phone, schema.Venues.ImageLink, schema.Venues.FacebookLink, schema.Venues.Genres,
		schema.Venues.Website, schema.Venues.SeekingTalent, schema.Venues.SeekingDescription,
		schema.Venues.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Genres, v.Website, v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	return dberr.Wrap(err, "create_venue")
}

func (repository *PostgresRepository) UpdateVenue(ctx context.Context, id int64, input UpdateInput) (*Venue, error) {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue_begin")
	}
	defer transaction.Rollback(ctx)

	lockQuery := selectVenues + fmt.Sprintf(" WHERE %s = $1 FOR UPDATE", schema.Venues.ID)
	v, err := scanPostgresVenue(transaction.QueryRow(ctx, lockQuery, id))
	if dberr.IsNoRows(err) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue_lock")
	}

	input.Apply(v)

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NULLIF($7, ''),
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1
	`,
		schema.Venues.Table,
		schema.Venues.Name, schema.Venues.City, schema.Venues.State, schema.Venues.Address,
		schema.Venues.Phone, schema.Venues.ImageLink, schema.Venues.FacebookLink, schema.Venues.Genres,
		schema.Venues.Website, schema.Venues.SeekingTalent, schema.Venues.SeekingDescription,
		schema.Venues.ID,
	)

	_, err = transaction.Exec(ctx, updateQuery, v.ID,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Genres, v.Website, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_venue")
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, dberr.Wrap(err, "update_venue_commit")
	}
	return v, nil
}

func (repository *PostgresRepository) DeleteVenue(ctx context.Context, id int64) (int, error) {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue_begin")
	}
	defer transaction.Rollback(ctx)

	// Locking the venue blocks show creation against it until we commit.
	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, schema.Venues.ID, schema.Venues.Table, schema.Venues.ID)
	if err := transaction.QueryRow(ctx, lockQuery, id).Scan(&id); err != nil {
		if dberr.IsNoRows(err) {
			return 0, ErrVenueNotFound
		}
		return 0, dberr.Wrap(err, "delete_venue_lock")
	}

	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Shows.Table, schema.Shows.VenueID)
	removed, err := transaction.Exec(ctx, showsQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_venue_shows")
	}

	venueQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Venues.Table, schema.Venues.ID)
	if _, err := transaction.Exec(ctx, venueQuery, id); err != nil {
		return 0, dberr.Wrap(err, "delete_venue")
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, dberr.Wrap(err, "delete_venue_commit")
	}
	return int(removed.RowsAffected()), nil
}
