package artist

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

// selectArtists is the projection shared by every artist query. Columns follow
// [schema.ArtistTable.Columns] order; a NULL image link reads as empty.
var selectArtists = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, COALESCE(%s, ''), %s, %s, %s, %s, %s
	FROM %s`,
	schema.Artists.ID, schema.Artists.Name, schema.Artists.City, schema.Artists.State,
	schema.Artists.Phone, schema.Artists.ImageLink, schema.Artists.FacebookLink, schema.Artists.Genres,
	schema.Artists.Website, schema.Artists.SeekingVenue, schema.Artists.SeekingDescription,
	schema.Artists.Table,
)

func scanPostgresArtist(row rowScanner) (*Artist, error) {
	a := &Artist{}
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Genres, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return a, err
}

func (repository *PostgresRepository) ListArtists(ctx context.Context) ([]*Artist, error) {
	artists, _, err := repository.SearchArtists(ctx, Filter{})
	return artists, err
}

func (repository *PostgresRepository) SearchArtists(ctx context.Context, f Filter) ([]*Artist, int, error) {

	// Rows and count read the same snapshot.
	transaction, err := repository.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists_begin")
	}
	defer transaction.Rollback(ctx)

	where := ""
	args := []any{}
	if f.Query != "" {
		where = fmt.Sprintf(" WHERE %s ILIKE $1 %s", schema.Artists.Name, query.EscapeClause)
		args = append(args, query.Contains(f.Query))
	}

	rows, err := transaction.Query(ctx, selectArtists+where+fmt.Sprintf(" ORDER BY %s ASC", schema.Artists.ID), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists")
	}

	artists := make([]*Artist, 0)
	for rows.Next() {
		a, err := scanPostgresArtist(rows)
		if err != nil {
			rows.Close()
			return nil, 0, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Artists.Table) + where
	if err := transaction.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists_commit")
	}

	return artists, total, nil
}

func (repository *PostgresRepository) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	query := selectArtists + fmt.Sprintf(" WHERE %s = $1", schema.Artists.ID)

	a, err := scanPostgresArtist(repository.db.QueryRow(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateArtist(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)
		RETURNING %s
	`,
		schema.Artists.Table,
		schema.Artists.Name, schema.Artists.City, schema.Artists.State, schema.Artists.Phone,
		schema.Artists.ImageLink, schema.Artists.FacebookLink, schema.Artists.Genres,
		schema.Artists.Website, schema.Artists.SeekingVenue, schema.Artists.SeekingDescription,
		schema.Artists.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Genres, a.Website, a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) UpdateArtist(ctx context.Context, id int64, input UpdateInput) (*Artist, int, error) {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_begin")
	}
	defer transaction.Rollback(ctx)

	lockQuery := selectArtists + fmt.Sprintf(" WHERE %s = $1 FOR UPDATE", schema.Artists.ID)
	a, err := scanPostgresArtist(transaction.QueryRow(ctx, lockQuery, id))
	if dberr.IsNoRows(err) {
		return nil, 0, ErrArtistNotFound
	}
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_lock")
	}

	imageChanged := input.Apply(a)

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NULLIF($6, ''),
		    %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1
	`,
		schema.Artists.Table,
		schema.Artists.Name, schema.Artists.City, schema.Artists.State, schema.Artists.Phone,
		schema.Artists.ImageLink, schema.Artists.FacebookLink, schema.Artists.Genres,
		schema.Artists.Website, schema.Artists.SeekingVenue, schema.Artists.SeekingDescription,
		schema.Artists.ID,
	)

	_, err = transaction.Exec(ctx, updateQuery, a.ID,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Genres, a.Website, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist")
	}

	relinked := 0
	if imageChanged {
		relinkQuery := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
			schema.Shows.Table, schema.Shows.ArtistImageLink, schema.Shows.ArtistID,
		)
		tag, err := transaction.Exec(ctx, relinkQuery, a.ID, a.ImageLink)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "relink_artist_shows")
		}
		relinked = int(tag.RowsAffected())
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_commit")
	}
	return a, relinked, nil
}

func (repository *PostgresRepository) DeleteArtist(ctx context.Context, id int64) (int, error) {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist_begin")
	}
	defer transaction.Rollback(ctx)

	// Locking the artist blocks show creation against it until we commit.
	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, schema.Artists.ID, schema.Artists.Table, schema.Artists.ID)
	if err := transaction.QueryRow(ctx, lockQuery, id).Scan(&id); err != nil {
		if dberr.IsNoRows(err) {
			return 0, ErrArtistNotFound
		}
		return 0, dberr.Wrap(err, "delete_artist_lock")
	}

	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Shows.Table, schema.Shows.ArtistID)
	removed, err := transaction.Exec(ctx, showsQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist_shows")
	}

	artistQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Artists.Table, schema.Artists.ID)
	if _, err := transaction.Exec(ctx, artistQuery, id); err != nil {
		return 0, dberr.Wrap(err, "delete_artist")
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, dberr.Wrap(err, "delete_artist_commit")
	}
	return int(removed.RowsAffected()), nil
}
