package artist

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

// SQLiteRepository stores artists in SQLite. Genres are a JSON array column.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanSQLiteArtist(row rowScanner) (*Artist, error) {
	a := &Artist{}
	var genres string
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &genres, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(genres), &a.Genres); err != nil {
		return nil, fmt.Errorf("decode genres of artist %d: %w", a.ID, err)
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return a, nil
}

func encodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	encoded, err := json.Marshal(genres)
	return string(encoded), err
}

func (repository *SQLiteRepository) ListArtists(ctx context.Context) ([]*Artist, error) {
	artists, _, err := repository.SearchArtists(ctx, Filter{})
	return artists, err
}

func (repository *SQLiteRepository) SearchArtists(ctx context.Context, f Filter) ([]*Artist, int, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists_begin")
	}
	defer transaction.Rollback()

	where := ""
	args := []any{}
	if f.Query != "" {
		where = fmt.Sprintf(" WHERE %[1]s(%[2]s) LIKE %[1]s(?) %[3]s", sqlitestore.FoldFunction, schema.Artists.Name, query.EscapeClause)
		args = append(args, query.Contains(f.Query))
	}

	rows, err := transaction.QueryContext(ctx, selectArtists+where+fmt.Sprintf(" ORDER BY %s ASC", schema.Artists.ID), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists")
	}

	artists := make([]*Artist, 0)
	for rows.Next() {
		a, err := scanSQLiteArtist(rows)
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
	if err := transaction.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	if err := transaction.Commit(); err != nil {
		return nil, 0, dberr.Wrap(err, "search_artists_commit")
	}

	return artists, total, nil
}

func (repository *SQLiteRepository) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	query := selectArtists + fmt.Sprintf(" WHERE %s = ?", schema.Artists.ID)

	a, err := scanSQLiteArtist(repository.db.QueryRowContext(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return a, nil
}

func (repository *SQLiteRepository) CreateArtist(ctx context.Context, a *Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return dberr.Wrap(err, "encode_genres")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES (?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?)
		RETURNING %s
	`,
		schema.Artists.Table,
		schema.Artists.Name, schema.Artists.City, schema.Artists.State, schema.Artists.Phone,
		schema.Artists.ImageLink, schema.Artists.FacebookLink, schema.Artists.Genres,
		schema.Artists.Website, schema.Artists.SeekingVenue, schema.Artists.SeekingDescription,
		schema.Artists.ID,
	)

	err = repository.db.QueryRowContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, genres, a.Website, a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	return dberr.Wrap(err, "create_artist")
}

func (repository *SQLiteRepository) UpdateArtist(ctx context.Context, id int64, input UpdateInput) (*Artist, int, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_begin")
	}
	defer transaction.Rollback()

	selectQuery := selectArtists + fmt.Sprintf(" WHERE %s = ?", schema.Artists.ID)
	a, err := scanSQLiteArtist(transaction.QueryRowContext(ctx, selectQuery, id))
	if dberr.IsNoRows(err) {
		return nil, 0, ErrArtistNotFound
	}
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_select")
	}

	imageChanged := input.Apply(a)

	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "encode_genres")
	}

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = ?, %s = ?, %s = ?, %s = ?, %s = NULLIF(?, ''),
		    %s = ?, %s = ?, %s = ?, %s = ?, %s = ?
		WHERE %s = ?
	`,
		schema.Artists.Table,
		schema.Artists.Name, schema.Artists.City, schema.Artists.State, schema.Artists.Phone,
		schema.Artists.ImageLink, schema.Artists.FacebookLink, schema.Artists.Genres,
		schema.Artists.Website, schema.Artists.SeekingVenue, schema.Artists.SeekingDescription,
		schema.Artists.ID,
	)

	_, err = transaction.ExecContext(ctx, updateQuery,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, genres, a.Website, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist")
	}

	relinked := 0
	if imageChanged {
		relinkQuery := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`,
			schema.Shows.Table, schema.Shows.ArtistImageLink, schema.Shows.ArtistID,
		)
		result, err := transaction.ExecContext(ctx, relinkQuery, a.ImageLink, a.ID)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "relink_artist_shows")
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, 0, dberr.Wrap(err, "relink_artist_shows")
		}
		relinked = int(affected)
	}

	if err := transaction.Commit(); err != nil {
		return nil, 0, dberr.Wrap(err, "update_artist_commit")
	}
	return a, relinked, nil
}

func (repository *SQLiteRepository) DeleteArtist(ctx context.Context, id int64) (int, error) {
	transaction, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist_begin")
	}
	defer transaction.Rollback()

	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Shows.Table, schema.Shows.ArtistID)
	removed, err := transaction.ExecContext(ctx, showsQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist_shows")
	}

	artistQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Artists.Table, schema.Artists.ID)
	deleted, err := transaction.ExecContext(ctx, artistQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist")
	}

	affected, err := deleted.RowsAffected()
	if err != nil {
		return 0, dberr.Wrap(err, "delete_artist")
	}
	if affected == 0 {
		return 0, ErrArtistNotFound
	}

	if err := transaction.Commit(); err != nil {
		return 0, dberr.Wrap(err, "delete_artist_commit")
	}

	count, err := removed.RowsAffected()
	return int(count), dberr.Wrap(err, "delete_artist_shows")
}
