package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/pkg/cleanup"
	"github.com/arthlor/yeser-api/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.Entry) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO entries (user_id, content, entry_date) VALUES ($1, $2, $3) RETURNING id;`,
		entry.UserID,
		entry.Content,
		entry.EntryDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrEntryExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating entry db error: " + err.Error())
	}
	return id, nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entry entity.Entry
	entry.ID = id
	row := er.conn.QueryRow(ctx, `SELECT user_id, content, entry_date, created_at FROM entries WHERE id = $1;`, id)
	if err := row.Scan(&entry.UserID, &entry.Content, &entry.EntryDate, &entry.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, content, entry_date, created_at FROM entries WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2 OFFSET $3;`,
		uid,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("getting entries page error: " + err.Error())
	}
	return scanEntries(rows)
}

func (er *EntriesRepository) GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Entry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, content, entry_date, created_at FROM entries WHERE user_id = $1 ORDER BY entry_date ASC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting all entries error: " + err.Error())
	}
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*entity.Entry, error) {
	result := make([]*entity.Entry, 0, 8)
	for rows.Next() {
		entry := entity.Entry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Content, &entry.EntryDate, &entry.CreatedAt)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		result = append(result, &entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (er *EntriesRepository) ExistsForDate(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := er.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM entries WHERE user_id = $1 AND entry_date = $2);`,
		uid,
		date,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if entry exists error: " + err.Error())
	}
	return exists, nil
}

func (er *EntriesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := er.conn.QueryRow(ctx, `SELECT COUNT(*) FROM entries WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting entries: " + err.Error())
	}
	return count, nil
}

func (er *EntriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}
