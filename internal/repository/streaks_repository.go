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

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	var streak entity.Streak
	streak.UserID = uid
	row := sr.conn.QueryRow(
		ctx,
		`SELECT current_streak, longest_streak, last_entry_date, reminder_sent_today, updated_at FROM streaks WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&streak.CurrentStreak, &streak.LongestStreak, &streak.LastEntryDate, &streak.ReminderSentToday, &streak.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}

func (sr *StreaksRepository) Create(ctx context.Context, uid uuid.UUID) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO streaks (user_id, current_streak, longest_streak) VALUES ($1, 0, 0);`, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating streak db error: " + err.Error())
	}
	return nil
}

func (sr *StreaksRepository) RecordEntry(ctx context.Context, uid uuid.UUID, currentStreak, longestStreak int, entryDate time.Time) error {
	ct, err := sr.conn.Exec(
		ctx,
		`UPDATE streaks SET current_streak = $1, longest_streak = $2, last_entry_date = $3, updated_at = NOW() WHERE user_id = $4;`,
		currentStreak,
		longestStreak,
		entryDate,
		uid,
	)
	if err != nil {
		return errors.New("recording entry on streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}

func (sr *StreaksRepository) GetPendingReminders(ctx context.Context, lastEntryDate time.Time) ([]*entity.Streak, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT user_id, current_streak, longest_streak, last_entry_date, reminder_sent_today, updated_at FROM streaks WHERE last_entry_date = $1 AND reminder_sent_today = FALSE AND current_streak > 0;`,
		lastEntryDate,
	)
	if err != nil {
		return nil, errors.New("getting pending reminders error: " + err.Error())
	}
	result := make([]*entity.Streak, 0, 8)
	for rows.Next() {
		streak := entity.Streak{}
		err = rows.Scan(&streak.UserID, &streak.CurrentStreak, &streak.LongestStreak, &streak.LastEntryDate, &streak.ReminderSentToday, &streak.UpdatedAt)
		if err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		result = append(result, &streak)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *StreaksRepository) MarkReminderSent(ctx context.Context, uid uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET reminder_sent_today = TRUE WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("marking reminder sent error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}

func (sr *StreaksRepository) ResetReminderFlags(ctx context.Context) error {
	_, err := sr.conn.Exec(ctx, `UPDATE streaks SET reminder_sent_today = FALSE WHERE reminder_sent_today = TRUE;`)
	if err != nil {
		return errors.New("resetting reminder flags error: " + err.Error())
	}
	return nil
}
