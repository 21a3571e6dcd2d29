package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bioskop/internal/database"
	"bioskop/internal/models"
)

type ScheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleDetailColumns = `
	s.id, s.code, s.movie_id, s.movie_code, s.studio_id, s.studio_code,
	s.show_date, to_char(s.show_time, 'HH24:MI'),
	m.title, m.genre, m.price, m.duration_min,
	st.name, st.row_count, st.col_count`

const scheduleDetailFrom = `
	FROM schedules s
	JOIN movies m ON m.id = s.movie_id
	JOIN studios st ON st.id = s.studio_id`

func scanScheduleDetail(row interface{ Scan(...interface{}) error }) (*models.ScheduleDetail, error) {
	detail := &models.ScheduleDetail{}
	err := row.Scan(
		&detail.ID,
		&detail.Code,
		&detail.MovieID,
		&detail.MovieCode,
		&detail.StudioID,
		&detail.StudioCode,
		&detail.ShowDate,
		&detail.ShowTime,
		&detail.MovieTitle,
		&detail.MovieGenre,
		&detail.MoviePrice,
		&detail.MovieDuration,
		&detail.StudioName,
		&detail.StudioRows,
		&detail.StudioCols,
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (code, movie_id, movie_code, studio_id, studio_code, show_date, show_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		schedule.Code,
		schedule.MovieID,
		schedule.MovieCode,
		schedule.StudioID,
		schedule.StudioCode,
		schedule.ShowDate,
		schedule.ShowTime,
	).Scan(&schedule.ID)
}

// NextCode generates the next schedule code, SCH001 style, from the highest
// existing id.
func (r *ScheduleRepository) NextCode(ctx context.Context) (string, error) {
	var lastID sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(id) FROM schedules`).Scan(&lastID); err != nil {
		return "", err
	}
	return fmt.Sprintf("SCH%03d", lastID.Int64+1), nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.ScheduleDetail, error) {
	query := `SELECT` + scheduleDetailColumns + scheduleDetailFrom + ` WHERE s.id = $1`

	detail, err := scanScheduleDetail(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return detail, err
}

func (r *ScheduleRepository) GetByCode(ctx context.Context, code string) (*models.ScheduleDetail, error) {
	query := `SELECT` + scheduleDetailColumns + scheduleDetailFrom + ` WHERE s.code = $1`

	detail, err := scanScheduleDetail(r.db.QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return detail, err
}

func (r *ScheduleRepository) List(ctx context.Context) ([]models.ScheduleDetail, error) {
	query := `SELECT` + scheduleDetailColumns + scheduleDetailFrom + ` ORDER BY s.show_date, s.show_time`
	return r.queryDetails(ctx, query)
}

// ListByMovie returns all schedules of one movie, ordered by date and time.
func (r *ScheduleRepository) ListByMovie(ctx context.Context, movieID int64) ([]models.ScheduleDetail, error) {
	query := `SELECT` + scheduleDetailColumns + scheduleDetailFrom + `
		WHERE s.movie_id = $1
		ORDER BY s.show_date, s.show_time`
	return r.queryDetails(ctx, query, movieID)
}

func (r *ScheduleRepository) queryDetails(ctx context.Context, query string, args ...interface{}) ([]models.ScheduleDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.ScheduleDetail
	for rows.Next() {
		detail, err := scanScheduleDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, rows.Err()
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) (bool, error) {
	query := `
		UPDATE schedules
		SET movie_id = $1, movie_code = $2, studio_id = $3, studio_code = $4, show_date = $5, show_time = $6
		WHERE code = $7`

	result, err := r.db.ExecContext(ctx, query,
		schedule.MovieID,
		schedule.MovieCode,
		schedule.StudioID,
		schedule.StudioCode,
		schedule.ShowDate,
		schedule.ShowTime,
		schedule.Code,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *ScheduleRepository) Delete(ctx context.Context, code string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE code = $1`, code)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
