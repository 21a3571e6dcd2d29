package repository

import (
	"context"
	"database/sql"

	"bioskop/internal/database"
	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

type StudioRepository struct {
	db *database.DB
}

func NewStudioRepository(db *database.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

// Create inserts a studio and generates its full seat grid in one
// transaction. The grid never changes after this.
func (r *StudioRepository) Create(ctx context.Context, studio *models.Studio) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO studios (code, name, row_count, col_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := tx.QueryRowContext(ctx, query, studio.Code, studio.Name, studio.Rows, studio.Cols).Scan(&studio.ID); err != nil {
		return err
	}

	seatQuery := `INSERT INTO studio_seats (studio_id, row_letter, col_number) VALUES ($1, $2, $3)`
	for _, row := range seatmap.RowLetters(studio.Rows) {
		for col := 1; col <= studio.Cols; col++ {
			if _, err := tx.ExecContext(ctx, seatQuery, studio.ID, row, col); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*models.Studio, error) {
	studio := &models.Studio{}
	query := `SELECT id, code, name, row_count, col_count FROM studios WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&studio.ID,
		&studio.Code,
		&studio.Name,
		&studio.Rows,
		&studio.Cols,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return studio, err
}

func (r *StudioRepository) GetByCode(ctx context.Context, code string) (*models.Studio, error) {
	studio := &models.Studio{}
	query := `SELECT id, code, name, row_count, col_count FROM studios WHERE code = $1`

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&studio.ID,
		&studio.Code,
		&studio.Name,
		&studio.Rows,
		&studio.Cols,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return studio, err
}

func (r *StudioRepository) List(ctx context.Context) ([]models.Studio, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, name, row_count, col_count FROM studios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studios []models.Studio
	for rows.Next() {
		var studio models.Studio
		if err := rows.Scan(&studio.ID, &studio.Code, &studio.Name, &studio.Rows, &studio.Cols); err != nil {
			return nil, err
		}
		studios = append(studios, studio)
	}

	return studios, rows.Err()
}

// Update changes code and name only; the seat grid is immutable.
func (r *StudioRepository) Update(ctx context.Context, studio *models.Studio) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE studios SET code = $1, name = $2 WHERE id = $3`,
		studio.Code, studio.Name, studio.ID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *StudioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM studios WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
