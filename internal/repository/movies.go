package repository

import (
	"context"
	"database/sql"

	"bioskop/internal/database"
	"bioskop/internal/models"
)

type MovieRepository struct {
	db *database.DB
}

func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	query := `
		INSERT INTO movies (code, title, genre, duration_min, director, rating, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		movie.Code,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Director,
		movie.Rating,
		movie.Price,
	).Scan(&movie.ID)
}

func (r *MovieRepository) GetByCode(ctx context.Context, code string) (*models.Movie, error) {
	movie := &models.Movie{}
	query := `
		SELECT id, code, title, genre, duration_min, director, rating, price
		FROM movies
		WHERE code = $1`

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&movie.ID,
		&movie.Code,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Director,
		&movie.Rating,
		&movie.Price,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return movie, err
}

func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	query := `
		SELECT id, code, title, genre, duration_min, director, rating, price
		FROM movies
		ORDER BY id`

	return r.queryMovies(ctx, query)
}

// ListNowPlaying returns movies that have at least one schedule on or after
// the reference date.
func (r *MovieRepository) ListNowPlaying(ctx context.Context, refDate string) ([]models.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.code, m.title, m.genre, m.duration_min, m.director, m.rating, m.price
		FROM movies m
		JOIN schedules s ON s.movie_id = m.id
		WHERE s.show_date >= $1
		ORDER BY m.id`

	return r.queryMovies(ctx, query, refDate)
}

func (r *MovieRepository) queryMovies(ctx context.Context, query string, args ...interface{}) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Code,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.Director,
			&movie.Rating,
			&movie.Price,
		)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

func (r *MovieRepository) Update(ctx context.Context, movie *models.Movie) (bool, error) {
	query := `
		UPDATE movies
		SET code = $1, title = $2, genre = $3, duration_min = $4, director = $5, rating = $6, price = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		movie.Code,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Director,
		movie.Rating,
		movie.Price,
		movie.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
