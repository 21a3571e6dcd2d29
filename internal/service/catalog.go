package service

import (
	"context"
	"fmt"
	"time"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/repository"
	"bioskop/internal/seatmap"
)

// CatalogService serves the public movie catalog and the seat-map display.
type CatalogService struct {
	movies    *repository.MovieRepository
	schedules *repository.ScheduleRepository
	carts     CartStore
	ledger    SeatLedger
	refDate   string
}

func NewCatalogService(movies *repository.MovieRepository, schedules *repository.ScheduleRepository, carts CartStore, ledger SeatLedger, refDate string) *CatalogService {
	return &CatalogService{
		movies:    movies,
		schedules: schedules,
		carts:     carts,
		ledger:    ledger,
		refDate:   refDate,
	}
}

// referenceDate returns the pinned catalog date, or today when unset.
func (s *CatalogService) referenceDate() string {
	if s.refDate != "" {
		return s.refDate
	}
	return time.Now().Format("2006-01-02")
}

// NowPlaying lists movies with at least one schedule on or after the
// reference date.
func (s *CatalogService) NowPlaying(ctx context.Context) (*models.NowPlayingResponse, error) {
	movies, err := s.movies.ListNowPlaying(ctx, s.referenceDate())
	if err != nil {
		return nil, fmt.Errorf("failed to list now playing: %w", err)
	}

	data := make([]models.MoviePublic, len(movies))
	for i, movie := range movies {
		data[i] = moviePublic(movie)
	}

	return &models.NowPlayingResponse{Count: len(data), Data: data}, nil
}

// MovieDetails returns one movie with all its schedules.
func (s *CatalogService) MovieDetails(ctx context.Context, code string) (*models.MoviePublic, error) {
	movie, err := s.movies.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.ErrMovieNotFound
	}

	schedules, err := s.schedules.ListByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	result := moviePublic(*movie)
	result.Schedules = make([]models.ScheduleOut, len(schedules))
	for i, schedule := range schedules {
		result.Schedules[i] = scheduleOut(schedule)
	}

	return &result, nil
}

// SeatMap renders the availability grid of a screening: sold seats from the
// ledger, held seats from every member's cart.
func (s *CatalogService) SeatMap(ctx context.Context, scheduleCode string) (*models.SeatMapResponse, error) {
	schedule, err := s.schedules.GetByCode(ctx, scheduleCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	sold, err := s.ledger.SoldSeats(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sold seats: %w", err)
	}

	held, err := s.carts.HeldSeats(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get held seats: %w", err)
	}

	return &models.SeatMapResponse{
		ScheduleCode: schedule.Code,
		MovieTitle:   schedule.MovieTitle,
		Studio:       schedule.StudioName,
		Display:      seatmap.Build(schedule.StudioRows, schedule.StudioCols, sold, held),
	}, nil
}

func moviePublic(movie models.Movie) models.MoviePublic {
	return models.MoviePublic{
		ID:       movie.Code,
		Title:    movie.Title,
		Duration: movie.Duration,
		Price:    movie.Price,
		Genre:    movie.Genre,
		Rating:   movie.Rating,
		Director: movie.Director,
	}
}

func scheduleOut(schedule models.ScheduleDetail) models.ScheduleOut {
	return models.ScheduleOut{
		ID:         schedule.ID,
		Code:       schedule.Code,
		MovieCode:  schedule.MovieCode,
		StudioCode: schedule.StudioCode,
		Date:       schedule.ShowDate.Format("2006-01-02"),
		Time:       schedule.ShowTime,
		MovieTitle: schedule.MovieTitle,
		StudioName: schedule.StudioName,
	}
}
