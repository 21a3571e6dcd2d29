package service

import (
	"context"
	"fmt"
	"time"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/pricing"
	"bioskop/internal/repository"
)

// AdminService covers the back-office CRUD for movies, studios, memberships
// and schedules. Movie prices are always derived from duration; studio seat
// grids are generated once and never resized.
type AdminService struct {
	movies    *repository.MovieRepository
	studios   *repository.StudioRepository
	members   *repository.MemberRepository
	schedules *repository.ScheduleRepository
}

func NewAdminService(movies *repository.MovieRepository, studios *repository.StudioRepository, members *repository.MemberRepository, schedules *repository.ScheduleRepository) *AdminService {
	return &AdminService{
		movies:    movies,
		studios:   studios,
		members:   members,
		schedules: schedules,
	}
}

// Movies

func (s *AdminService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movies.List(ctx)
}

func (s *AdminService) CreateMovie(ctx context.Context, input *models.MovieInput) (*models.Movie, error) {
	movie := movieFromInput(input)
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

func (s *AdminService) UpdateMovie(ctx context.Context, id int64, input *models.MovieInput) error {
	movie := movieFromInput(input)
	movie.ID = id

	updated, err := s.movies.Update(ctx, movie)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	if !updated {
		return apperrors.ErrMovieNotFound
	}
	return nil
}

func (s *AdminService) DeleteMovie(ctx context.Context, id int64) error {
	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if !deleted {
		return apperrors.ErrMovieNotFound
	}
	return nil
}

func movieFromInput(input *models.MovieInput) *models.Movie {
	return &models.Movie{
		Code:     input.Code,
		Title:    input.Title,
		Genre:    input.Genre,
		Duration: input.Duration,
		Director: input.Director,
		Rating:   input.Rating,
		Price:    pricing.TicketPrice(input.Duration),
	}
}

// Studios

func (s *AdminService) ListStudios(ctx context.Context) ([]models.Studio, error) {
	return s.studios.List(ctx)
}

func (s *AdminService) CreateStudio(ctx context.Context, input *models.StudioInput) (*models.Studio, error) {
	studio := &models.Studio{
		Code: input.Code,
		Name: input.Name,
		Rows: input.Rows,
		Cols: input.Cols,
	}
	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, fmt.Errorf("failed to create studio: %w", err)
	}
	return studio, nil
}

// UpdateStudio renames a studio. Changing the grid dimensions of an
// existing studio is rejected: the seats already exist and may be sold.
func (s *AdminService) UpdateStudio(ctx context.Context, id int64, input *models.StudioInput) error {
	existing, err := s.studios.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get studio: %w", err)
	}
	if existing == nil {
		return apperrors.ErrStudioNotFound
	}
	if input.Rows != existing.Rows || input.Cols != existing.Cols {
		return fmt.Errorf("%w: studio seat grid is immutable", apperrors.ErrInvalidInput)
	}

	existing.Code = input.Code
	existing.Name = input.Name

	updated, err := s.studios.Update(ctx, existing)
	if err != nil {
		return fmt.Errorf("failed to update studio: %w", err)
	}
	if !updated {
		return apperrors.ErrStudioNotFound
	}
	return nil
}

func (s *AdminService) DeleteStudio(ctx context.Context, id int64) error {
	deleted, err := s.studios.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete studio: %w", err)
	}
	if !deleted {
		return apperrors.ErrStudioNotFound
	}
	return nil
}

// Memberships

func (s *AdminService) ListMembers(ctx context.Context) ([]models.Membership, error) {
	return s.members.List(ctx)
}

func (s *AdminService) CreateMember(ctx context.Context, input *models.MembershipInput) (*models.Membership, error) {
	member := &models.Membership{Code: input.Code, Name: input.Name}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return member, nil
}

func (s *AdminService) UpdateMember(ctx context.Context, id int64, input *models.MembershipInput) error {
	member := &models.Membership{ID: id, Code: input.Code, Name: input.Name}

	updated, err := s.members.Update(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}
	if !updated {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

func (s *AdminService) DeleteMember(ctx context.Context, id int64) error {
	deleted, err := s.members.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	if !deleted {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// Schedules

func (s *AdminService) ListSchedules(ctx context.Context) ([]models.ScheduleOut, error) {
	details, err := s.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	result := make([]models.ScheduleOut, len(details))
	for i, detail := range details {
		result[i] = scheduleOut(detail)
	}
	return result, nil
}

func (s *AdminService) CreateSchedule(ctx context.Context, input *models.ScheduleInput) (*models.ScheduleOut, error) {
	movie, studio, showDate, err := s.resolveScheduleInput(ctx, input)
	if err != nil {
		return nil, err
	}

	code, err := s.schedules.NextCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule code: %w", err)
	}

	schedule := &models.Schedule{
		Code:       code,
		MovieID:    movie.ID,
		MovieCode:  movie.Code,
		StudioID:   studio.ID,
		StudioCode: studio.Code,
		ShowDate:   showDate,
		ShowTime:   input.Time,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return &models.ScheduleOut{
		ID:         schedule.ID,
		Code:       schedule.Code,
		MovieCode:  movie.Code,
		StudioCode: studio.Code,
		Date:       showDate.Format("2006-01-02"),
		Time:       input.Time,
		MovieTitle: movie.Title,
		StudioName: studio.Name,
	}, nil
}

func (s *AdminService) UpdateSchedule(ctx context.Context, code string, input *models.ScheduleInput) (*models.ScheduleOut, error) {
	movie, studio, showDate, err := s.resolveScheduleInput(ctx, input)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		Code:       code,
		MovieID:    movie.ID,
		MovieCode:  movie.Code,
		StudioID:   studio.ID,
		StudioCode: studio.Code,
		ShowDate:   showDate,
		ShowTime:   input.Time,
	}

	updated, err := s.schedules.Update(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	if !updated {
		return nil, apperrors.ErrScheduleNotFound
	}

	return &models.ScheduleOut{
		Code:       code,
		MovieCode:  movie.Code,
		StudioCode: studio.Code,
		Date:       showDate.Format("2006-01-02"),
		Time:       input.Time,
		MovieTitle: movie.Title,
		StudioName: studio.Name,
	}, nil
}

func (s *AdminService) DeleteSchedule(ctx context.Context, code string) error {
	deleted, err := s.schedules.Delete(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if !deleted {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// resolveScheduleInput validates the movie/studio references and parses the
// date and time fields.
func (s *AdminService) resolveScheduleInput(ctx context.Context, input *models.ScheduleInput) (*models.Movie, *models.Studio, time.Time, error) {
	movie, err := s.movies.GetByCode(ctx, input.MovieCode)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, nil, time.Time{}, apperrors.ErrMovieNotFound
	}

	studio, err := s.studios.GetByCode(ctx, input.StudioCode)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("failed to get studio: %w", err)
	}
	if studio == nil {
		return nil, nil, time.Time{}, apperrors.ErrStudioNotFound
	}

	showDate, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrInvalidInput, input.Date)
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("%w: time %q must be HH:MM", apperrors.ErrInvalidInput, input.Time)
	}

	return movie, studio, showDate, nil
}
