package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"bioskop/internal/config"
	"bioskop/internal/database"
	"bioskop/internal/logger"
	"bioskop/internal/models"
	"bioskop/internal/pricing"
	"bioskop/internal/repository"
	"bioskop/internal/service"
)

var (
	clearExisting = flag.Bool("clear", false, "Truncate all tables before seeding")
	orderCount    = flag.Int("orders", 0, "Number of random orders to place through the checkout path")
)

// Demo data set: December 2024, five movies, five studios, one hundred
// members, three showtimes a day in every studio.

var seedMovies = []models.MovieInput{
	{Code: "MOV001", Title: "Avengers: Endgame", Genre: "Action", Duration: 200, Director: "Russo Brothers", Rating: "PG-13"},
	{Code: "MOV002", Title: "The Conjuring", Genre: "Horror", Duration: 120, Director: "James Wan", Rating: "R"},
	{Code: "MOV003", Title: "Frozen", Genre: "Animation", Duration: 130, Director: "Chris Buck", Rating: "PG"},
	{Code: "MOV004", Title: "Komang", Genre: "Romance", Duration: 130, Director: "Naya Anindita", Rating: "PG-13"},
	{Code: "MOV005", Title: "Detective Conan", Genre: "Mystery", Duration: 125, Director: "Yuzuru Tachikawa", Rating: "PG"},
}

var seedStudios = []models.StudioInput{
	{Code: "STD001", Name: "Studio 1", Rows: 8, Cols: 10},
	{Code: "STD002", Name: "Studio 2", Rows: 10, Cols: 11},
	{Code: "STD003", Name: "Studio 3", Rows: 9, Cols: 8},
	{Code: "STD004", Name: "Studio 4", Rows: 13, Cols: 6},
	{Code: "STD005", Name: "Studio 5", Rows: 12, Cols: 9},
}

var showTimes = []string{"11:00", "16:00", "20:30"}

var seedPaymentMethods = []string{"QRIS", "Debit", "Gopay", "ShopeePay", "CASH"}

type seeder struct {
	db    *database.DB
	repos *repository.Repositories
	rng   *rand.Rand
}

func main() {
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting seeder...")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	s := &seeder{
		db:    db,
		repos: repository.NewRepositories(db),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	ctx := context.Background()

	if *clearExisting {
		if err := s.clear(ctx); err != nil {
			logger.Fatal("Failed to clear tables", "error", err)
		}
	}

	if err := s.seedReferenceData(ctx); err != nil {
		logger.Fatal("Failed to seed reference data", "error", err)
	}

	if *orderCount > 0 {
		if err := s.placeRandomOrders(ctx, *orderCount); err != nil {
			logger.Fatal("Failed to place orders", "error", err)
		}
	}

	slog.Info("Seeding completed successfully!")
}

func (s *seeder) clear(ctx context.Context) error {
	slog.Info("Clearing existing data")

	_, err := s.db.ExecContext(ctx, `
		TRUNCATE order_seats, orders, carts, schedules, studio_seats,
		         studios, memberships, movies RESTART IDENTITY CASCADE`)
	return err
}

func (s *seeder) seedReferenceData(ctx context.Context) error {
	movies := make([]*models.Movie, 0, len(seedMovies))
	for _, input := range seedMovies {
		movie := &models.Movie{
			Code:     input.Code,
			Title:    input.Title,
			Genre:    input.Genre,
			Duration: input.Duration,
			Director: input.Director,
			Rating:   input.Rating,
			Price:    pricing.TicketPrice(input.Duration),
		}
		if err := s.repos.Movies.Create(ctx, movie); err != nil {
			return fmt.Errorf("create movie %s: %w", movie.Code, err)
		}
		movies = append(movies, movie)
	}
	slog.Info("Seeded movies", "count", len(movies))

	studios := make([]*models.Studio, 0, len(seedStudios))
	for _, input := range seedStudios {
		studio := &models.Studio{
			Code: input.Code,
			Name: input.Name,
			Rows: input.Rows,
			Cols: input.Cols,
		}
		if err := s.repos.Studios.Create(ctx, studio); err != nil {
			return fmt.Errorf("create studio %s: %w", studio.Code, err)
		}
		studios = append(studios, studio)
	}
	slog.Info("Seeded studios", "count", len(studios))

	for i := 1; i <= 100; i++ {
		member := &models.Membership{
			Code: fmt.Sprintf("MEM%03d", i),
			Name: fmt.Sprintf("Member %03d", i),
		}
		if err := s.repos.Members.Create(ctx, member); err != nil {
			return fmt.Errorf("create member %s: %w", member.Code, err)
		}
	}
	slog.Info("Seeded members", "count", 100)

	// One screening per studio per showtime per day throughout December 2024.
	scheduleNum := 0
	for day := 1; day <= 31; day++ {
		showDate := time.Date(2024, 12, day, 0, 0, 0, 0, time.UTC)
		for studioIdx, studio := range studios {
			for timeIdx, showTime := range showTimes {
				movie := movies[(day+studioIdx+timeIdx)%len(movies)]
				scheduleNum++

				schedule := &models.Schedule{
					Code:       fmt.Sprintf("SCH%03d", scheduleNum),
					MovieID:    movie.ID,
					MovieCode:  movie.Code,
					StudioID:   studio.ID,
					StudioCode: studio.Code,
					ShowDate:   showDate,
					ShowTime:   showTime,
				}
				if err := s.repos.Schedules.Create(ctx, schedule); err != nil {
					return fmt.Errorf("create schedule %s: %w", schedule.Code, err)
				}
			}
		}
	}
	slog.Info("Seeded schedules", "count", scheduleNum)

	return nil
}

// placeRandomOrders drives the real cart and checkout services so the
// seeded orders go through the same pricing, promo and ledger path as live
// traffic. Seat conflicts with earlier random orders are expected and
// skipped.
func (s *seeder) placeRandomOrders(ctx context.Context, count int) error {
	carts := service.NewCartService(s.repos.Schedules, s.repos.Members, s.repos.Carts, s.repos.Orders)
	checkout := service.NewCheckoutService(s.repos.Schedules, s.repos.Members, s.repos.Carts, s.repos.Orders, nil)

	schedules, err := s.repos.Schedules.List(ctx)
	if err != nil {
		return fmt.Errorf("list schedules: %w", err)
	}
	if len(schedules) == 0 {
		return fmt.Errorf("no schedules to order against")
	}

	placed := 0
	for i := 0; i < count; i++ {
		memberCode := fmt.Sprintf("MEM%03d", s.rng.Intn(100)+1)
		schedule := schedules[s.rng.Intn(len(schedules))]
		seats := s.rng.Intn(6) + 1

		carted := 0
		for j := 0; j < seats; j++ {
			row := string(rune('A' + s.rng.Intn(schedule.StudioRows)))
			col := s.rng.Intn(schedule.StudioCols) + 1

			resp, err := carts.Add(ctx, &models.AddToCartRequest{
				MembershipCode: memberCode,
				ScheduleID:     schedule.ID,
				Row:            row,
				Col:            col,
			})
			if err != nil {
				// Most likely the seat is already sold; pick fewer seats.
				continue
			}
			if resp.Status == models.CartStatusAdded {
				carted++
			}
		}
		if carted == 0 {
			continue
		}

		method := seedPaymentMethods[s.rng.Intn(len(seedPaymentMethods))]
		req := &models.CheckoutRequest{
			MembershipCode: memberCode,
			PaymentMethod:  method,
		}
		if method == "CASH" {
			// Always enough to cover six full-price seats.
			cash := int64(350000)
			req.CashAmount = &cash
		}

		if _, err := checkout.Checkout(ctx, req); err != nil {
			slog.Warn("Checkout skipped", "member", memberCode, "error", err)
			s.dropCart(ctx, memberCode)
			continue
		}
		placed++
	}

	slog.Info("Placed random orders", "requested", count, "placed", placed)
	return nil
}

// dropCart empties a member's cart after a failed random checkout so the
// member is usable again on a later draw.
func (s *seeder) dropCart(ctx context.Context, memberCode string) {
	member, err := s.repos.Members.GetByCode(ctx, memberCode)
	if err != nil || member == nil {
		return
	}

	items, err := s.repos.Carts.ListByMember(ctx, member.ID)
	if err != nil {
		return
	}
	for _, item := range items {
		_, _ = s.repos.Carts.Delete(ctx, item.ID)
	}
}
