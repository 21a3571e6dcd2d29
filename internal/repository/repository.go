package repository

import (
	"bioskop/internal/database"
)

type Repositories struct {
	Movies    *MovieRepository
	Studios   *StudioRepository
	Members   *MemberRepository
	Schedules *ScheduleRepository
	Carts     *CartRepository
	Orders    *OrderRepository
	Reports   *ReportRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Movies:    NewMovieRepository(db),
		Studios:   NewStudioRepository(db),
		Members:   NewMemberRepository(db),
		Schedules: NewScheduleRepository(db),
		Carts:     NewCartRepository(db),
		Orders:    NewOrderRepository(db),
		Reports:   NewReportRepository(db),
	}
}
