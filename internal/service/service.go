package service

import (
	"bioskop/internal/messaging"
	"bioskop/internal/repository"
)

type Services struct {
	Carts    *CartService
	Checkout *CheckoutService
	Catalog  *CatalogService
	Admin    *AdminService
	Reports  *ReportingService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, catalogRefDate string) *Services {
	return &Services{
		Carts:    NewCartService(repos.Schedules, repos.Members, repos.Carts, repos.Orders),
		Checkout: NewCheckoutService(repos.Schedules, repos.Members, repos.Carts, repos.Orders, natsClient),
		Catalog:  NewCatalogService(repos.Movies, repos.Schedules, repos.Carts, repos.Orders, catalogRefDate),
		Admin:    NewAdminService(repos.Movies, repos.Studios, repos.Members, repos.Schedules),
		Reports:  NewReportingService(repos.Reports),
	}
}
