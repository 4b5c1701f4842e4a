package handlers

import "github.com/Fecu3799/project-arq-web/services"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration. AuthSvc is also carried so routes can build the auth
// middleware from the same service that issued the tokens.
type HandlerBundle struct {
	AuthSvc services.AuthService

	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Availability *AvailabilityHandler
	Appointments *AppointmentHandler
}
