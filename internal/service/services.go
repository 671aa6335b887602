package service

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/validators"
)

type Services struct {
	AuthService       AuthService
	StorefrontService StorefrontService
}

func NewServices(cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(cfg, logger),
		StorefrontService: NewStorefrontService(validators.NewCollectionValidator(), logger),
	}
}
