package bootstrap

import (
	"time"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	accessDuration, err := time.ParseDuration(cfg.JWT.AccessDuration)
	if err != nil {
		panic("invalid JWT_ACCESS_DURATION: " + err.Error())
	}

	refreshDuration, err := time.ParseDuration(cfg.JWT.RefreshDuration)
	if err != nil {
		panic("invalid JWT_REFRESH_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, accessDuration, refreshDuration)
}
