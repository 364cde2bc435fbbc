package bootstrap

import (
	"time"

	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewOwnerJWTService,
		NewCustomerJWTService,
	),
)

func NewOwnerJWTService(cfg config.Config) jwt.OwnerService {
	duration, err := time.ParseDuration(cfg.JWT.OwnerTokenDuration)
	if err != nil {
		panic("invalid JWT_OWNER_TOKEN_DURATION: " + err.Error())
	}
	return jwt.NewOwnerService(cfg.JWT.Secret, duration)
}

func NewCustomerJWTService(cfg config.Config) jwt.CustomerService {
	duration, err := time.ParseDuration(cfg.JWT.CustomerTokenDuration)
	if err != nil {
		panic("invalid JWT_CUSTOMER_TOKEN_DURATION: " + err.Error())
	}
	return jwt.NewCustomerService(cfg.JWT.Secret, duration)
}
