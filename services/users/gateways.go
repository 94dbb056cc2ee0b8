package users

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/spendly/services/users UserGW

// UserGW delivers messages to account holders
type UserGW interface {
	SendOTPEmail(ctx context.Context, email, name, code string, expiry time.Duration) error
}
