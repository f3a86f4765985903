package api

import (
	"context"
	"net/netip"

	"github.com/vytor/eligesaludable/internal/services"
)

// Pinger reports storage reachability for the readiness probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	PlayerService  services.PlayerService
	LevelService   services.LevelService
	SessionService services.SessionService
	RankingService services.RankingService
	DB             Pinger
	AllowedOrigins []string
	TrustedProxies []netip.Prefix
	RateLimitRPS   float64
	RateLimitBurst int
}
