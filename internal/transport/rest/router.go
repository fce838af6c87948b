package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sanskrit-verbgame/internal/config"
	"github.com/heartmarshall/sanskrit-verbgame/internal/transport/middleware"
)

// RouterDeps are the handlers and settings the router mounts.
type RouterDeps struct {
	Log     *slog.Logger
	Health  *HealthHandler
	Quiz    *QuizHandler
	CORS    config.CORSConfig
	Limiter *middleware.RateLimiter // nil disables rate limiting

	// RateLimit is requests per minute per client on /api routes.
	RateLimit int
}

// NewRouter mounts all routes and wraps them in the middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	var game http.Handler = http.HandlerFunc(deps.Quiz.GetGame)
	if deps.Limiter != nil {
		game = deps.Limiter.Limit(deps.RateLimit)(game)
	}
	mux.Handle("GET /api/get-game", game)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	)(mux)
}
