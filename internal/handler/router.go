package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"biblenow/internal/pkg/auth/jwt"
	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/limiter"
	"biblenow/internal/pkg/logx"
	"biblenow/internal/pkg/resp"
)

const (
	GiftRate  = 0.5
	GiftBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and per-route middleware.
// The returned function stops the limiters' background cleanup and must be called on shutdown.
func Router(deps *AppDeps) (http.Handler, func()) {
	tokenLimiter := limiter.NewIPRateLimiter("token", rate.Limit(deps.Config.TokenRate), deps.Config.TokenBurst)
	giftLimiter := limiter.NewIPRateLimiter("gift", rate.Limit(GiftRate), GiftBurst)

	stop := func() {
		tokenLimiter.Stop()
		giftLimiter.Stop()
	}

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	corsOptions := cors.Options{
		AllowedOrigins:       corsAllowedOrigins,
		AllowedMethods:       []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:       []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:       []string{},
		AllowCredentials:     true,
		MaxAge:               300,
		OptionsSuccessStatus: http.StatusOK,
	}
	// rs/cors reads an empty origin list as "allow all"; outside development it means none.
	if len(corsAllowedOrigins) == 0 {
		corsOptions.AllowOriginFunc = func(string) bool { return false }
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		resp.RespondError(w, r, errs.NewError(errs.ErrRouteNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		resp.RespondError(w, r, errs.NewError(errs.ErrMethodNotAllowed))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logx.Debug("Health check endpoint hit")

		data := map[string]any{
			"status":   "ok",
			"service":  "BibleNOW Studio API",
			"database": deps.Social != nil,
			"storage":  deps.Storage != nil,
		}
		resp.RespondSuccess(w, r, data)
	})

	// Method policy for /token lives in the handler, so every method is routed to it.
	r.With(tokenLimiter.Middleware).HandleFunc("/token", HandleIssueToken(deps))

	r.Get("/manifest.json", HandleManifest())

	r.Get("/live/{room}", HandleLiveStream(deps))
	r.Head("/live/{room}", HandleLiveStream(deps))

	r.Route("/api", func(api chi.Router) {
		if deps.Config.SupabaseJWTSecret == "" {
			api.Use(featureNotConfigured)
		} else {
			api.Use(jwt.RequireSession(deps.Config.SupabaseJWTSecret))
		}

		api.Route("/shields", func(shields chi.Router) {
			if deps.Social == nil {
				shields.Use(featureNotConfigured)
			}
			shields.Get("/", HandleListShields(deps))
			shields.Post("/", HandleShieldUser(deps))
			shields.Delete("/{userId}", HandleUnshieldUser(deps))
		})

		api.Route("/gifts", func(gifts chi.Router) {
			if deps.Social == nil {
				gifts.Use(featureNotConfigured)
			}
			gifts.With(giftLimiter.Middleware).Post("/", HandleSendGift(deps))
		})

		api.Route("/avatars", func(avatars chi.Router) {
			if deps.Storage == nil {
				avatars.Use(featureNotConfigured)
			}
			avatars.Post("/presign", HandlePresignAvatar(deps))
		})
	})

	return r, stop
}

// featureNotConfigured answers every request with a configuration fault.
func featureNotConfigured(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp.RespondError(w, r, errs.NewError(errs.ErrFeatureNotConfigured))
	})
}
