package httpserver

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/pkg/bininfo"
	"milimani.co.ke/backend/internal/pkg/fiberstore"
	"milimani.co.ke/backend/internal/pkg/middlewares"
	"milimani.co.ke/backend/internal/server/svr"
)

func Create(conf *appconfig.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Milimani Estates Backend",
		ServerHeader: "Milimani/" + bininfo.Version,

		// NOTICE: This will also affect WebSocket. Be aware if this fiber instance service is re-used
		//         for long connection services.
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,

		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,

		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		ErrorHandler: ErrorHandler,
		// Immutable is required as we want to re-use values across requests in caches.
		Immutable: true,
	})

	app.Use(favicon.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     conf.CORSAllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Content-Type, X-Requested-With",
		ExposeHeaders:    "X-Milimani-Request-ID",
	}))
	middlewares.Logger(app)
	app.Use(middlewares.RequestID())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("panic", e).
				Msg("panic in handler")
		},
	}))

	if conf.DevMode {
		app.Use(pprof.New())
	}

	return app
}

// CreateInquiryLimiter builds the per-IP limiter applied to public
// submission endpoints, backed by Redis so the count survives restarts
// and is shared across replicas.
func CreateInquiryLimiter(conf *appconfig.Config, store *fiberstore.Redis) svr.InquiryLimiter {
	return svr.InquiryLimiter(limiter.New(limiter.Config{
		Max:        conf.InquiryRateLimit,
		Expiration: conf.InquiryRateWindow,
		Storage:    store,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "ratelimit:inquiry:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, try again later")
		},
	}))
}
