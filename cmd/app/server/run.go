package server

import (
	"context"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/app"
	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/app/appcontext"
	"milimani.co.ke/backend/internal/pkg/sessionstore"
)

func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
}

func run(fiberApp *fiber.App, conf *appconfig.Config, sessions *sessionstore.Bun, lc fx.Lifecycle) {
	gcDone := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listen").
				Str("address", conf.ServiceAddress).
				Msg("server is listening")

			go func() {
				if err := fiberApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			// expired session rows have no reader, but reaping them keeps
			// the table from growing without bound
			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-gcDone:
						return
					case <-ticker.C:
						if err := sessions.GC(context.Background()); err != nil {
							log.Warn().Err(err).Msg("failed to reap expired sessions")
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(gcDone)
			return fiberApp.ShutdownWithTimeout(conf.HTTPServerShutdownTimeout)
		},
	})
}
