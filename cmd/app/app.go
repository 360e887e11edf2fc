package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"milimani.co.ke/backend/cmd/app/cli/seed"
	"milimani.co.ke/backend/cmd/app/server"
	"milimani.co.ke/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "milimani-backend",
		Description: "The Milimani Estates backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS for inquiry notification events and Redis for rate limiting.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			seed.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
