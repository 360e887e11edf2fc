package seed

import (
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "milimani.co.ke/backend/cmd/app/cli"
	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/repo"
	"milimani.co.ke/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	Conf           *appconfig.Config
	DB             *bun.DB
	AccountRepo    *repo.Account
	AccountService *service.Account
	DirectorRepo   *repo.Director
	PropertyRepo   *repo.Property
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "seed",
		Description: "create the schema if needed and provision the initial admin account, directors and starter listings. Safe to run repeatedly.",
		Action: func(ctx *cli.Context) error {
			var deps CommandDeps
			cliapp.Start(fx.Populate(&deps))
			return run(ctx.Context, deps)
		},
	}
}
