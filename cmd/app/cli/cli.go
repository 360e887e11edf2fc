package cli

import (
	"context"

	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/app"
	"milimani.co.ke/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
