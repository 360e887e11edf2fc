package controller

import (
	"go.uber.org/fx"

	controllerapi "milimani.co.ke/backend/internal/controller/api"
	controllermeta "milimani.co.ke/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerapi.Module(),
		controllermeta.Module(),
	)
}
