package api

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	// RegisterAdmin runs first so its /properties/admin alias precedes the
	// public /properties/:id matcher in fiber's route order.
	return fx.Module("controllers.api", fx.Invoke(
		RegisterAdmin,
		RegisterProperty,
		RegisterDirector,
		RegisterInquiry,
		RegisterAuth,
	))
}
