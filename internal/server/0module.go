package server

import (
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/server/httpserver"
	"milimani.co.ke/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server", fx.Provide(
		httpserver.Create,
		httpserver.CreateInquiryLimiter,
		svr.CreateEndpointGroups,
	))
}
