package components

import (
	"gym-reservation-engine/internal/handler"
	"gym-reservation-engine/internal/handler/api"
	"gym-reservation-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAdminHandler,
		api.NewMemberHandler,
		api.NewAgentHandler,
		middleware.NewAuthMiddleware,
		func(admin *api.AdminHandler, member *api.MemberHandler, agent *api.AgentHandler) handler.Handlers {
			return handler.Handlers{Admin: admin, Member: member, Agent: agent}
		},
	),
	fx.Invoke(handler.NewRouter),
)
