package handler

import (
	"net/http"

	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/session/new",
			Handler: NewSessionHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/session/reset",
			Handler: ResetSessionHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/session/move",
			Handler: SubmitMoveHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/session/state",
			Handler: QueryStateHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/session/legal",
			Handler: LegalMovesHandler(serverCtx),
		},
	})
}
