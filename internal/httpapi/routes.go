package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/registry"
	"github.com/sam-patel-1289/crossfire-codenames/internal/words"
	"github.com/sam-patel-1289/crossfire-codenames/internal/ws"
)

func SetupRoutes(reg *registry.Registry, baseURL string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/rooms", CreateRoom(reg, baseURL, log))
	r.Get("/rooms/{code}/qr", JoinQR(reg, baseURL))
	r.Get("/join/{code}", ResolveJoin(reg))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(reg, words.NewBoard, log))
	return r
}
