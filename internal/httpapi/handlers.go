package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/code"
	"github.com/sam-patel-1289/crossfire-codenames/internal/protocol"
	"github.com/sam-patel-1289/crossfire-codenames/internal/registry"
	"github.com/sam-patel-1289/crossfire-codenames/internal/room"
)

type roomResponse struct {
	Code    string `json:"code"`
	JoinURL string `json:"join_url"`
}

type errorResponse struct {
	Error protocol.ErrorInfo `json:"error"`
}

// CreateRoom allocates a room and returns its code plus a join link for the
// host display to show.
func CreateRoom(reg *registry.Registry, baseURL string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan registry.CreateResult, 1)
		if !reg.Post(registry.Create{Reply: reply}) {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		res := <-reply
		if res.Err != nil {
			log.Error("room creation failed", zap.Error(res.Err))
			http.Error(w, "failed to create room", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(roomResponse{
			Code:    res.Code,
			JoinURL: joinURL(baseURL, res.Code),
		})
	}
}

// ResolveJoin answers GET /join/{code}. The path segment is taken verbatim
// (lowercase, stray URL-encoded whitespace, whatever a copy-paste produced)
// and normalized before lookup. An unknown or empty code gets a renderable
// room_not_found payload, never an open-ended wait.
func ResolveJoin(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := code.Normalize(chi.URLParam(r, "code"))
		if c == "" {
			writeNotFound(w)
			return
		}

		reply := make(chan *room.Room, 1)
		if !reg.Post(registry.Get{Code: c, Reply: reply}) {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		if <-reply == nil {
			writeNotFound(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: c})
	}
}

// JoinQR renders the join link for a room as a PNG QR code.
func JoinQR(reg *registry.Registry, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := code.Normalize(chi.URLParam(r, "code"))
		reply := make(chan *room.Room, 1)
		if c == "" || !reg.Post(registry.Get{Code: c, Reply: reply}) {
			writeNotFound(w)
			return
		}
		if <-reply == nil {
			writeNotFound(w)
			return
		}

		png, err := qrcode.Encode(joinURL(baseURL, c), qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to render code", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func joinURL(baseURL, c string) string {
	return fmt.Sprintf("%s/join/%s", baseURL, c)
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: protocol.ErrorInfo{Code: protocol.CodeRoomNotFound, Message: "no room with that code"},
	})
}
