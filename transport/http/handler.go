package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/service"
)

const healthCheckTimeout = 2 * time.Second

type Config struct {
	Service    *service.Service
	Logger     log.Logger
	Production bool
	// AllowedOrigins lists the origins browsers may call from. Empty or "*"
	// allows any.
	AllowedOrigins []string
	// StreamsCtx ends open event streams when done. Streams are hijacked
	// connections that server shutdown does not wait for.
	StreamsCtx context.Context
	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type handler struct {
	svc        *service.Service
	logger     log.Logger
	production bool
	streamsCtx context.Context
	upgrader   websocket.Upgrader
}

// New returns the JSON API handler.
func New(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	streamsCtx := cfg.StreamsCtx
	if streamsCtx == nil {
		streamsCtx = context.Background()
	}

	origins := newAllowedOrigins(cfg.AllowedOrigins)

	h := &handler{
		svc:        cfg.Service,
		logger:     logger,
		production: cfg.Production,
		streamsCtx: streamsCtx,
		upgrader: websocket.Upgrader{
			CheckOrigin: origins.check,
		},
	}
	m := newMetrics(reg)

	r := way.NewRouter()
	handle := func(method, pattern, route string, fn http.HandlerFunc) {
		r.Handle(method, pattern, m.instrument(route, fn))
	}

	handle(http.MethodGet, "/health", "health", h.health)
	r.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	handle(http.MethodPost, "/items/:item_id/messages", "send_first_message", h.sendFirstMessage)

	handle(http.MethodGet, "/chats", "chats", h.chats)
	handle(http.MethodGet, "/chats/:chat_id", "chat", h.chat)
	handle(http.MethodGet, "/chats/:chat_id/messages", "messages", h.messages)
	handle(http.MethodPost, "/chats/:chat_id/messages", "send_message", h.sendMessage)
	r.HandleFunc(http.MethodGet, "/chats/:chat_id/events", h.chatEvents)
	handle(http.MethodPatch, "/chats/:chat_id/item-status", "set_item_status", h.setItemStatus)

	handle(http.MethodPost, "/chats/:chat_id/appointments", "propose_appointment", h.proposeAppointment)
	handle(http.MethodGet, "/chats/:chat_id/appointments/:appointment_id", "appointment", h.appointment)
	handle(http.MethodPatch, "/chats/:chat_id/appointments/:appointment_id/confirm", "confirm_appointment", h.confirmAppointment)

	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.respondErr(w, errNoRoute, "")
	})

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
	}).Handler(h.withAuth(r))
}

// withAuth resolves a bearer token into the request context.
// Requests without one pass through anonymous. Browsers cannot set headers on
// websocket handshakes so those may carry the token as a query param.
func (h *handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok && websocket.IsWebSocketUpgrade(r) {
			token = r.URL.Query().Get("token")
			ok = token != ""
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		memberID, err := h.svc.AuthMemberIDFromToken(token)
		if err != nil {
			h.respondErr(w, err, "")
			return
		}

		ctx := auth.ContextWithMemberID(r.Context(), memberID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newAllowedOrigins(origins []string) allowedOrigins {
	var out allowedOrigins
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}

	if len(out) == 0 {
		return allowedOrigins{"*"}
	}

	return out
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		h.respondErr(w, err, "데이터베이스에 연결할 수 없습니다")
		return
	}

	h.respond(w, map[string]string{"status": "ok"}, "", http.StatusOK)
}

type allowedOrigins []string

func (origins allowedOrigins) check(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, o := range origins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}

	return false
}
