package wsserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vedang-P/Janus-chess-engine/engine"
	"github.com/Vedang-P/Janus-chess-engine/internal/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var (
	searchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "janus_searches_total",
		Help: "Number of completed searches served over the WebSocket API.",
	})
	nodesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "janus_nodes_searched_total",
		Help: "Total nodes visited across all completed searches.",
	})
	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "janus_search_duration_seconds",
		Help:    "Wall-clock duration of completed searches.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(searchesTotal, nodesTotal, searchDuration)
}

// Server hosts the /ws/search streaming endpoint and a /metrics
// endpoint, both mounted on a chi router.
type Server struct {
	logger *zap.Logger
	cfg    config.Config
	router *chi.Mux
}

// New builds a Server ready to ListenAndServe.
func New(logger *zap.Logger, cfg config.Config) *Server {
	s := &Server{logger: logger, cfg: cfg, router: chi.NewRouter()}
	s.router.Get("/ws/search", s.handleSearch)
	s.router.Handle("/metrics", promhttp.Handler())
	return s
}

// ListenAndServe blocks serving on cfg.ListenAddr.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", zap.String("addr", s.cfg.ListenAddr))
	return http.ListenAndServe(s.cfg.ListenAddr, s.router)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var req searchRequest
	if err := conn.ReadJSON(&req); err != nil {
		logger.Warn("invalid request", zap.Error(err))
		conn.WriteJSON(errorEvent{Type: "error", Message: "invalid request: " + err.Error()})
		return
	}

	fen := req.FEN
	if fen == "" || fen == "startpos" {
		fen = engine.StartFEN
	}
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		conn.WriteJSON(errorEvent{Type: "error", Message: "invalid fen: " + err.Error()})
		return
	}

	maxDepth := s.cfg.MaxDepth
	if req.MaxDepth != 0 {
		maxDepth = req.MaxDepth
	}
	if maxDepth < 1 {
		conn.WriteJSON(errorEvent{Type: "error", Message: fmt.Sprintf("%s: got %d", engine.ErrInvalidMaxDepth, maxDepth)})
		return
	}
	timeLimit := s.cfg.TimeLimit()
	if req.TimeLimitMS > 0 {
		timeLimit = time.Duration(req.TimeLimitMS) * time.Millisecond
	}
	snapshotInterval := s.cfg.SnapshotInterval()
	if req.SnapshotIntervalMS > 0 {
		snapshotInterval = time.Duration(req.SnapshotIntervalMS) * time.Millisecond
	}

	// events bridges the search goroutine (which owns *engine.Position
	// and must not be touched from another goroutine) to the
	// connection-writing goroutine, mirroring the reference
	// implementation's asyncio.Queue handoff.
	events := make(chan any, 16)

	var group errgroup.Group
	group.Go(func() error {
		defer close(events)
		opts := engine.Options{
			MaxDepth:         maxDepth,
			TimeLimit:        timeLimit,
			SnapshotInterval: snapshotInterval,
			OnSnapshot: func(snap engine.Snapshot) {
				events <- toSnapshotEvent(snap)
			},
		}
		start := time.Now()
		result, err := engine.NewSearch(pos).Run(opts)
		if err != nil {
			events <- errorEvent{Type: "error", Message: err.Error()}
			return nil
		}
		searchesTotal.Inc()
		nodesTotal.Add(float64(result.Nodes))
		searchDuration.Observe(time.Since(start).Seconds())
		events <- toCompleteEvent(result)
		return nil
	})

	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			logger.Error("marshal event", zap.Error(err))
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Warn("write event", zap.Error(err))
			break
		}
	}
	if err := group.Wait(); err != nil {
		logger.Error("search failed", zap.Error(err))
	}
}
