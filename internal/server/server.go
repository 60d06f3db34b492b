// Package server exposes the analysis engine over a WebSocket JSON API.
// Clients send evaluate/odds/advise messages and receive result or error
// messages tagged with the originating request ID.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-advisor/internal/randutil"
)

// Server is the WebSocket analysis server
type Server struct {
	settings Settings
	upgrader websocket.Upgrader
	service  *AnalysisService
	logger   *log.Logger

	seed     int64
	connSeq  atomic.Int64
	listener net.Listener
	httpSrv  *http.Server

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new analysis server. The seed determines the RNG
// stream handed to each connection; pass 0 for a time-based seed.
func NewServer(settings Settings, seed int64, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		settings: settings,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		service: NewAnalysisService(settings),
		logger:  logger.WithPrefix("server"),
		seed:    seed,
		conns:   make(map[*websocket.Conn]struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start binds the listener and serves until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.settings.Addr())
	if err != nil {
		return err
	}
	s.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpSrv = &http.Server{Handler: mux}

	s.logger.Info("Starting analysis server", "addr", ln.Addr().String())
	err = s.httpSrv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Addr returns the bound listener address, for tests that start on port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.settings.Addr()
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down and closes all connections
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if s.httpSrv != nil {
		return s.httpSrv.Close()
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	go s.serveConn(conn)
}

// serveConn handles one connection: requests are processed in order, each
// with the connection's own RNG stream derived from the server seed.
func (s *Server) serveConn(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		total := len(s.conns)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("Client disconnected", "total", total)
	}()

	seq := s.connSeq.Add(1)
	var rng = randutil.NewFromTime()
	if s.seed != 0 {
		rng = randutil.New(s.seed + seq)
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Read error", "error", err)
			}
			return
		}

		reply := s.dispatch(&msg, rng)
		reply.RequestID = msg.RequestID
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("Write error", "error", err)
			return
		}
	}
}

func (s *Server) dispatch(msg *Message, rng *rand.Rand) *Message {
	var (
		result interface{}
		err    error
	)

	switch msg.Type {
	case MessageTypeEvaluate:
		var req EvaluateData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = s.service.Evaluate(req)
		}
	case MessageTypeOdds:
		var req OddsData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = s.service.Odds(req, rng)
		}
	case MessageTypeAdvise:
		var req AdviseData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = s.service.Advise(req, rng)
		}
	default:
		return s.errorMessage("unknown_type", "unknown message type: "+string(msg.Type))
	}

	if err != nil {
		return s.errorMessage("bad_request", err.Error())
	}

	reply, merr := NewMessage(MessageTypeResult, result)
	if merr != nil {
		return s.errorMessage("internal", merr.Error())
	}
	return reply
}

func (s *Server) errorMessage(code, message string) *Message {
	reply, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message})
	if err != nil {
		// Marshalling a plain struct of strings cannot fail.
		panic(err)
	}
	return reply
}
