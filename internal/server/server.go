// Package server implements the calculator's JSON HTTP API.
package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calculator"
)

// Server is the HTTP API server. It holds no calculator state; every request
// carries its own.
type Server struct {
	app *fiber.App
	log zerolog.Logger
}

// New creates a new API server.
func New(log zerolog.Logger) *Server {
	srv := &Server{log: log}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		BodyLimit:             64 << 10,
	})
	app.Use(srv.logRequests)

	app.Get("/healthz", srv.healthz)
	app.Post("/api/v1/eval", srv.eval)
	app.Post("/api/v1/keys", srv.keys)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("request")
	return err
}

func (s *Server) healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type evalRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) eval(c *fiber.Ctx) error {
	var req evalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, fmt.Sprintf("invalid request body: %v", err))
	}
	r, err := calculator.Eval(req.Expression)
	if err != nil {
		kind := calculator.KindOf(err)
		s.log.Debug().Str("expression", req.Expression).Stringer("kind", kind).Err(err).Msg("evaluation failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    fiber.StatusUnprocessableEntity,
				"kind":    kind.String(),
				"message": err.Error(),
				"status":  "INVALID_ARGUMENT",
			},
		})
	}
	return c.JSON(calculator.Entry{Expr: req.Expression, Result: calculator.Format(r)})
}

type keysRequest struct {
	State calculator.State `json:"state"`
	// Keys are individual keys or aliases.
	Keys []string `json:"keys"`
	// Sequence is a key sequence in the form accepted by ParseKeys.
	Sequence string `json:"sequence"`
}

type stateResponse struct {
	calculator.State
	ErrorKind string `json:"errorKind,omitempty"`
}

func (s *Server) keys(c *fiber.Ctx) error {
	var req keysRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, fmt.Sprintf("invalid request body: %v", err))
	}
	keys, err := parseKeys(req.Keys, req.Sequence)
	if err != nil {
		var kerr *calculator.KeyError
		if errors.As(err, &kerr) {
			return badRequest(c, err.Error())
		}
		return err
	}
	st, err := normalize(req.State)
	if err != nil {
		return badRequest(c, err.Error())
	}
	st = st.ApplyAll(keys...)
	resp := stateResponse{State: st}
	if st.Err != nil {
		resp.ErrorKind = calculator.KindOf(st.Err).String()
	}
	return c.JSON(resp)
}

func parseKeys(names []string, seq string) ([]calculator.Key, error) {
	keys := make([]calculator.Key, 0, len(names))
	for _, n := range names {
		k, err := calculator.ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	more, err := calculator.ParseKeys(seq)
	if err != nil {
		return nil, err
	}
	return append(keys, more...), nil
}

// normalize makes a state decoded from a request consistent: the display
// follows the expression unless it shows an error, and the history is capped.
// The expression must be one the calculator could have built by key presses.
func normalize(st calculator.State) (calculator.State, error) {
	rebuilt := calculator.NewState()
	for _, r := range st.Expr {
		rebuilt = rebuilt.Push(calculator.Key(r))
	}
	if rebuilt.Expr != st.Expr {
		return st, fmt.Errorf("invalid expression %q in state", st.Expr)
	}
	if st.Display != calculator.ErrorDisplay {
		st.Display = rebuilt.Display
	}
	if len(st.History) > calculator.HistorySize {
		st.History = st.History[:calculator.HistorySize]
	}
	if st.History == nil {
		st.History = calculator.History{}
	}
	return st, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    fiber.StatusBadRequest,
			"message": msg,
			"status":  "INVALID_ARGUMENT",
		},
	})
}
