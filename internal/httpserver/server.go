// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (request IDs, request log, panic recovery, timeouts,
//     JSON, CORS).
//   - Public endpoints: "/", "/health".
//   - Round endpoints (session required, minted on demand):
//       POST /game/new, GET /game/{id}, POST /game/{id}/guess,
//       POST /game/{id}/restart, GET /game/{id}/gallows.{txt,svg,png}.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Every caller gets an anonymous player session; rounds are only visible
//     to the session that created them.
//   - The word fetch never runs under a store lock. While it is outstanding
//     the stored round is pending and guesses are answered 409.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// handlerTimeout bounds each request, word fetch included.
const handlerTimeout = 10 * time.Second

// errForeign marks a round owned by another session; reported as not found.
var errForeign = errors.New("round owned by another player")

// Server bundles router, round store and word source.
type Server struct {
	r        *chi.Mux
	store    store.Store
	words    words.Source
	sessions *sessions
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src words.Source, cfg config.Config) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		store:    st,
		words:    src,
		sessions: newSessions(cfg),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)               // add X-Request-ID
	s.r.Use(chimw.RealIP)                  // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                 // one zerolog line per request
	s.r.Use(chimw.Recoverer)               // recover from panics
	s.r.Use(chimw.Timeout(handlerTimeout)) // bound handler time
	s.r.Use(jsonContentType)               // default JSON responses
	s.r.Use(corsFor(cfg.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/guess","POST /game/{id}/restart","GET /game/{id}/gallows.{txt,svg,png}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Round endpoints
	s.r.Route("/game", func(r chi.Router) {
		r.Use(s.sessions.middleware)
		r.Post("/new", s.handleNew)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Post("/guess", s.handleGuess)
			r.Post("/restart", s.handleRestart)
			r.Get("/gallows.txt", s.handleGallows(formatText))
			r.Get("/gallows.svg", s.handleGallows(formatSVG))
			r.Get("/gallows.png", s.handleGallows(formatPNG))
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      handlerTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ ROUNDS -------------------------------------

// handleNew stores a pending round for the caller, fetches its word and
// starts it.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	rd := game.New(uuid.NewString())
	rd.Owner = playerFrom(r.Context())
	if err := s.store.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	rd, err := s.begin(r, rd.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	log.Info().Str("gameId", rd.ID).Int("len", len([]rune(rd.Secret()))).Msg("round started")
	_ = json.NewEncoder(w).Encode(newView(rd))
}

// handleGet returns the caller's view of a round.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rd, err := s.owned(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(newView(rd))
}

// guessReq/Res payloads for POST /game/{id}/guess.
type guessReq struct {
	Letter string `json:"letter"`
}
type guessRes struct {
	Result game.Outcome `json:"result"`
	roundView
}

// handleGuess applies one letter to the round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	player := playerFrom(r.Context())
	var out game.Outcome
	rd, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Round) error {
		if g.Owner != player {
			return errForeign
		}
		var err error
		out, err = g.Guess(req.Letter)
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if st := rd.Status(); st.Terminal() && out != game.OutcomeAlreadyTried {
		log.Info().Str("gameId", rd.ID).Str("status", string(st)).Int("attempts", rd.Attempts()).Msg("round finished")
	}
	_ = json.NewEncoder(w).Encode(guessRes{Result: out, roundView: newView(rd)})
}

// handleRestart discards the round state and starts again with a new word,
// keeping the round ID.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r.Context())
	id := chi.URLParam(r, "id")
	_, err := s.store.Update(r.Context(), id, func(g *game.Round) error {
		if g.Owner != player {
			return errForeign
		}
		g.Pending()
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rd, err := s.begin(r, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	log.Info().Str("gameId", rd.ID).Msg("round restarted")
	_ = json.NewEncoder(w).Encode(newView(rd))
}

// begin fetches a word and starts the stored round with it. If an
// overlapping restart already started the round, its word and any guesses
// made on it are kept and the current round is returned.
func (s *Server) begin(r *http.Request, id string) (*game.Round, error) {
	word := s.words.Word(r.Context())
	return s.store.Update(r.Context(), id, func(g *game.Round) error {
		if g.Status() != game.StatusPending {
			log.Debug().Str("gameId", id).Msg("round already started, dropping fetched word")
			return nil
		}
		return g.Reset(word)
	})
}

// owned loads the round named in the URL if it belongs to the caller.
func (s *Server) owned(r *http.Request) (*game.Round, error) {
	rd, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if rd.Owner != playerFrom(r.Context()) {
		return nil, errForeign
	}
	return rd, nil
}

// fail maps engine and store errors to JSON error responses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, errForeign):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrInvalidLetter):
		writeError(w, http.StatusBadRequest, "invalid_letter")
	case errors.Is(err, game.ErrNotStarted):
		writeError(w, http.StatusConflict, "not_started")
	case errors.Is(err, game.ErrRoundOver):
		writeError(w, http.StatusConflict, "round_over")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("requestId", chimw.GetReqID(r.Context())).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
