package httpserver

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/gallows"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/letters"
)

// keyView is one on-screen keyboard key.
type keyView struct {
	Key  string `json:"key"`
	Used bool   `json:"used"`
}

// roundView is everything a front end needs to render a round.
type roundView struct {
	GameID      string      `json:"gameId"`
	Status      game.Status `json:"status"`
	Mask        string      `json:"mask"`
	Attempts    int         `json:"attempts"`
	MaxAttempts int         `json:"maxAttempts"`
	Stage       int         `json:"stage"`    // gallows drawing stage 0..6
	Guessed     []string    `json:"guessed"`  // sorted
	Locked      bool        `json:"locked"`   // no input accepted
	Keyboard    [][]keyView `json:"keyboard"` // fixed layout
	Message     string      `json:"message,omitempty"`
	Answer      string      `json:"answer,omitempty"` // only once lost
}

func newView(rd *game.Round) roundView {
	st := rd.Status()
	v := roundView{
		GameID:      rd.ID,
		Status:      st,
		Mask:        rd.Mask(),
		Attempts:    rd.Attempts(),
		MaxAttempts: game.MaxAttempts,
		Stage:       gallows.Stage(rd.Attempts()),
		Guessed:     []string{},
		Locked:      st != game.StatusPlaying,
		Message:     rd.Message(),
	}
	if st == game.StatusPending {
		// nothing drawn until a word arrives
		v.Attempts = game.MaxAttempts
		v.Stage = 0
	}
	if st == game.StatusLost {
		v.Answer = rd.Secret()
	}
	for _, l := range rd.Guessed() {
		v.Guessed = append(v.Guessed, string(l))
	}
	for _, row := range letters.Keyboard {
		keys := make([]keyView, 0, len(row))
		for _, k := range row {
			keys = append(keys, keyView{Key: string(k), Used: rd.HasGuessed(letters.KeyLetter(k))})
		}
		v.Keyboard = append(v.Keyboard, keys)
	}
	return v
}

type drawingFormat int

const (
	formatText drawingFormat = iota
	formatSVG
	formatPNG
)

// handleGallows renders the drawing for the round's remaining attempts.
func (s *Server) handleGallows(f drawingFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd, err := s.owned(r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		attempts := rd.Attempts()
		if rd.Status() == game.StatusPending {
			attempts = game.MaxAttempts
		}
		switch f {
		case formatText:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(gallows.ASCII(attempts)))
		case formatSVG:
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write(gallows.SVG(attempts))
		case formatPNG:
			var buf bytes.Buffer
			if err := gallows.PNG(&buf, attempts); err != nil {
				log.Error().Err(err).Str("gameId", rd.ID).Msg("render gallows")
				writeError(w, http.StatusInternalServerError, "render_failed")
				return
			}
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(buf.Bytes())
		}
	}
}
