// internal/words/words.go
//
// Provides secret words for new rounds.
//
// Responsibilities:
//   - Remote: fetch one random word from an HTTP endpoint, falling back to
//     Fallback on any failure (transport, status, JSON, empty or unusable token).
//   - List:   pick a random word from a list file or the embedded default list.
//   - Daily:  the same list, but one deterministic word per UTC day.
//   - New:    choose the source from configuration.
//
// Every word returned is normalized with letters.Normalize (uppercase, no
// diacritics) and satisfies letters.IsWord.
//
// Environment (via config.Config):
//   WORD_SOURCE=remote|list|daily
//   WORD_URL=https://random-word-api.herokuapp.com/word?lang=es
//   WORD_TIMEOUT=5s
//   WORDS_FILE=/path/to/words.txt
//   DAILY_SALT=local_dev_salt

package words

import (
	"context"
	"fmt"
	"net/http"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/letters"
)

// Fallback is the word used whenever the remote source is unavailable.
const Fallback = "PROGRAMACION"

// Source supplies one normalized secret word per call. Word never fails.
type Source interface {
	Word(ctx context.Context) string
}

// New builds the Source selected by cfg.WordSource.
func New(cfg config.Config) (Source, error) {
	switch cfg.WordSource {
	case config.SourceRemote:
		return NewRemote(cfg.WordURL, &http.Client{Timeout: cfg.WordTimeout}), nil
	case config.SourceList, config.SourceDaily:
		var (
			l   *List
			err error
		)
		if cfg.WordsFile != "" {
			l, err = LoadList(cfg.WordsFile)
		} else {
			l, err = DefaultList()
		}
		if err != nil {
			return nil, err
		}
		if cfg.WordSource == config.SourceDaily {
			return NewDaily(l, cfg.DailySalt), nil
		}
		return l, nil
	}
	return nil, fmt.Errorf("words: unknown source %q", cfg.WordSource)
}

// usable normalizes w and reports whether it can be a secret word.
func usable(w string) (string, bool) {
	n := letters.Normalize(w)
	return n, letters.IsWord(n)
}
