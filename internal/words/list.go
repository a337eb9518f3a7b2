package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmptyList is returned when a list holds no usable word.
var ErrEmptyList = errors.New("words: list is empty")

// List picks words uniformly at random from a fixed list.
type List struct {
	words []string
}

// NewList normalizes raw and keeps only usable words.
func NewList(raw []string) (*List, error) {
	l := &List{}
	for _, w := range raw {
		if n, ok := usable(strings.TrimSpace(w)); ok {
			l.words = append(l.words, n)
		}
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// DefaultList is the embedded word list.
func DefaultList() (*List, error) {
	raw, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return NewList(raw)
}

// LoadList reads one word (or phrase) per line from path.
// Blank lines and lines starting with '#' are skipped.
func LoadList(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		raw = append(raw, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return NewList(raw)
}

// Word returns a cryptographically random word from the list.
func (l *List) Word(context.Context) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// Len is the number of usable words loaded.
func (l *List) Len() int { return len(l.words) }
