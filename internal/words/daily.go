package words

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Daily gives every caller the same word on a given UTC day, chosen from a
// list by HMAC(salt, YYYY-MM-DD).
type Daily struct {
	list *List
	salt string
	now  func() time.Time
}

// NewDaily picks daily words from list.
func NewDaily(list *List, salt string) *Daily {
	return &Daily{list: list, salt: salt, now: time.Now}
}

// Word returns today's word.
func (d *Daily) Word(context.Context) string {
	return d.list.words[WordIndex(d.now(), d.salt, d.list.Len())]
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
