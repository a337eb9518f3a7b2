package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
)

// ctxPlayerKey is the context key type for the caller's player ID.
type ctxPlayerKey struct{}

// playerFrom returns the player ID placed in ctx by the session middleware.
func playerFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxPlayerKey{}).(string)
	return id
}

// sessions issues and verifies anonymous player session tokens: HS256 JWTs
// whose subject is a random player ID.
type sessions struct {
	secret []byte
	ttl    time.Duration
	cookie string
	secure bool
}

func newSessions(cfg config.Config) *sessions {
	return &sessions{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.SessionDays) * 24 * time.Hour,
		cookie: cfg.CookieName,
		secure: cfg.SecureCookies,
	}
}

// sign creates a token for player with the configured expiry.
func (s *sessions) sign(player string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   player,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// verify returns the player ID of a valid token.
func (s *sessions) verify(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// middleware attaches the caller's player ID to the request context,
// minting a new session (and cookie) when none or an invalid one is sent.
func (s *sessions) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := ""
		if tok := s.bearerOrCookie(r); tok != "" {
			if id, err := s.verify(tok); err == nil {
				player = id
			} else {
				log.Debug().Err(err).Msg("discarding session token")
			}
		}
		if player == "" {
			player = uuid.NewString()
			tok, exp, err := s.sign(player)
			if err != nil {
				log.Error().Err(err).Msg("sign session")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			s.setCookie(w, tok, exp)
		}
		ctx := context.WithValue(r.Context(), ctxPlayerKey{}, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setCookie writes the session cookie with appropriate security attributes.
func (s *sessions) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or the
// session cookie.
func (s *sessions) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cookie); err == nil {
		return c.Value
	}
	return ""
}
