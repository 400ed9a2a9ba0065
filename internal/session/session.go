// Package session is the explicit session context for the console. It
// replaces ambient browser storage: the bearer token and a user snapshot
// live in the "token" and "user" cookies, are decoded once per request,
// and are torn down on logout.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

const (
	// TokenCookie holds the raw bearer token.
	TokenCookie = "token"
	// UserCookie holds the JSON user snapshot from login.
	UserCookie = "user"
)

// Options controls how the session cookies are written.
type Options struct {
	MaxAge   int
	Path     string
	Secure   bool
	HTTPOnly bool
}

// DefaultOptions match a browser session: cookies for 12 hours, HTTP-only.
func DefaultOptions() Options {
	return Options{
		MaxAge:   12 * 60 * 60,
		Path:     "/",
		Secure:   false,
		HTTPOnly: true,
	}
}

// Session is the locally cached session state. It is written once at login
// and only read afterwards; the backend remains the authority on whether
// the token is still acceptable.
type Session struct {
	Token    string      `json:"-"`
	UserID   int64       `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// New builds a session from the backend's login/register reply.
func New(auth *models.AuthSession) *Session {
	return &Session{
		Token:    auth.Token,
		UserID:   auth.UserID,
		Username: auth.Username,
		Email:    auth.Email,
		Role:     auth.Role,
	}
}

// IsAdmin reports whether the cached role is ADMIN. This is a rendering
// hint, not a security boundary.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// Write stores the session in the response cookies.
func (s *Session) Write(c *gin.Context, opts Options) error {
	snapshot, err := json.Marshal(s)
	if err != nil {
		return err
	}
	c.SetCookie(TokenCookie, s.Token, opts.MaxAge, opts.Path, "", opts.Secure, opts.HTTPOnly)
	c.SetCookie(UserCookie, string(snapshot), opts.MaxAge, opts.Path, "", opts.Secure, opts.HTTPOnly)
	return nil
}

// Clear removes both session cookies.
func Clear(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(UserCookie, "", -1, "/", "", false, true)
}

// FromRequest decodes the session from the request cookies. A missing
// token, an unreadable snapshot, or a token past its exp claim all count
// as no session.
func FromRequest(r *http.Request) (*Session, bool) {
	token, err := cookieValue(r, TokenCookie)
	if err != nil || token == "" {
		return nil, false
	}
	if expired(token) {
		return nil, false
	}

	snapshot, err := cookieValue(r, UserCookie)
	if err != nil || snapshot == "" {
		return nil, false
	}

	var s Session
	if err := json.Unmarshal([]byte(snapshot), &s); err != nil {
		return nil, false
	}
	s.Token = token
	return &s, true
}

// cookieValue reads and unescapes a cookie the way gin's SetCookie wrote it.
func cookieValue(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	return url.QueryUnescape(cookie.Value)
}

// expired peeks at the token's exp claim without verifying the signature.
// Verification is the backend's job on every call; this only keeps the
// console from rendering pages for a session the backend will reject.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through; the backend decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
