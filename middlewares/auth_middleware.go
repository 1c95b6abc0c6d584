package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "session"

	// remember-me sessions survive browser restarts
	RememberTTL = 30 * 24 * time.Hour
	SessionTTL  = 12 * time.Hour

	ctxUsername = "username"
	ctxRemember = "remember"
)

// Claims carried in the session token.
type Claims struct {
	Username string `json:"username"`
	Remember bool   `json:"remember"`
	jwt.RegisteredClaims
}

// SignSession returns an HS256 token for username and how long it is valid.
func SignSession(secret, username string, remember bool) (string, time.Duration, error) {
	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}
	now := time.Now()
	claims := Claims{
		Username: username,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return tok, ttl, err
}

// SetSessionCookie stores the token in an HTTP-only cookie. Without remember
// the cookie has no expiry and is dropped when the browser closes.
func SetSessionCookie(c echo.Context, token string, remember bool, ttl time.Duration) {
	ck := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		ck.Expires = time.Now().Add(ttl)
		ck.MaxAge = int(ttl.Seconds())
	}
	c.SetCookie(ck)
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// token from the session cookie, falling back to an Authorization header
func extractToken(c echo.Context) (string, error) {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value, nil
	}
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "NOT_LOGGED_IN"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_AUTH_HEADER"})
	}
	return parts[1], nil
}

// ParseSession validates a session token and returns its claims.
func ParseSession(secret, tok string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid session and puts the
// session's username and remember flag on the context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractToken(c)
			if err != nil {
				return err
			}
			claims, err := ParseSession(secret, tok)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_SESSION"})
			}
			c.Set(ctxUsername, claims.Username)
			c.Set(ctxRemember, claims.Remember)
			return next(c)
		}
	}
}

// CurrentUser returns the logged-in username, or "" outside RequireAuth.
func CurrentUser(c echo.Context) string {
	u, _ := c.Get(ctxUsername).(string)
	return u
}

func Remembered(c echo.Context) bool {
	r, _ := c.Get(ctxRemember).(bool)
	return r
}
