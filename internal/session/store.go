package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the per-request view of authentication state. Profile may
// be nil even when a token exists; the guard treats that as role
// unknown, never as a crash.
type Session struct {
	Token   string
	Profile *Profile
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func (s Session) Role() Role {
	if s.Profile == nil {
		return RoleUnknown
	}
	return s.Profile.Role
}

// Store persists the session across requests in two browser cookies,
// one for the bearer token and one for the serialized profile. It is
// the only place that reads or writes those cookies.
type Store struct {
	tokenCookie   string
	profileCookie string
	ttl           time.Duration
	secure        bool
}

type StoreConfig struct {
	TokenCookie   string
	ProfileCookie string
	TTL           time.Duration
	Secure        bool
}

func NewStore(cfg StoreConfig) *Store {
	if cfg.TokenCookie == "" {
		cfg.TokenCookie = "artisan_token"
	}
	if cfg.ProfileCookie == "" {
		cfg.ProfileCookie = "artisan_user"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Store{
		tokenCookie:   cfg.TokenCookie,
		profileCookie: cfg.ProfileCookie,
		ttl:           cfg.TTL,
		secure:        cfg.Secure,
	}
}

// Login persists the token and profile. The Set-Cookie headers are
// written before the caller issues its redirect, so a reload straight
// after navigation still finds the session.
func (s *Store) Login(c *gin.Context, token string, profile Profile) {
	maxAge := int(s.ttl / time.Second)
	s.setCookie(c, s.tokenCookie, token, maxAge)

	encoded, err := encodeProfile(profile)
	if err != nil {
		// A profile that cannot be serialized is persisted as absent;
		// the guard then sees the token with role unknown.
		s.setCookie(c, s.profileCookie, "", -1)
		return
	}
	s.setCookie(c, s.profileCookie, encoded, maxAge)
}

// Logout clears both cookies. Calling it on an already logged-out
// request is a no-op as far as the client can observe.
func (s *Store) Logout(c *gin.Context) {
	s.setCookie(c, s.tokenCookie, "", -1)
	s.setCookie(c, s.profileCookie, "", -1)
}

// Load hydrates the session from the request cookies. Corrupt profile
// data degrades to a nil profile, and a missing or already-expired
// token yields a zero session.
func (s *Store) Load(c *gin.Context) Session {
	token, err := c.Cookie(s.tokenCookie)
	if err != nil || token == "" {
		return Session{}
	}
	if tokenExpired(token) {
		return Session{}
	}

	sess := Session{Token: token}

	encoded, err := c.Cookie(s.profileCookie)
	if err != nil || encoded == "" {
		return sess
	}
	if profile, err := decodeProfile(encoded); err == nil {
		sess.Profile = profile
	}
	return sess
}

func (s *Store) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func encodeProfile(profile Profile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeProfile(encoded string) (*Profile, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// tokenExpired peeks at the bearer token's exp claim without verifying
// the signature. The backend remains authoritative; this only spares
// the user a page of failed calls when the token is already dead.
// Opaque non-JWT tokens pass through untouched.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
