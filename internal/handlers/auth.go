package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/session"
)

func (h HandlerSet) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login authenticates against the backend, persists the session, and
// dispatches the user to their role's landing page. The session
// cookies are written before the redirect is issued.
func (h HandlerSet) Login(c *gin.Context) {
	usernameOrEmail := c.PostForm("username")
	password := c.PostForm("password")
	if usernameOrEmail == "" || password == "" {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title": "Login",
			"Error": "Username and password are required.",
		})
		return
	}

	result, err := h.backend.Login(c.Request.Context(), usernameOrEmail, password)
	if err != nil {
		// Bad credentials stay on the form; the session is untouched.
		status := http.StatusUnauthorized
		if errors.Is(err, backend.ErrUnreachable) {
			status = http.StatusBadGateway
		}
		h.render(c, status, "login.html", gin.H{
			"Title":    "Login",
			"Error":    backend.UserMessage(err, "Invalid username or password."),
			"Username": usernameOrEmail,
		})
		return
	}

	h.store.Login(c, result.Token, result.Profile)
	h.dispatch(c, result.Profile)
}

func (h HandlerSet) SignupForm(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
}

// Signup registers a new account. The register response carries a
// token and profile like login does, so a fresh account lands on the
// role-selection page already signed in.
func (h HandlerSet) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if username == "" || email == "" || password == "" {
		h.render(c, http.StatusBadRequest, "signup.html", gin.H{
			"Title": "Sign up",
			"Error": "All fields are required.",
		})
		return
	}

	result, err := h.backend.Register(c.Request.Context(), username, email, password)
	if err != nil {
		h.render(c, http.StatusBadRequest, "signup.html", gin.H{
			"Title":    "Sign up",
			"Error":    backend.UserMessage(err, "Registration failed."),
			"Username": username,
			"Email":    email,
		})
		return
	}

	h.store.Login(c, result.Token, result.Profile)
	c.Redirect(http.StatusSeeOther, "/roles")
}

func (h HandlerSet) Logout(c *gin.Context) {
	h.store.Logout(c)
	c.Redirect(http.StatusSeeOther, session.PathHome)
}

// dispatch sends a freshly authenticated user to their landing page.
// An unrecognized role goes to the public home with a visible error.
func (h HandlerSet) dispatch(c *gin.Context, profile session.Profile) {
	dest, ok := session.LandingPath(profile.Role, profile.Approved)
	if !ok {
		h.log.Warn().Str("user_id", profile.ID).Msg("login with unrecognized role")
		dest = session.PathHome + "?error=" + url.QueryEscape("User role not recognized.")
	}
	c.Redirect(http.StatusSeeOther, dest)
}
