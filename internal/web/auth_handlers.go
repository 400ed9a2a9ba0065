package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub-io/deskhub-console/internal/client"
	"github.com/deskhub-io/deskhub-console/internal/middleware"
	"github.com/deskhub-io/deskhub-console/internal/session"
)

// ShowLogin renders the login form; an existing session goes straight to
// the dashboard.
func (h *Handlers) ShowLogin(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.render.HTML(c, http.StatusOK, "login.html", gin.H{})
}

// Login exchanges the submitted credentials for a session and writes the
// session cookies.
func (h *Handlers) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.render.HTML(c, http.StatusBadRequest, "login.html", gin.H{
			"Error":    "Username and password are required",
			"Username": username,
		})
		return
	}

	auth, err := h.api.Auth.Login(c.Request.Context(), username, password)
	if err != nil {
		h.render.HTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"Error":    client.UserMessage(err, "Invalid username or password"),
			"Username": username,
		})
		return
	}

	sess := session.New(auth)
	if err := sess.Write(c, h.cookies); err != nil {
		h.render.HTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Failed to store session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister renders the registration form.
func (h *Handlers) ShowRegister(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.render.HTML(c, http.StatusOK, "register.html", gin.H{})
}

// Register creates an account and logs straight into it.
func (h *Handlers) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	fullName := strings.TrimSpace(c.PostForm("fullName"))

	if username == "" || email == "" || password == "" {
		h.render.HTML(c, http.StatusBadRequest, "register.html", gin.H{
			"Error":    "Username, email and password are required",
			"Username": username,
			"Email":    email,
			"FullName": fullName,
		})
		return
	}

	auth, err := h.api.Auth.Register(c.Request.Context(), username, email, password, fullName)
	if err != nil {
		h.render.HTML(c, http.StatusBadRequest, "register.html", gin.H{
			"Error":    client.UserMessage(err, "Registration failed"),
			"Username": username,
			"Email":    email,
			"FullName": fullName,
		})
		return
	}

	sess := session.New(auth)
	if err := sess.Write(c, h.cookies); err != nil {
		h.render.HTML(c, http.StatusInternalServerError, "register.html", gin.H{
			"Error": "Failed to store session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears both session cookies and returns to the login route.
func (h *Handlers) Logout(c *gin.Context) {
	session.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
