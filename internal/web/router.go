// Package web is the view layer: page handlers that call the contract
// layer, copy the results into template data, and render. Mutations follow
// POST-redirect-GET, so every change is observed through a full re-fetch.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub-io/deskhub-console/internal/client"
	"github.com/deskhub-io/deskhub-console/internal/middleware"
	"github.com/deskhub-io/deskhub-console/internal/session"
)

// Handlers bundles what every page handler needs: the backend client, the
// template renderer, and the cookie options for session writes.
type Handlers struct {
	api     *client.Client
	render  *Renderer
	cookies session.Options
}

// NewHandlers creates the view layer handler set.
func NewHandlers(api *client.Client, renderer *Renderer, cookies session.Options) *Handlers {
	return &Handlers{
		api:     api,
		render:  renderer,
		cookies: cookies,
	}
}

// NewRouter builds the console's route table.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.LoadSession())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/register", h.ShowRegister)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)

	authed := router.Group("/", middleware.RequireAuth())
	{
		authed.GET("/dashboard", h.Dashboard)

		authed.POST("/tickets", h.CreateTicket)
		authed.GET("/tickets/:id", h.ShowTicket)
		authed.POST("/tickets/:id/status", h.UpdateTicketStatus)
		authed.POST("/tickets/:id/comments", h.AddComment)
		authed.POST("/tickets/:id/attachments", h.UploadAttachment)
		authed.POST("/tickets/:id/assign", h.AssignTicket)
		authed.POST("/tickets/:id/rate", h.RateTicket)
	}

	admin := router.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", h.AdminPage)
		admin.GET("/export", h.AdminExport)
		admin.GET("/users/new", h.NewUserForm)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users/:id/edit", h.EditUserForm)
		admin.POST("/users/:id", h.UpdateUser)
		admin.GET("/users/:id/delete", h.DeleteUserConfirm)
		admin.POST("/users/:id/delete", h.DeleteUser)
		admin.POST("/tickets/:id/status", h.ForceTicketStatus)
		admin.POST("/tickets/:id/assign", h.ForceAssignTicket)
	}

	return router
}
