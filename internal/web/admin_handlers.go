package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub-io/deskhub-console/internal/client"
	"github.com/deskhub-io/deskhub-console/internal/export"
	"github.com/deskhub-io/deskhub-console/internal/middleware"
	"github.com/deskhub-io/deskhub-console/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminPage renders the admin console. Exactly one dataset is fetched per
// render: the users tab or the tickets tab, never both.
func (h *Handlers) AdminPage(c *gin.Context) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	tab := c.DefaultQuery("tab", "users")
	if tab != "tickets" {
		tab = "users"
	}

	if tab == "tickets" {
		tickets, err := h.api.Admin.ListTickets(ctx)
		if err != nil {
			log.Printf("admin: failed to fetch tickets: %v", err)
		}
		h.render.HTML(c, http.StatusOK, "admin_tickets.html", gin.H{
			"Tab":      tab,
			"Tickets":  tickets,
			"Statuses": models.Statuses,
		})
		return
	}

	users, err := h.api.Admin.ListUsers(ctx)
	if err != nil {
		log.Printf("admin: failed to fetch users: %v", err)
	}
	h.render.HTML(c, http.StatusOK, "admin_users.html", gin.H{
		"Tab":   tab,
		"Users": users,
	})
}

// EditUserForm renders the edit form pre-filled with the selected user's
// email, role and active flag.
func (h *Handlers) EditUserForm(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	user, err := h.api.Admin.GetUser(ctx, id)
	if err != nil {
		log.Printf("admin: failed to fetch user %d: %v", id, err)
		c.Redirect(http.StatusFound, "/admin?tab=users")
		return
	}

	h.render.HTML(c, http.StatusOK, "user_edit.html", gin.H{
		"User":  user,
		"Roles": models.Roles,
	})
}

// UpdateUser submits only the editable fields (email, role, active) as a
// partial update, then returns to the users tab for a re-fetch.
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	email := strings.TrimSpace(c.PostForm("email"))
	role := models.Role(c.PostForm("role"))
	active := c.PostForm("active") != ""

	update := &models.UserUpdate{Active: &active}
	if email != "" {
		update.Email = &email
	}
	if role.Valid() {
		update.Role = &role
	}

	if _, err := h.api.Admin.UpdateUser(ctx, id, update); err != nil {
		log.Printf("admin: failed to update user %d: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/admin?tab=users")
}

// NewUserForm renders the create-user form.
func (h *Handlers) NewUserForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "user_new.html", gin.H{
		"Roles": models.Roles,
	})
}

// CreateUser creates an account from the admin console.
func (h *Handlers) CreateUser(c *gin.Context) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	fullName := strings.TrimSpace(c.PostForm("fullName"))
	role := models.Role(c.PostForm("role"))
	active := c.PostForm("active") != ""

	if username == "" || email == "" || password == "" {
		h.render.HTML(c, http.StatusBadRequest, "user_new.html", gin.H{
			"Error": "Username, email and password are required",
			"Roles": models.Roles,
		})
		return
	}
	if !role.Valid() {
		role = models.RoleUser
	}

	user := &models.UserUpdate{
		Username: &username,
		Email:    &email,
		Password: &password,
		Role:     &role,
		Active:   &active,
	}
	if fullName != "" {
		user.FullName = &fullName
	}

	if _, err := h.api.Admin.CreateUser(ctx, user); err != nil {
		h.render.HTML(c, http.StatusBadRequest, "user_new.html", gin.H{
			"Error": client.UserMessage(err, "Failed to create user"),
			"Roles": models.Roles,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin?tab=users")
}

// DeleteUserConfirm renders the interactive confirmation step; cancel is a
// plain link back to the users tab, so nothing is mutated.
func (h *Handlers) DeleteUserConfirm(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	user, err := h.api.Admin.GetUser(ctx, id)
	if err != nil {
		log.Printf("admin: failed to fetch user %d: %v", id, err)
		c.Redirect(http.StatusFound, "/admin?tab=users")
		return
	}

	h.render.HTML(c, http.StatusOK, "user_delete.html", gin.H{
		"User": user,
	})
}

// DeleteUser removes the user after confirmation and returns to the users
// tab for a re-fetch.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	if err := h.api.Admin.DeleteUser(ctx, id); err != nil {
		log.Printf("admin: failed to delete user %d: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/admin?tab=users")
}

// ForceTicketStatus changes any ticket's status through the admin route.
func (h *Handlers) ForceTicketStatus(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	status := models.Status(c.PostForm("status"))
	if status.Valid() {
		if _, err := h.api.Admin.ForceUpdateStatus(ctx, id, status); err != nil {
			log.Printf("admin: failed to update ticket %d status: %v", id, err)
		}
	}

	c.Redirect(http.StatusFound, "/admin?tab=tickets")
}

// ForceAssignTicket assigns any ticket through the admin route.
func (h *Handlers) ForceAssignTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	assigneeID, err := strconv.ParseInt(c.PostForm("assigneeId"), 10, 64)
	if err == nil && assigneeID > 0 {
		if _, err := h.api.Admin.ForceAssign(ctx, id, assigneeID); err != nil {
			log.Printf("admin: failed to assign ticket %d: %v", id, err)
		}
	}

	c.Redirect(http.StatusFound, "/admin?tab=tickets")
}

// AdminExport streams the current tab's dataset as an xlsx workbook.
func (h *Handlers) AdminExport(c *gin.Context) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	tab := c.DefaultQuery("tab", "users")
	if tab == "tickets" {
		tickets, err := h.api.Admin.ListTickets(ctx)
		if err != nil {
			log.Printf("admin export: failed to fetch tickets: %v", err)
			c.Redirect(http.StatusFound, "/admin?tab=tickets")
			return
		}
		c.Header("Content-Type", xlsxContentType)
		c.Header("Content-Disposition", `attachment; filename="tickets.xlsx"`)
		if err := export.WriteTickets(c.Writer, tickets); err != nil {
			log.Printf("admin export: write tickets: %v", err)
		}
		return
	}

	users, err := h.api.Admin.ListUsers(ctx)
	if err != nil {
		log.Printf("admin export: failed to fetch users: %v", err)
		c.Redirect(http.StatusFound, "/admin?tab=users")
		return
	}
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="users.xlsx"`)
	if err := export.WriteUsers(c.Writer, users); err != nil {
		log.Printf("admin export: write users: %v", err)
	}
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}
