package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub-io/deskhub-console/internal/authz"
	"github.com/deskhub-io/deskhub-console/internal/client"
	"github.com/deskhub-io/deskhub-console/internal/middleware"
	"github.com/deskhub-io/deskhub-console/internal/models"
)

// Dashboard lists tickets, optionally narrowed by exactly one of keyword
// search, status filter, or priority filter.
func (h *Handlers) Dashboard(c *gin.Context) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	keyword := strings.TrimSpace(c.Query("keyword"))
	status := models.Status(c.Query("status"))
	priority := models.Priority(c.Query("priority"))

	var (
		tickets []models.Ticket
		err     error
	)
	switch {
	case keyword != "":
		tickets, err = h.api.Tickets.Search(ctx, keyword)
	case status.Valid():
		tickets, err = h.api.Tickets.FilterByStatus(ctx, status)
	case priority.Valid():
		tickets, err = h.api.Tickets.FilterByPriority(ctx, priority)
	default:
		tickets, err = h.api.Tickets.List(ctx)
	}
	if err != nil {
		log.Printf("dashboard: failed to fetch tickets: %v", err)
	}

	h.render.HTML(c, http.StatusOK, "dashboard.html", gin.H{
		"Tickets":        tickets,
		"Keyword":        keyword,
		"FilterStatus":   status,
		"FilterPriority": priority,
		"Statuses":       models.Statuses,
		"Priorities":     models.Priorities,
	})
}

// CreateTicket opens a new ticket and jumps to its detail view.
func (h *Handlers) CreateTicket(c *gin.Context) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	subject := strings.TrimSpace(c.PostForm("subject"))
	description := strings.TrimSpace(c.PostForm("description"))
	priority := models.Priority(c.PostForm("priority"))
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	if subject == "" || description == "" {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ticket, err := h.api.Tickets.Create(ctx, subject, description, priority)
	if err != nil {
		log.Printf("create ticket: %v", err)
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.Redirect(http.StatusFound, "/tickets/"+strconv.FormatInt(ticket.ID, 10))
}

// ShowTicket renders one ticket with the action panels the viewer is
// allowed to use.
func (h *Handlers) ShowTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	h.renderTicket(c, id, gin.H{})
}

// renderTicket fetches the ticket and renders the detail page with extra
// template data merged in (rating or upload errors).
func (h *Handlers) renderTicket(c *gin.Context, id int64, extra gin.H) {
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	ticket, err := h.api.Tickets.Get(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			h.render.HTML(c, http.StatusNotFound, "not_found.html", gin.H{})
			return
		}
		log.Printf("ticket %d: fetch failed: %v", id, err)
		h.render.HTML(c, http.StatusBadGateway, "not_found.html", gin.H{})
		return
	}

	data := gin.H{
		"Ticket":   ticket,
		"Actions":  authz.Permitted(sess.UserID, sess.Role, ticket),
		"Statuses": models.Statuses,
		"Stars":    []int{1, 2, 3, 4, 5},
	}
	for key, value := range extra {
		data[key] = value
	}
	h.render.HTML(c, http.StatusOK, "ticket_detail.html", data)
}

// UpdateTicketStatus submits whichever status the viewer selected; the
// backend decides whether the transition is legal.
func (h *Handlers) UpdateTicketStatus(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	status := models.Status(c.PostForm("status"))
	if status.Valid() {
		if _, err := h.api.Tickets.UpdateStatus(ctx, id, status); err != nil {
			log.Printf("ticket %d: status update failed: %v", id, err)
		}
	}

	redirectToTicket(c, id)
}

// AddComment appends a comment unless the input is blank.
func (h *Handlers) AddComment(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	content := strings.TrimSpace(c.PostForm("content"))
	if content != "" {
		if _, err := h.api.Tickets.AddComment(ctx, id, content); err != nil {
			log.Printf("ticket %d: add comment failed: %v", id, err)
		}
	}

	redirectToTicket(c, id)
}

// UploadAttachment forwards the selected file as multipart form data.
func (h *Handlers) UploadAttachment(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.renderTicket(c, id, gin.H{"UploadError": "Choose a file to upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.renderTicket(c, id, gin.H{"UploadError": "Could not read the selected file"})
		return
	}
	defer file.Close()

	if _, err := h.api.Tickets.UploadAttachment(ctx, id, fileHeader.Filename, file); err != nil {
		log.Printf("ticket %d: upload failed: %v", id, err)
	}

	redirectToTicket(c, id)
}

// AssignTicket assigns the ticket to a user. The form only renders for
// agents and admins; the backend re-checks the role either way.
func (h *Handlers) AssignTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	assigneeID, err := strconv.ParseInt(c.PostForm("assigneeId"), 10, 64)
	if err == nil && assigneeID > 0 {
		if _, err := h.api.Tickets.Assign(ctx, id, assigneeID); err != nil {
			log.Printf("ticket %d: assign failed: %v", id, err)
		}
	}

	redirectToTicket(c, id)
}

// RateTicket submits a satisfaction rating. This is the one flow where a
// backend error is surfaced to the user rather than just logged.
func (h *Handlers) RateTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	sess, _ := middleware.GetSession(c)
	ctx := client.WithToken(c.Request.Context(), sess.Token)

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	feedback := strings.TrimSpace(c.PostForm("feedback"))

	if rating < 1 || rating > 5 {
		h.renderTicket(c, id, gin.H{"RatingError": "Please select a rating"})
		return
	}

	if _, err := h.api.Tickets.Rate(ctx, id, rating, feedback); err != nil {
		h.renderTicket(c, id, gin.H{
			"RatingError": client.UserMessage(err, "Failed to rate ticket"),
		})
		return
	}

	redirectToTicket(c, id)
}

func ticketID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid ticket ID")
		return 0, false
	}
	return id, true
}

func redirectToTicket(c *gin.Context, id int64) {
	c.Redirect(http.StatusFound, "/tickets/"+strconv.FormatInt(id, 10))
}
