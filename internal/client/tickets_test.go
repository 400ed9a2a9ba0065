package client

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

const ticketJSON = `{
	"id": 7,
	"subject": "VPN drops",
	"description": "Drops every hour on the hour",
	"priority": "HIGH",
	"status": "OPEN",
	"creator": {"id": 1, "username": "alice", "email": "alice@example.com", "role": "USER", "active": true, "createdAt": "2025-01-02T10:00:00"},
	"comments": [],
	"attachments": [],
	"createdAt": "2025-03-01T08:00:00",
	"updatedAt": "2025-03-01T08:00:00"
}`

func TestTicketsList(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, "["+ticketJSON+"]")
	api := testClient(t, backend)

	tickets, err := api.Tickets.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, int64(7), tickets[0].ID)

	req := backend.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/tickets", req.Path)
}

func TestTicketsGet(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	ticket, err := api.Tickets.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "VPN drops", ticket.Subject)

	req := backend.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/tickets/7", req.Path)
}

func TestTicketsGetNotFound(t *testing.T) {
	backend := newFakeBackend(http.StatusNotFound, `{"message":"Ticket not found"}`)
	api := testClient(t, backend)

	_, err := api.Tickets.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestTicketsCreate(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Tickets.Create(context.Background(), "VPN drops", "Drops every hour", models.PriorityHigh)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/tickets", req.Path)
	assert.Contains(t, req.ContentType, "application/json")
	assert.JSONEq(t, `{"subject":"VPN drops","description":"Drops every hour","priority":"HIGH"}`, req.Body)
}

func TestTicketsUpdateStatus(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Tickets.UpdateStatus(context.Background(), 7, models.StatusResolved)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/tickets/7/status", req.Path)
	assert.JSONEq(t, `{"status":"RESOLVED"}`, req.Body)
}

func TestTicketsAssign(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Tickets.Assign(context.Background(), 7, 3)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/tickets/7/assign", req.Path)
	assert.JSONEq(t, `{"assigneeId":3}`, req.Body)
}

func TestTicketsAddComment(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, `{"id": 12, "content": "On it", "user": {"id": 2, "username": "bob", "email": "bob@example.com", "role": "SUPPORT_AGENT", "active": true, "createdAt": "2025-01-02T10:00:00"}, "createdAt": "2025-03-01T09:00:00"}`)
	api := testClient(t, backend)

	comment, err := api.Tickets.AddComment(context.Background(), 7, "On it")
	require.NoError(t, err)
	assert.Equal(t, int64(12), comment.ID)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/tickets/7/comments", req.Path)
	assert.JSONEq(t, `{"content":"On it"}`, req.Body)
}

func TestTicketsRate(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Tickets.Rate(context.Background(), 7, 4, "quick fix")
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/tickets/7/rate", req.Path)
	assert.JSONEq(t, `{"rating":4,"feedback":"quick fix"}`, req.Body)
}

func TestTicketsRateOmitsEmptyFeedback(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Tickets.Rate(context.Background(), 7, 5, "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"rating":5}`, backend.last(t).Body)
}

func TestTicketsUploadAttachment(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, `{"id": 3, "fileName": "log.txt", "fileType": "text/plain", "fileSize": 11, "user": {"id": 1, "username": "alice", "email": "alice@example.com", "role": "USER", "active": true, "createdAt": "2025-01-02T10:00:00"}, "uploadedAt": "2025-03-01T09:00:00"}`)
	api := testClient(t, backend)

	attachment, err := api.Tickets.UploadAttachment(context.Background(), 7, "log.txt", strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "log.txt", attachment.FileName)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/tickets/7/attachments", req.Path)
	assert.Contains(t, req.ContentType, "multipart/form-data")
	assert.Contains(t, req.Body, `name="file"`)
	assert.Contains(t, req.Body, `filename="log.txt"`)
	assert.Contains(t, req.Body, "hello world")
}

func TestTicketsSearch(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[]`)
	api := testClient(t, backend)

	_, err := api.Tickets.Search(context.Background(), "vpn drops")
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, "/tickets/search", req.Path)
	assert.Equal(t, "keyword=vpn+drops", req.Query)
}

func TestTicketsFilterByStatus(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[]`)
	api := testClient(t, backend)

	_, err := api.Tickets.FilterByStatus(context.Background(), models.StatusInProgress)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, "/tickets/filter/status", req.Path)
	assert.Equal(t, "status=IN_PROGRESS", req.Query)
}

func TestTicketsFilterByPriority(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[]`)
	api := testClient(t, backend)

	_, err := api.Tickets.FilterByPriority(context.Background(), models.PriorityUrgent)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, "/tickets/filter/priority", req.Path)
	assert.Equal(t, "priority=URGENT", req.Query)
}
