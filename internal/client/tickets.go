package client

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

// TicketsService handles ticket-related API operations.
type TicketsService struct {
	client *Client
}

// List retrieves the tickets visible to the current session. Regular users
// see their own tickets; agents and admins see everything.
func (s *TicketsService) List(ctx context.Context) ([]models.Ticket, error) {
	var result []models.Ticket
	err := s.client.get(ctx, "/tickets", &result)
	return result, err
}

// Get retrieves a specific ticket by ID, including comments and attachments.
func (s *TicketsService) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d", id)

	var result models.Ticket
	if err := s.client.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type ticketCreateRequest struct {
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
}

// Create opens a new ticket. The backend sets status OPEN and the creator
// from the session.
func (s *TicketsService) Create(ctx context.Context, subject, description string, priority models.Priority) (*models.Ticket, error) {
	var result models.Ticket
	err := s.client.post(ctx, "/tickets", &ticketCreateRequest{
		Subject:     subject,
		Description: description,
		Priority:    priority,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStatus submits a status change. Which transitions are legal is the
// backend's call, not the console's.
func (s *TicketsService) UpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d/status", id)

	body := map[string]models.Status{"status": status}
	var result models.Ticket
	if err := s.client.put(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Assign assigns a ticket to a user. The backend restricts this to agents
// and admins and moves OPEN tickets to IN_PROGRESS.
func (s *TicketsService) Assign(ctx context.Context, id, assigneeID int64) (*models.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d/assign", id)

	body := map[string]int64{"assigneeId": assigneeID}
	var result models.Ticket
	if err := s.client.put(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddComment appends a comment to a ticket.
func (s *TicketsService) AddComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	path := fmt.Sprintf("/tickets/%d/comments", id)

	body := map[string]string{"content": content}
	var result models.Comment
	if err := s.client.post(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type rateRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

// Rate attaches a 1-5 satisfaction score to a resolved or closed ticket.
// The backend rejects the call unless the caller created the ticket.
func (s *TicketsService) Rate(ctx context.Context, id int64, rating int, feedback string) (*models.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d/rate", id)

	var result models.Ticket
	if err := s.client.post(ctx, path, &rateRequest{Rating: rating, Feedback: feedback}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadAttachment sends a file as multipart form data under field "file".
func (s *TicketsService) UploadAttachment(ctx context.Context, id int64, fileName string, content io.Reader) (*models.Attachment, error) {
	path := fmt.Sprintf("/tickets/%d/attachments", id)

	var result models.Attachment
	resp, err := s.client.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", fileName, content).
		SetResult(&result).
		Post(path)
	if err := s.client.finish("POST", path, resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search retrieves tickets matching a keyword in subject or description.
func (s *TicketsService) Search(ctx context.Context, keyword string) ([]models.Ticket, error) {
	path := "/tickets/search?" + url.Values{"keyword": {keyword}}.Encode()

	var result []models.Ticket
	err := s.client.get(ctx, path, &result)
	return result, err
}

// FilterByStatus retrieves tickets in the given state.
func (s *TicketsService) FilterByStatus(ctx context.Context, status models.Status) ([]models.Ticket, error) {
	path := "/tickets/filter/status?" + url.Values{"status": {string(status)}}.Encode()

	var result []models.Ticket
	err := s.client.get(ctx, path, &result)
	return result, err
}

// FilterByPriority retrieves tickets with the given priority.
func (s *TicketsService) FilterByPriority(ctx context.Context, priority models.Priority) ([]models.Ticket, error) {
	path := "/tickets/filter/priority?" + url.Values{"priority": {string(priority)}}.Encode()

	var result []models.Ticket
	err := s.client.get(ctx, path, &result)
	return result, err
}
