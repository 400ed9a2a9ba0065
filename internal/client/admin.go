package client

import (
	"context"
	"fmt"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

// AdminService handles administrative overrides. The console gates these
// behind a local ADMIN check for UX only; the backend re-authorizes every
// call from the bearer token.
type AdminService struct {
	client *Client
}

// ListUsers retrieves all users.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var result []models.User
	err := s.client.get(ctx, "/admin/users", &result)
	return result, err
}

// GetUser retrieves a specific user by ID.
func (s *AdminService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	path := fmt.Sprintf("/admin/users/%d", id)

	var result models.User
	if err := s.client.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser creates a user from a partial record.
func (s *AdminService) CreateUser(ctx context.Context, user *models.UserUpdate) (*models.User, error) {
	var result models.User
	if err := s.client.post(ctx, "/admin/users", user, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUser submits a partial update; only non-nil fields are sent.
func (s *AdminService) UpdateUser(ctx context.Context, id int64, user *models.UserUpdate) (*models.User, error) {
	path := fmt.Sprintf("/admin/users/%d", id)

	var result models.User
	if err := s.client.put(ctx, path, user, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes a user.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/admin/users/%d", id)
	return s.client.delete(ctx, path)
}

// ListTickets retrieves every ticket in the system.
func (s *AdminService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var result []models.Ticket
	err := s.client.get(ctx, "/admin/tickets", &result)
	return result, err
}

// ForceUpdateStatus changes any ticket's status through the admin route.
func (s *AdminService) ForceUpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Ticket, error) {
	path := fmt.Sprintf("/admin/tickets/%d/status", id)

	body := map[string]models.Status{"status": status}
	var result models.Ticket
	if err := s.client.put(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ForceAssign assigns any ticket through the admin route.
func (s *AdminService) ForceAssign(ctx context.Context, id, assigneeID int64) (*models.Ticket, error) {
	path := fmt.Sprintf("/admin/tickets/%d/assign", id)

	body := map[string]int64{"assigneeId": assigneeID}
	var result models.Ticket
	if err := s.client.put(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
