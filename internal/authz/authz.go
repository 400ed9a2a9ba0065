// Package authz consolidates the role and ownership checks the views need.
// Every predicate is pure: the answer depends only on the cached session
// fields and the ticket at hand. The backend independently enforces all of
// these on every call; the console uses them to decide what to render.
package authz

import "github.com/deskhub-io/deskhub-console/internal/models"

// Actions summarizes what a viewer may do with a ticket.
type Actions struct {
	UpdateStatus bool
	Comment      bool
	Upload       bool
	Assign       bool
	Rate         bool
}

// CanViewAdmin reports whether the admin console should render at all.
func CanViewAdmin(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanAssign reports whether the viewer may assign tickets.
func CanAssign(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleSupportAgent
}

// IsCreator reports whether the viewer created the ticket.
func IsCreator(userID int64, ticket *models.Ticket) bool {
	return ticket != nil && ticket.Creator.ID == userID
}

// CanRate reports whether the rating form should be offered: the ticket is
// resolved or closed, the viewer created it, and no rating exists yet.
func CanRate(userID int64, ticket *models.Ticket) bool {
	if ticket == nil || ticket.Rating != nil {
		return false
	}
	if ticket.Status != models.StatusResolved && ticket.Status != models.StatusClosed {
		return false
	}
	return IsCreator(userID, ticket)
}

// Permitted computes the full action set for a viewer on a ticket.
func Permitted(userID int64, role models.Role, ticket *models.Ticket) Actions {
	return Actions{
		UpdateStatus: true,
		Comment:      true,
		Upload:       true,
		Assign:       CanAssign(role),
		Rate:         CanRate(userID, ticket),
	}
}
