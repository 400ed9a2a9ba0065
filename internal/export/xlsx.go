// Package export writes admin console datasets as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// WriteUsers streams the user list as a single-sheet workbook.
func WriteUsers(w io.Writer, users []models.User) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []interface{}{"ID", "Username", "Email", "Full Name", "Role", "Active", "Created At"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, user := range users {
		row := []interface{}{
			user.ID,
			user.Username,
			user.Email,
			user.FullName,
			string(user.Role),
			user.Active,
			user.CreatedAt.Format(timeLayout),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WriteTickets streams the ticket list as a single-sheet workbook.
func WriteTickets(w io.Writer, tickets []models.Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tickets"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []interface{}{"ID", "Subject", "Priority", "Status", "Creator", "Assignee", "Rating", "Created At"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, ticket := range tickets {
		assignee := ""
		if ticket.Assignee != nil {
			assignee = ticket.Assignee.Username
		}
		rating := ""
		if ticket.Rating != nil {
			rating = fmt.Sprintf("%d", *ticket.Rating)
		}
		row := []interface{}{
			ticket.ID,
			ticket.Subject,
			string(ticket.Priority),
			string(ticket.Status),
			ticket.Creator.Username,
			assignee,
			rating,
			ticket.CreatedAt.Format(timeLayout),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
