package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

func TestWriteUsers(t *testing.T) {
	users := []models.User{
		{
			ID:        1,
			Username:  "alice",
			Email:     "alice@example.com",
			FullName:  "Alice Liddell",
			Role:      models.RoleAdmin,
			Active:    true,
			CreatedAt: models.Time{Time: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)},
		},
		{
			ID:       2,
			Username: "bob",
			Email:    "bob@example.com",
			Role:     models.RoleUser,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUsers(&buf, users))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Users")

	rows, err := f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Username", rows[0][1])
	assert.Equal(t, "alice", rows[1][1])
	assert.Equal(t, "ADMIN", rows[1][4])
	assert.Equal(t, "2025-01-02 10:00:00", rows[1][6])
	assert.Equal(t, "bob", rows[2][1])
}

func TestWriteTickets(t *testing.T) {
	four := 4
	tickets := []models.Ticket{
		{
			ID:       7,
			Subject:  "VPN drops",
			Priority: models.PriorityHigh,
			Status:   models.StatusResolved,
			Creator:  models.User{Username: "alice"},
			Assignee: &models.User{Username: "bob"},
			Rating:   &four,
		},
		{
			ID:       8,
			Subject:  "Laptop will not boot",
			Priority: models.PriorityUrgent,
			Status:   models.StatusOpen,
			Creator:  models.User{Username: "carol"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTickets(&buf, tickets))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Subject", rows[0][1])
	assert.Equal(t, "VPN drops", rows[1][1])
	assert.Equal(t, "RESOLVED", rows[1][3])
	assert.Equal(t, "bob", rows[1][5])
	assert.Equal(t, "4", rows[1][6])

	// Unassigned, unrated ticket leaves those cells blank.
	assert.Equal(t, "carol", rows[2][4])
}

func TestWriteUsersEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUsers(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
