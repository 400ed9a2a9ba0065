package models

// Role controls which actions a session may request. The backend is the
// authority; the console only uses roles to decide what to render.
type Role string

const (
	RoleUser         Role = "USER"
	RoleSupportAgent Role = "SUPPORT_AGENT"
	RoleAdmin        Role = "ADMIN"
)

// Roles lists all assignable roles in display order.
var Roles = []Role{RoleUser, RoleSupportAgent, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSupportAgent, RoleAdmin:
		return true
	}
	return false
}

// Status is a ticket lifecycle state: OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

// Statuses lists all ticket states in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// Valid reports whether s is one of the known ticket states.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Label returns the human form of the status ("IN_PROGRESS" -> "IN PROGRESS").
func (s Status) Label() string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}

// Priority is a ticket urgency level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities lists all priorities from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// User represents an account in the support system.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	Role      Role   `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt Time   `json:"createdAt"`
}

// Ticket represents a support request with its comments and attachments.
// The console only ever holds transient copies fetched from the backend.
type Ticket struct {
	ID          int64        `json:"id"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      Status       `json:"status"`
	Creator     User         `json:"creator"`
	Assignee    *User        `json:"assignee,omitempty"`
	Comments    []Comment    `json:"comments"`
	Attachments []Attachment `json:"attachments"`
	Rating      *int         `json:"rating,omitempty"`
	Feedback    string       `json:"feedback,omitempty"`
	CreatedAt   Time         `json:"createdAt"`
	UpdatedAt   Time         `json:"updatedAt"`
	ResolvedAt  *Time        `json:"resolvedAt,omitempty"`
	ClosedAt    *Time        `json:"closedAt,omitempty"`
}

// Comment is immutable once created; the backend offers no edit or delete.
type Comment struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	User      User   `json:"user"`
	CreatedAt Time   `json:"createdAt"`
}

// Attachment describes an uploaded file; the content itself stays on the backend.
type Attachment struct {
	ID         int64  `json:"id"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	FileSize   int64  `json:"fileSize"`
	User       User   `json:"user"`
	UploadedAt Time   `json:"uploadedAt"`
}

// AuthSession is the backend's reply to login and register.
type AuthSession struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	UserID   int64  `json:"userId"`
}

// UserUpdate is a partial user record for admin create/update calls.
// Nil fields are omitted from the request body, so a save submits only
// the fields present on the edited record.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}
