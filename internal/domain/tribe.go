package domain

import "time"

// Tribe is a group of users collaborating on shared tasks.
type Tribe struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TribeMember struct {
	ID       string
	TribeID  string
	UserID   string
	Role     MemberRole
	JoinedAt time.Time
}
