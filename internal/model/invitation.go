package model

import "time"

// InviteTTL is how long an invite code stays valid after it is issued.
const InviteTTL = 2 * time.Hour

// Invite is the decoded form of a workspace invite code.
type Invite struct {
	WorkspaceID int64
	IssuedAt    time.Time
}

func (i Invite) ExpiresAt() time.Time {
	return i.IssuedAt.Add(InviteTTL)
}

// IsExpired reports whether now is strictly past the expiry instant.
func (i Invite) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt())
}
