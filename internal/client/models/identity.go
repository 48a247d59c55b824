package models

// Identity is the authenticated principal: profile fields plus role and the
// bearer token returned by login. It is the single object persisted to local
// storage between sessions.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Token string `json:"token,omitempty"`
	Role  Role   `json:"role"`
}

// Member is a user eligible for project or task assignment.
type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

func (m Member) EntityID() int64 { return m.ID }
