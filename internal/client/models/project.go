package models

// Project is a manager-owned container for tasks and members. The id is
// server-assigned and stable.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerName string `json:"managerName,omitempty"`
}

func (p Project) EntityID() int64 { return p.ID }
