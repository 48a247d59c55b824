package models

import (
	"errors"
	"fmt"
)

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

var (
	ErrUnknownStatus   = errors.New("unknown task status")
	ErrUnknownPriority = errors.New("unknown task priority")
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return TaskStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
	}
}

// Task is a unit of work inside a project. DueDate is a calendar date in
// the YYYY-MM-DD form the API serves.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"taskTitle"`
	Description string       `json:"description"`
	DueDate     string       `json:"dueDate"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	ProjectName string       `json:"projectName,omitempty"`
	MemberName  string       `json:"memberName,omitempty"`
}

func (t Task) EntityID() int64 { return t.ID }

// TaskStats summarizes a manager's tasks across all their projects.
type TaskStats struct {
	TotalTasks           int64   `json:"totalTasks"`
	TasksInProgress      int64   `json:"tasksInProgress"`
	InProgressPercentage float64 `json:"inProgressPercentage"`
}
