package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

const memberBasePath = "/api/v1/members"

// MemberClient covers a member's view of their own tasks.
type MemberClient struct {
	core *Client
}

func NewMemberClient(core *Client) *MemberClient {
	return &MemberClient{core: core}
}

func (m *MemberClient) MyTasks(ctx context.Context) ([]models.Task, error) {
	tasks, _, err := call[[]models.Task](ctx, m.core, http.MethodGet, memberBasePath+"/tasks/my",
		nil, http.StatusOK)
	return tasks, err
}

func (m *MemberClient) UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus) (*models.Task, string, error) {
	path := fmt.Sprintf("%s/tasks/%d/status?status=%s", memberBasePath, taskID, url.QueryEscape(string(status)))
	task, msg, err := call[models.Task](ctx, m.core, http.MethodPatch, path, nil, http.StatusOK)
	if err != nil {
		return nil, "", err
	}
	return &task, msg, nil
}

func (m *MemberClient) UpdateTaskPriority(ctx context.Context, taskID int64, priority models.TaskPriority) (*models.Task, string, error) {
	path := fmt.Sprintf("%s/tasks/%d/priority?priority=%s", memberBasePath, taskID, url.QueryEscape(string(priority)))
	task, msg, err := call[models.Task](ctx, m.core, http.MethodPatch, path, nil, http.StatusOK)
	if err != nil {
		return nil, "", err
	}
	return &task, msg, nil
}
