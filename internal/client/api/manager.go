package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

const managerBasePath = "/api/v1/managers"

// ManagerClient covers project, member and task management.
type ManagerClient struct {
	core *Client
}

func NewManagerClient(core *Client) *ManagerClient {
	return &ManagerClient{core: core}
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddMembersRequest struct {
	MemberIDs []int64 `json:"memberIds"`
}

type TaskRequest struct {
	Title       string              `json:"taskTitle"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     string              `json:"dueDate"`
	MemberID    int64               `json:"memberId"`
}

type membersResponse struct {
	Members []models.Member `json:"members"`
}

func (m *ManagerClient) CreateProject(ctx context.Context, req ProjectRequest) (*models.Project, string, error) {
	p, msg, err := call[models.Project](ctx, m.core, http.MethodPost, managerBasePath+"/projects",
		req, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, "", err
	}
	return &p, msg, nil
}

func (m *ManagerClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, _, err := call[[]models.Project](ctx, m.core, http.MethodGet, managerBasePath+"/projects",
		nil, http.StatusOK)
	return projects, err
}

func (m *ManagerClient) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	p, _, err := call[models.Project](ctx, m.core, http.MethodGet,
		fmt.Sprintf("%s/projects/%d", managerBasePath, projectID), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *ManagerClient) DeleteProject(ctx context.Context, projectID int64) (string, error) {
	env, err := m.core.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/projects/%d", managerBasePath, projectID), nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// AddMembers assigns the given users to a project.
func (m *ManagerClient) AddMembers(ctx context.Context, projectID int64, memberIDs []int64) (string, error) {
	env, err := m.core.do(ctx, http.MethodPost,
		fmt.Sprintf("%s/projects/%d/members", managerBasePath, projectID),
		AddMembersRequest{MemberIDs: memberIDs}, http.StatusOK, http.StatusCreated)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (m *ManagerClient) ListMembers(ctx context.Context, projectID int64) ([]models.Member, error) {
	resp, _, err := call[membersResponse](ctx, m.core, http.MethodGet,
		fmt.Sprintf("%s/projects/%d/members", managerBasePath, projectID), nil, http.StatusOK)
	return resp.Members, err
}

func (m *ManagerClient) CreateTask(ctx context.Context, projectID int64, req TaskRequest) (*models.Task, string, error) {
	task, msg, err := call[models.Task](ctx, m.core, http.MethodPost,
		fmt.Sprintf("%s/projects/%d/tasks", managerBasePath, projectID),
		req, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, "", err
	}
	return &task, msg, nil
}

func (m *ManagerClient) DeleteTask(ctx context.Context, projectID, taskID int64) (string, error) {
	env, err := m.core.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/projects/%d/tasks/%d", managerBasePath, projectID, taskID), nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// TaskStats summarizes the manager's tasks across all their projects.
func (m *ManagerClient) TaskStats(ctx context.Context) (*models.TaskStats, error) {
	stats, _, err := call[models.TaskStats](ctx, m.core, http.MethodGet,
		managerBasePath+"/projects/tasks/stats", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TotalMembers counts members across all the manager's projects.
func (m *ManagerClient) TotalMembers(ctx context.Context) (int64, error) {
	count, _, err := call[int64](ctx, m.core, http.MethodGet,
		managerBasePath+"/projects/members", nil, http.StatusOK)
	return count, err
}
