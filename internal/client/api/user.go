package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

const userBasePath = "/api/v1/users"

// UserClient covers profile lookup and member search.
type UserClient struct {
	core *Client
}

func NewUserClient(core *Client) *UserClient {
	return &UserClient{core: core}
}

func (u *UserClient) CurrentUser(ctx context.Context) (*models.Identity, error) {
	id, _, err := call[models.Identity](ctx, u.core, http.MethodGet, userBasePath+"/me",
		nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// SearchAvailableMembers finds members matching query who are not yet
// assigned to the project.
func (u *UserClient) SearchAvailableMembers(ctx context.Context, projectID int64, query string) ([]models.Member, error) {
	path := fmt.Sprintf("%s/projects/%d/available-members?query=%s",
		userBasePath, projectID, url.QueryEscape(query))
	members, _, err := call[[]models.Member](ctx, u.core, http.MethodGet, path, nil, http.StatusOK)
	return members, err
}

// AvailableMembersForTask lists the project's members eligible for task
// assignment.
func (u *UserClient) AvailableMembersForTask(ctx context.Context, projectID int64) ([]models.Member, error) {
	path := fmt.Sprintf("%s/projects/%d/tasks/available-members", userBasePath, projectID)
	members, _, err := call[[]models.Member](ctx, u.core, http.MethodGet, path, nil, http.StatusOK)
	return members, err
}
