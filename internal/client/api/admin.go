package api

import (
	"context"
	"net/http"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

const adminBasePath = "/api/v1/admin"

// AdminClient covers administrator operations.
type AdminClient struct {
	core *Client
}

func NewAdminClient(core *Client) *AdminClient {
	return &AdminClient{core: core}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new user account with the given role.
func (a *AdminClient) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error) {
	id, _, err := call[models.Identity](ctx, a.core, http.MethodPost, adminBasePath+"/register",
		RegisterRequest{Name: name, Email: email, Password: password, Role: string(role)},
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
