package api

import (
	"context"
	"net/http"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

const authBasePath = "/api/v1/auth"

// AuthClient issues login/logout calls.
type AuthClient struct {
	core *Client
}

func NewAuthClient(core *Client) *AuthClient {
	return &AuthClient{core: core}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the identity the server issued, token
// included. The result becomes the new session identity on success.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	id, _, err := call[models.Identity](ctx, a.core, http.MethodPost, authBasePath+"/login",
		LoginRequest{Email: email, Password: password}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	if !id.Role.Known() {
		return nil, &Error{StatusCode: http.StatusOK, Message: "server returned unknown role " + string(id.Role)}
	}
	return &id, nil
}

// Logout invalidates the server-side session. The local identity is the
// session store's business.
func (a *AuthClient) Logout(ctx context.Context) error {
	_, err := a.core.do(ctx, http.MethodPost, authBasePath+"/logout", nil, http.StatusOK)
	return err
}
