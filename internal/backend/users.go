package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ListUsers returns the users in status. An empty status lists everyone.
func (c *Client) ListUsers(ctx context.Context, token string, status domain.UserStatus) ([]domain.User, error) {
	const endpoint = "GET /users"
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/users", token: token, query: query})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](endpoint, body, "Users", "users")
}

// UpdateUserStatus moves a user to status.
func (c *Client) UpdateUserStatus(ctx context.Context, token, id string, status domain.UserStatus) error {
	const endpoint = "PUT /users/:id/status"
	body, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPut,
		path:     "/users/" + escape(id) + "/status",
		token:    token,
		body:     map[string]string{"status": string(status)},
	})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// AddUser registers a customer account on behalf of the customer.
func (c *Client) AddUser(ctx context.Context, token string, in domain.NewUser) error {
	const endpoint = "POST /admin/add_user"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodPost, path: "/admin/add_user", token: token, body: in})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}
