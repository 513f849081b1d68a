package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	LoginStatus bool   `json:"loginStatus"`
	Token       string `json:"token"`
	ID          string `json:"id"`
	Error       string `json:"Error"`
}

// accepted reports whether the reply grants access. Some deployments omit
// loginStatus and only send the token or staff id.
func (r loginResponse) accepted() bool {
	return r.LoginStatus || r.Token != "" || r.ID != ""
}

func (c *Client) login(ctx context.Context, endpoint, path, email, password string) (loginResponse, error) {
	body, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPost,
		path:     path,
		body:     loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return loginResponse{}, err
	}
	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return loginResponse{}, decodeError(endpoint, err)
	}
	if !resp.accepted() {
		msg := resp.Error
		if msg == "" {
			msg = errorMessage(body)
		}
		return loginResponse{}, apperrors.NewRejected(msg)
	}
	return resp, nil
}

// AdminLogin exchanges admin credentials for a bearer token.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, error) {
	resp, err := c.login(ctx, "POST /admin/adminlogin", "/admin/adminlogin", email, password)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// StaffLogin checks staff credentials. The backend answers with the staff id
// and, on newer deployments, a token.
func (c *Client) StaffLogin(ctx context.Context, email, password string) (id, token string, err error) {
	resp, err := c.login(ctx, "POST /staff/staff_login", "/staff/staff_login", email, password)
	if err != nil {
		return "", "", err
	}
	return resp.ID, resp.Token, nil
}

// StaffDetail loads the record a staff member sees about themselves.
func (c *Client) StaffDetail(ctx context.Context, token, id string) (domain.StaffMember, error) {
	const endpoint = "GET /staff/detail/:id"
	body, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     "/staff/detail/" + escape(id),
		token:    token,
	})
	if err != nil {
		return domain.StaffMember{}, err
	}
	return firstRecord[domain.StaffMember](endpoint, body)
}
