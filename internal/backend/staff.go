package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

func escape(id string) string {
	return url.PathEscape(id)
}

// ListCategories returns every staff category.
func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	const endpoint = "GET /admin/category"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/admin/category", token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Category](endpoint, body)
}

// AddCategory creates a category.
func (c *Client) AddCategory(ctx context.Context, token, name string) error {
	const endpoint = "POST /admin/add_category"
	body, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPost,
		path:     "/admin/add_category",
		token:    token,
		body:     map[string]string{"category": name},
	})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// ListStaff returns every staff member.
func (c *Client) ListStaff(ctx context.Context, token string) ([]domain.StaffMember, error) {
	const endpoint = "GET /admin/staff"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/admin/staff", token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.StaffMember](endpoint, body)
}

// GetStaff loads one staff member.
func (c *Client) GetStaff(ctx context.Context, token, id string) (domain.StaffMember, error) {
	const endpoint = "GET /admin/staff/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/admin/staff/" + escape(id), token: token})
	if err != nil {
		return domain.StaffMember{}, err
	}
	return firstRecord[domain.StaffMember](endpoint, body)
}

// AddStaff creates a staff member.
func (c *Client) AddStaff(ctx context.Context, token string, in domain.StaffInput) error {
	const endpoint = "POST /admin/add_staff"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodPost, path: "/admin/add_staff", token: token, body: in})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// UpdateStaff replaces a staff member's fields. An empty password is left
// out of the payload so the stored one is kept.
func (c *Client) UpdateStaff(ctx context.Context, token, id string, in domain.StaffInput) error {
	const endpoint = "PUT /admin/staff/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodPut, path: "/admin/staff/" + escape(id), token: token, body: in})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// DeleteStaff removes a staff member.
func (c *Client) DeleteStaff(ctx context.Context, token, id string) error {
	const endpoint = "DELETE /admin/delete_staff/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodDelete, path: "/admin/delete_staff/" + escape(id), token: token})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}
