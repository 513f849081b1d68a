package backend

import (
	"context"
	"net/http"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ListSuppliers returns every supplier.
func (c *Client) ListSuppliers(ctx context.Context, token string) ([]domain.Supplier, error) {
	const endpoint = "GET /admin/suppliers"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/admin/suppliers", token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Supplier](endpoint, body, "suppliers")
}

// GetSupplier loads one supplier.
func (c *Client) GetSupplier(ctx context.Context, token, id string) (domain.Supplier, error) {
	const endpoint = "GET /admin/suppliers/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/admin/suppliers/" + escape(id), token: token})
	if err != nil {
		return domain.Supplier{}, err
	}
	return firstRecord[domain.Supplier](endpoint, body)
}

// AddSupplier creates a supplier.
func (c *Client) AddSupplier(ctx context.Context, token string, in domain.SupplierInput) error {
	const endpoint = "POST /admin/suppliers"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodPost, path: "/admin/suppliers", token: token, body: in})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// UpdateSupplier replaces a supplier's fields; an empty password keeps the
// current one.
func (c *Client) UpdateSupplier(ctx context.Context, token, id string, in domain.SupplierInput) error {
	const endpoint = "PUT /admin/suppliers/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodPut, path: "/admin/suppliers/" + escape(id), token: token, body: in})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, token, id string) error {
	const endpoint = "DELETE /admin/suppliers/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodDelete, path: "/admin/suppliers/" + escape(id), token: token})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// ListOrders returns every supply order.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	const endpoint = "GET /api/orders"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/api/orders", token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Order](endpoint, body, "orders")
}

// OrderPayments returns the payment rows recorded against orders.
func (c *Client) OrderPayments(ctx context.Context, token string) ([]domain.Row, error) {
	return c.rows(ctx, token, "GET /api/orders/payments", "/api/orders/payments")
}
