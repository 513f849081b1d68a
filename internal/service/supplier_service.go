package service

import (
	"context"
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// SupplierBackend is the part of the backend behind the suppliers and
// orders pages.
type SupplierBackend interface {
	ListSuppliers(ctx context.Context, token string) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, token, id string) (domain.Supplier, error)
	AddSupplier(ctx context.Context, token string, in domain.SupplierInput) error
	UpdateSupplier(ctx context.Context, token, id string, in domain.SupplierInput) error
	DeleteSupplier(ctx context.Context, token, id string) error
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	OrderPayments(ctx context.Context, token string) ([]domain.Row, error)
}

// SupplierSearchFields are the columns the suppliers search box matches.
func SupplierSearchFields(s domain.Supplier) []string {
	return []string{s.Name, s.Email, s.Phone, s.Address, string(s.Status)}
}

// OrderSearchFields are the columns the orders search box matches.
func OrderSearchFields(o domain.Order) []string {
	return []string{o.SupplierName, o.ItemName, o.Status, o.FinanceStatus, o.DeliveryStatus}
}

// SupplierService manages suppliers and their orders.
type SupplierService struct {
	base
	backend SupplierBackend
}

// NewSupplierService constructs the service.
func NewSupplierService(backend SupplierBackend, deps Dependencies) *SupplierService {
	return &SupplierService{base: newBase(deps), backend: backend}
}

// ListPage loads the suppliers table.
func (s *SupplierService) ListPage(ctx context.Context, caller Caller, search string) (*view.List[domain.Supplier], error) {
	suppliers, err := s.backend.ListSuppliers(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("list_suppliers", err, "Failed to load suppliers.", "Error fetching suppliers.")
		page := view.Failed[domain.Supplier](msg)
		page.Search = search
		return page, err
	}
	page := view.NewList(suppliers, SupplierSearchFields)
	page.Search = search
	return page, nil
}

// Get loads one supplier for the edit form.
func (s *SupplierService) Get(ctx context.Context, caller Caller, id string) (domain.Supplier, error) {
	supplier, err := s.backend.GetSupplier(ctx, caller.Token, id)
	if err != nil {
		return domain.Supplier{}, s.failure("get_supplier", err, "Supplier not found", "Failed to load supplier")
	}
	return supplier, nil
}

func normalizeSupplier(in domain.SupplierInput) domain.SupplierInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

// Create adds a supplier with portal access.
func (s *SupplierService) Create(ctx context.Context, caller Caller, in domain.SupplierInput) error {
	in = normalizeSupplier(in)
	if blank(in.Name, in.Phone, in.Password) {
		return apperrors.NewValidationError("Name, phone and password are required.", nil)
	}
	if in.Status == "" {
		in.Status = domain.SupplierStatusActive
	}
	if err := s.backend.AddSupplier(ctx, caller.Token, in); err != nil {
		return s.failure("add_supplier", err, "Failed to add supplier", "Failed to add supplier")
	}
	s.publish(ctx, caller, events.EventSupplierCreated, "", events.RecordPayload{Name: in.Name, Email: in.Email})
	return nil
}

// Update saves the edit form; an empty password keeps the current one.
func (s *SupplierService) Update(ctx context.Context, caller Caller, id string, in domain.SupplierInput) error {
	in = normalizeSupplier(in)
	if blank(in.Name, in.Phone) {
		return apperrors.NewValidationError("Name and phone are required.", nil)
	}
	if in.Status != "" {
		if _, err := domain.ParseSupplierStatus(string(in.Status)); err != nil {
			return apperrors.NewValidationError("Select a valid supplier status.", nil)
		}
	}
	if err := s.backend.UpdateSupplier(ctx, caller.Token, id, in); err != nil {
		return s.failure("update_supplier", err, "Update failed", "Update failed")
	}
	if in.Status != "" {
		s.recordStatus("supplier", string(in.Status), true)
	}
	s.publish(ctx, caller, events.EventSupplierUpdated, id, events.RecordPayload{Name: in.Name, Email: in.Email})
	return nil
}

// Delete removes a supplier row, restoring it when the backend refuses.
func (s *SupplierService) Delete(ctx context.Context, caller Caller, page *view.List[domain.Supplier], id string) error {
	removed, _ := page.Find(id)
	restore := page.Remove(id)
	if err := s.backend.DeleteSupplier(ctx, caller.Token, id); err != nil {
		restore()
		err = s.failure("delete_supplier", err, "Delete failed", "Delete failed")
		if !apperrors.IsUnauthorized(err) {
			page.Error = Message(err)
		}
		return err
	}
	s.publish(ctx, caller, events.EventSupplierDeleted, id, events.RecordPayload{Name: removed.Name, Email: removed.Email})
	return nil
}

// OrdersPage loads the orders table.
func (s *SupplierService) OrdersPage(ctx context.Context, caller Caller, search string) (*view.List[domain.Order], error) {
	orders, err := s.backend.ListOrders(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("list_orders", err, "Failed to fetch orders", "Failed to fetch orders")
		page := view.Failed[domain.Order](msg)
		page.Search = search
		return page, err
	}
	page := view.NewList(orders, OrderSearchFields)
	page.Search = search
	return page, nil
}

// Orders returns every order, for the printable receipt and exports.
func (s *SupplierService) Orders(ctx context.Context, caller Caller) ([]domain.Order, error) {
	orders, err := s.backend.ListOrders(ctx, caller.Token)
	if err != nil {
		return nil, s.failure("list_orders", err, "Failed to fetch orders", "Failed to fetch orders")
	}
	return orders, nil
}

// OrderPayments loads the order payments table.
func (s *SupplierService) OrderPayments(ctx context.Context, caller Caller) (view.Table, error) {
	rows, err := s.backend.OrderPayments(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("order_payments", err, "Failed to load payments.", "Error fetching payments.")
		return view.Table{Title: "Order Payments", Error: msg}, err
	}
	return view.NewTable("Order Payments", rows), nil
}
