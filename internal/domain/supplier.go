package domain

import "fmt"

// SupplierStatus gates a supplier's portal access.
type SupplierStatus string

const (
	SupplierStatusActive    SupplierStatus = "active"
	SupplierStatusSuspended SupplierStatus = "suspended"
)

// SupplierStatuses lists the selectable supplier statuses.
var SupplierStatuses = []SupplierStatus{SupplierStatusActive, SupplierStatusSuspended}

// ParseSupplierStatus validates a raw status value.
func ParseSupplierStatus(raw string) (SupplierStatus, error) {
	for _, s := range SupplierStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown supplier status %q", raw)
}

// Supplier delivers goods for the ferry operation.
type Supplier struct {
	ID      string         `json:"_id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address string         `json:"address"`
	Status  SupplierStatus `json:"status"`
	// Password only tells whether the supplier can log in; it is never rendered.
	Password string `json:"password"`
}

func (s Supplier) RecordID() string { return s.ID }

// HasLoginAccess reports whether a password was set for the supplier portal.
func (s Supplier) HasLoginAccess() bool {
	return s.Password != ""
}

// SupplierInput is the write payload for suppliers.
type SupplierInput struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Status   SupplierStatus `json:"status,omitempty"`
	Password string         `json:"password,omitempty"`
}

// Order is a purchase placed with a supplier.
type Order struct {
	ID             string    `json:"_id"`
	SupplierName   string    `json:"supplier_name"`
	ItemName       string    `json:"item_name"`
	Quantity       Amount    `json:"quantity"`
	Amount         Amount    `json:"amount"`
	Status         string    `json:"status"`
	FinanceStatus  string    `json:"finance_status"`
	DeliveryStatus string    `json:"delivery_status"`
	DeliveredAt    Timestamp `json:"delivered_at"`
	CreatedAt      Timestamp `json:"created_at"`
}

func (o Order) RecordID() string { return o.ID }
