package domain

// StaffMember models a ferry employee managed from the console.
type StaffMember struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Salary   Amount `json:"salary"`
	Address  string `json:"address"`
	Category string `json:"category"`
}

func (s StaffMember) RecordID() string { return s.ID }

// StaffInput is the write payload for staff. Password is write-only and is
// left out of updates when empty. A nil Salary means the field was left blank.
type StaffInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Salary   *float64 `json:"salary"`
	Address  string   `json:"address"`
	Category string   `json:"category"`
}

// Category groups staff by role on board.
type Category struct {
	ID       string `json:"_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

func (c Category) RecordID() string { return c.ID }

// Label returns whichever of the two naming fields the backend filled.
func (c Category) Label() string {
	if c.Category != "" {
		return c.Category
	}
	return c.Name
}
