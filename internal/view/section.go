package view

import "strings"

type sectionRule struct {
	fragment string
	title    string
}

// First match wins, so the users sub-tabs come before the broader rules.
var sectionRules = []sectionRule{
	{"/users/active", "Active Users"},
	{"/users/pending", "Pending Users"},
	{"/users/suspended", "Suspended Users"},
	{"/users/rejected", "Rejected Users"},
	{"/users/add", "Add User"},
	{"/users", "Active Users"},
	{"/staff", "Employee"},
	{"/add_staff", "Employee"},
	{"/edit_staff", "Employee"},
	{"/bookings", "Bookings"},
	{"/category", "Category"},
	{"/add_category", "Category"},
	{"/suppliers", "Suppliers"},
	{"/orders", "Orders"},
	{"/reports", "Reports"},
	{"/activity", "Activity"},
}

// SectionTitle is the dashboard heading for a request path.
func SectionTitle(path string) string {
	for _, rule := range sectionRules {
		if strings.Contains(path, rule.fragment) {
			return rule.title
		}
	}
	return "Dashboard"
}
