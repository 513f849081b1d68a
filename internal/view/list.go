package view

import "strings"

// Record is anything listed on a page and addressed by id.
type Record interface {
	RecordID() string
}

// Filter keeps the items where any of fields contains term, ignoring case.
// An empty term returns items unchanged.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" || fields == nil {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// List is the state of one list page: the loaded records, the search box
// and the error string shown instead of the table.
type List[T Record] struct {
	Items  []T
	Search string
	Error  string

	fields func(T) []string
}

// NewList builds list state searchable over fields.
func NewList[T Record](items []T, fields func(T) []string) *List[T] {
	if items == nil {
		items = []T{}
	}
	return &List[T]{Items: items, fields: fields}
}

// Failed builds list state that only carries an error string.
func Failed[T Record](msg string) *List[T] {
	return &List[T]{Items: []T{}, Error: msg}
}

// Visible returns the records matching the current search.
func (l *List[T]) Visible() []T {
	return Filter(l.Items, l.Search, l.fields)
}

// Empty reports whether the table has no rows to show.
func (l *List[T]) Empty() bool {
	return len(l.Visible()) == 0
}

// Count is the number of loaded records before filtering.
func (l *List[T]) Count() int {
	return len(l.Items)
}

// Remove drops the record with id and returns a function that puts it back
// in its original position. Unknown ids leave the list untouched.
func (l *List[T]) Remove(id string) (restore func()) {
	for i, item := range l.Items {
		if item.RecordID() != id {
			continue
		}
		removed := item
		l.Items = append(l.Items[:i:i], l.Items[i+1:]...)
		return func() {
			if i > len(l.Items) {
				i = len(l.Items)
			}
			l.Items = append(l.Items[:i:i], append([]T{removed}, l.Items[i:]...)...)
		}
	}
	return func() {}
}

// Find returns the record with id.
func (l *List[T]) Find(id string) (T, bool) {
	for _, item := range l.Items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
