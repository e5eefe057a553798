package world

import "strings"

// ItemList is an ordered list of item names. Items are plain names, so the
// same name may appear more than once.
type ItemList []string

// NewItemList creates a list holding a copy of names
func NewItemList(names ...string) ItemList {
	l := make(ItemList, len(names))
	copy(l, names)
	return l
}

// Len returns the number of items in the list
func (l ItemList) Len() int {
	return len(l)
}

// Index returns the position of the first occurrence of name, or -1
func (l ItemList) Index(name string) int {
	for i, item := range l {
		if item == name {
			return i
		}
	}
	return -1
}

// Contains returns true if name is in the list
func (l ItemList) Contains(name string) bool {
	return l.Index(name) >= 0
}

// Add appends name to the end of the list
func (l *ItemList) Add(name string) {
	*l = append(*l, name)
}

// Remove deletes the first occurrence of name, preserving order.
// Returns false if name was not present.
func (l *ItemList) Remove(name string) bool {
	i := l.Index(name)
	if i < 0 {
		return false
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return true
}

// Names returns a copy of the item names
func (l ItemList) Names() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// Join joins the item names with sep
func (l ItemList) Join(sep string) string {
	return strings.Join(l, sep)
}
