// Package habit tracks named habits and which days of a month each one was
// completed on.
package habit

import "strings"

// Registry is an ordered list of habit names. A habit's position is its
// identity: the completion matrix is keyed by index. Registry is not safe for
// concurrent use; Tracker guards it.
type Registry struct {
	names []string
}

func normalizeName(name string) (string, bool) {
	n := strings.TrimSpace(name)
	return n, n != ""
}

// Append adds name to the end and returns its index. Blank names are ignored.
func (r *Registry) Append(name string) (int, bool) {
	n, ok := normalizeName(name)
	if !ok {
		return -1, false
	}
	r.names = append(r.names, n)
	return len(r.names) - 1, true
}

// Rename replaces the name at index in place.
func (r *Registry) Rename(index int, name string) bool {
	n, ok := normalizeName(name)
	if !ok || !r.has(index) {
		return false
	}
	r.names[index] = n
	return true
}

// Delete removes the habit at index; later habits move down by one.
func (r *Registry) Delete(index int) bool {
	if !r.has(index) {
		return false
	}
	r.names = append(r.names[:index], r.names[index+1:]...)
	return true
}

// Name returns the name at index.
func (r *Registry) Name(index int) (string, bool) {
	if !r.has(index) {
		return "", false
	}
	return r.names[index], true
}

// Names returns a copy of the registry.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of habits.
func (r *Registry) Len() int { return len(r.names) }

func (r *Registry) has(index int) bool {
	return index >= 0 && index < len(r.names)
}
