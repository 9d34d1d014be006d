package sidebar

import (
	"strings"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
)

// Sidebar is a named, ordered list of navigation items.
type Sidebar struct {
	Key   string
	Items []Item
}

// Registry is the immutable set of sidebars handed to the host framework.
// Key order and item order are preserved exactly as declared.
type Registry struct {
	keys     []string
	sidebars map[string][]Item
}

// NewRegistry builds a registry from the given sidebars in order.
// Keys must be non-empty and unique.
func NewRegistry(sidebars ...Sidebar) (*Registry, error) {
	r := &Registry{
		keys:     make([]string, 0, len(sidebars)),
		sidebars: make(map[string][]Item, len(sidebars)),
	}
	for i, sb := range sidebars {
		key := strings.TrimSpace(sb.Key)
		if key == "" {
			return nil, errors.ValidationError("sidebar key is empty").
				WithContext("index", i).
				Build()
		}
		if _, exists := r.sidebars[key]; exists {
			return nil, errors.NewError(errors.CategoryAlreadyExists, "duplicate sidebar key").
				WithContext("sidebar", key).
				Build()
		}
		items := make([]Item, len(sb.Items))
		for j, it := range sb.Items {
			items[j] = it.clone()
		}
		r.keys = append(r.keys, key)
		r.sidebars[key] = items
	}
	return r, nil
}

// MustRegistry is NewRegistry for declarations known to be valid at compile time.
func MustRegistry(sidebars ...Sidebar) *Registry {
	r, err := NewRegistry(sidebars...)
	if err != nil {
		panic(err)
	}
	return r
}

// Keys returns the sidebar keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of sidebars.
func (r *Registry) Len() int { return len(r.keys) }

// Items returns a copy of the items declared for key.
func (r *Registry) Items(key string) ([]Item, bool) {
	items, ok := r.sidebars[key]
	if !ok {
		return nil, false
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out, true
}

// Sidebars returns copies of all sidebars in declaration order.
func (r *Registry) Sidebars() []Sidebar {
	out := make([]Sidebar, 0, len(r.keys))
	for _, k := range r.keys {
		items, _ := r.Items(k)
		out = append(out, Sidebar{Key: k, Items: items})
	}
	return out
}

// Links returns every external link item across all sidebars, in order.
func (r *Registry) Links() []LinkSpec {
	var out []LinkSpec
	for _, k := range r.keys {
		for _, it := range r.sidebars[k] {
			if it.IsLink() {
				out = append(out, *it.Link)
			}
		}
	}
	return out
}

// ContentDirs returns the distinct autogenerated directory names in first-seen order.
func (r *Registry) ContentDirs() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, k := range r.keys {
		for _, it := range r.sidebars[k] {
			if !it.IsAutogenerated() {
				continue
			}
			if _, ok := seen[it.DirName]; ok {
				continue
			}
			seen[it.DirName] = struct{}{}
			out = append(out, it.DirName)
		}
	}
	return out
}
