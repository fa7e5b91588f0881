package schema

// RequiredSet is an insertion ordered set of property names.
type RequiredSet struct {
	names []string
	seen  map[string]struct{}
}

func NewRequiredSet() *RequiredSet {
	return &RequiredSet{seen: map[string]struct{}{}}
}

// Add appends name unless it is already present.
func (r *RequiredSet) Add(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}

func (r *RequiredSet) Has(name string) bool {
	_, ok := r.seen[name]
	return ok
}

func (r *RequiredSet) Len() int {
	return len(r.names)
}

// Names returns a copy of the names in insertion order.
func (r *RequiredSet) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
