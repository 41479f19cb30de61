package syntax

// OrderedMap is the "ordered name-keyed mapping" §3 requires of every
// schema/executable collection: insertion order is preserved for
// iteration, and Insert rejects a name already present so first-insertion
// wins (duplicates are the caller's job to diagnose, not silently drop or
// overwrite). Set is the escape hatch built-in redefinition needs: replace
// the value at a name without disturbing its position.
type OrderedMap[T any] struct {
	keys []string
	vals map[string]T
}

func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{vals: make(map[string]T)}
}

// Insert adds name→val and reports true, or reports false without
// modifying the map if name is already present.
func (m *OrderedMap[T]) Insert(name string, val T) bool {
	if _, exists := m.vals[name]; exists {
		return false
	}
	m.keys = append(m.keys, name)
	m.vals[name] = val
	return true
}

// Set installs name→val unconditionally, appending name to the key order
// only if it was not already present.
func (m *OrderedMap[T]) Set(name string, val T) {
	if _, exists := m.vals[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.vals[name] = val
}

// Get returns the value at name, if present.
func (m *OrderedMap[T]) Get(name string) (T, bool) {
	v, ok := m.vals[name]
	return v, ok
}

// Has reports whether name is present.
func (m *OrderedMap[T]) Has(name string) bool {
	_, ok := m.vals[name]
	return ok
}

// Delete removes name, if present, preserving the relative order of the
// remaining keys.
func (m *OrderedMap[T]) Delete(name string) {
	if _, exists := m.vals[name]; !exists {
		return
	}
	delete(m.vals, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the names in insertion order.
func (m *OrderedMap[T]) Keys() []string { return m.keys }

// Len returns the number of entries.
func (m *OrderedMap[T]) Len() int { return len(m.keys) }

// ForEach visits every entry in insertion order.
func (m *OrderedMap[T]) ForEach(fn func(name string, val T)) {
	for _, k := range m.keys {
		fn(k, m.vals[k])
	}
}
