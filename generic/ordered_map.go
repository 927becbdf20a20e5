package generic

// OrderedMap is a map that remembers the order in which keys were first added. Overwriting an existing key keeps its
// original position. The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores value under key, returning true if key was not already present.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	_, found := m.values[key]
	if !found {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return !found
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	value, found := m.values[key]
	return value, found
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// Delete removes key, returning true if it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	if !m.Has(key) {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return []K{}
	}
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls f for every entry in insertion order.
func (m *OrderedMap[K, V]) Each(f func(key K, value V)) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		f(key, m.values[key])
	}
}

// Clone returns a shallow copy. Cloning a nil map gives an empty map.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	res := NewOrderedMap[K, V]()
	m.Each(func(key K, value V) {
		res.Set(key, value)
	})
	return res
}

// Merge copies every entry of other into m, overwriting values of keys that already exist.
func (m *OrderedMap[K, V]) Merge(other *OrderedMap[K, V]) *OrderedMap[K, V] {
	other.Each(func(key K, value V) {
		m.Set(key, value)
	})
	return m
}
