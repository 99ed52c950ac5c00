package hashmap

import (
	"hash/maphash"
)

// Map is a hash map from keys of type K to values of type V.
//
// The zero value is not usable; create maps with New or NewDefault.
type Map[K comparable, V any] struct {
	table      []*entry[K, V]
	used       int // number of entries
	loadFactor float64
	seed       maphash.Seed
}

// entry is a link in a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// New creates an empty map. It returns an error wrapping ErrIllegalArguments
// for a negative initial capacity or a load factor which is not positive.
func New[K comparable, V any](cfg Config) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Map[K, V]{
		table:      make([]*entry[K, V], cfg.InitialCapacity),
		loadFactor: cfg.LoadFactor,
		seed:       maphash.MakeSeed(),
	}, nil
}

// NewDefault creates an empty map with DefaultConfig.
func NewDefault[K comparable, V any]() *Map[K, V] {
	m, err := New[K, V](DefaultConfig())
	if err != nil {
		panic(err) // default configuration is valid
	}
	return m
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.used
}

// Cap returns the current size of the bucket table.
func (m *Map[K, V]) Cap() int {
	return len(m.table)
}

// Put associates v with k. An existing value for k is overwritten.
//
// If the number of entries has reached the load factor of the current
// capacity, the table is doubled and all entries are re-inserted before k is
// placed.
func (m *Map[K, V]) Put(k K, v V) {
	if float64(m.used) >= float64(len(m.table))*m.loadFactor {
		m.resize(max(2*len(m.table), 1))
	}
	i := m.index(k)
	for e := m.table[i]; e != nil; e = e.next {
		if e.key == k {
			e.value = v
			return
		}
	}
	m.table[i] = &entry[K, V]{key: k, value: v, next: m.table[i]}
	m.used++
}

// Get returns the value stored for k. If k is not present, Get returns the
// zero value of V and false.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if len(m.table) > 0 {
		for e := m.table[m.index(k)]; e != nil; e = e.next {
			if e.key == k {
				return e.value, true
			}
		}
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) index(k K) int {
	return int(maphash.Comparable(m.seed, k) % uint64(len(m.table)))
}

// resize allocates a table of size capacity and re-inserts every entry.
func (m *Map[K, V]) resize(capacity int) {
	tracer().Infof("hashmap: resize %d -> %d (%d entries)", len(m.table), capacity, m.used)
	old := m.table
	m.table = make([]*entry[K, V], capacity)
	for _, bucket := range old {
		for e := bucket; e != nil; {
			next := e.next
			i := m.index(e.key)
			e.next = m.table[i]
			m.table[i] = e
			e = next
		}
	}
}
