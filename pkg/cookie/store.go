package cookie

import (
	"strings"
	"sync"
)

type entry struct {
	name  string
	value string
	attrs Attributes
}

// MemoryStore keeps cookies in process with document.cookie semantics:
// insertion order is kept and setting an existing name replaces it in place.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(name string) (string, bool) {
	return GetCookieValue(m.String(), name)
}

func (m *MemoryStore) Set(name, value string, attrs Attributes) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		if m.entries[i].name == name {
			m.entries[i].value = value
			m.entries[i].attrs = attrs
			return
		}
	}

	m.entries = append(m.entries, entry{name: name, value: value, attrs: attrs})
}

func (m *MemoryStore) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		if m.entries[i].name == name {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// String renders the store as a document.cookie header.
func (m *MemoryStore) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pairs := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		pairs = append(pairs, e.name+valueSeparator+e.value)
	}

	return strings.Join(pairs, pairSeparator)
}

// Pending is a cookie write that still has to reach the user agent.
type Pending struct {
	Name  string
	Value string
	Attrs Attributes
}

// RequestStore serves reads from an incoming Cookie header and buffers writes
// so the caller can forward them as Set-Cookie headers.
type RequestStore struct {
	mu      sync.Mutex
	header  string
	pending []Pending
}

func NewRequestStore(header string) *RequestStore {
	return &RequestStore{header: header}
}

func (r *RequestStore) Get(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.pending) - 1; i >= 0; i-- {
		if r.pending[i].Name != name {
			continue
		}
		if !r.pending[i].Attrs.Expires.IsZero() {
			return "", false
		}
		value, ok := GetCookieValue(r.pending[i].Name+valueSeparator+r.pending[i].Value, name)
		return value, ok
	}

	return GetCookieValue(r.header, name)
}

func (r *RequestStore) Set(name, value string, attrs Attributes) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, Pending{Name: name, Value: value, Attrs: attrs})
}

func (r *RequestStore) Delete(name string) {
	r.Set(name, "", ExpiredAttributes())
}

func (r *RequestStore) Pending() []Pending {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Pending, len(r.pending))
	copy(out, r.pending)

	return out
}
