package storage

import (
	"context"
	"sync"
)

// MemorySlots keeps slot payloads in process memory. Useful for
// development and tests where durability is not needed.
type MemorySlots struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: map[string][]byte{}}
}

func (m *MemorySlots) Load(_ context.Context, name string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.slots[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *MemorySlots) Save(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[name] = stored
	return nil
}
