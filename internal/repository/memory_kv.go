package repository

import (
	"context"
	"sync"
)

type memoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV keeps collections in process memory only. Used for local
// development and tests; everything is lost on restart.
func NewMemoryKV() KV {
	return &memoryKV{values: make(map[string][]byte)}
}

func (r *memoryKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (r *memoryKV) Save(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	r.values[key] = cp
	return nil
}
