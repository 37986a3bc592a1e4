package utils

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces unique, monotonically non-decreasing identifiers for
// newly created reservations.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers. If UUID generation
// fails it falls back to a timestamp plus an in-process counter, which keeps
// the non-decreasing guarantee within a session.
type UUIDGenerator struct {
	mu      sync.Mutex
	counter int64
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.counter++
		return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), g.counter)
	}
	return id.String()
}
