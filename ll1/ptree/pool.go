package ptree

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// DefaultArenaCapacity is the initial node capacity of pooled arenas.
const DefaultArenaCapacity = 64

// Pool is a pool of arenas, shared by concurrent parses.
type Pool struct {
	opool *pool.ObjectPool
}

// NewPool creates an arena pool. Arenas are created on demand with room for
// capacity nodes.
func NewPool(ctx context.Context, capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			tracer().Debugf("creating arena")
			return NewArena(capacity), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	return &Pool{opool: pool.NewObjectPool(ctx, factory, config)}
}

// Borrow gets an empty arena from the pool.
func (p *Pool) Borrow(ctx context.Context) (*Arena, error) {
	obj, err := p.opool.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	arena, ok := obj.(*Arena)
	if !ok {
		return nil, fmt.Errorf("arena pool returned %T", obj)
	}
	arena.Reset()
	return arena, nil
}

// Return hands an arena back to the pool.
func (p *Pool) Return(ctx context.Context, arena *Arena) {
	if err := p.opool.ReturnObject(ctx, arena); err != nil {
		tracer().Errorf("cannot return arena to pool: %v", err)
	}
}

// Close closes the pool.
func (p *Pool) Close(ctx context.Context) {
	p.opool.Close(ctx)
}
