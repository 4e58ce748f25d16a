package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles scratch grids, keeping allocations flat when the driver
// snapshots the board every tick.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(rows, columns int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, columns)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.ClearAll()
	p.pool.Put(g)
}
