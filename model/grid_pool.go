package model

import "sync"

// GridToPool returns a grid to the pool for reuse; a nil pool drops it
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation grids so Step does not allocate a fresh table every tick
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a zeroed grid of the requested shape
func (p *GridPool) Get(height, width int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(height, width)
	return g
}

// Put hands a grid back; its contents are wiped first
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

// newGridFrom takes a grid from pool when one is set, otherwise allocates
func newGridFrom(pool *GridPool, height, width int) *Grid {
	if pool != nil {
		return pool.Get(height, width)
	}
	return NewGrid(height, width)
}
