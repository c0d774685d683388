package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool for memory efficiency
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

// Get retrieves an empty grid from the pool, reshaped to the given dimensions
func (p *GridPool) Get(height, width int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(height, width)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

// Clone is Grid.Clone backed by pooled storage
func (p *GridPool) Clone(src *Grid) *Grid {
	g := p.Get(src.height, src.width)
	g.copyFrom(src)
	return g
}
