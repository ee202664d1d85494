package memory

import (
	"context"
	"sort"
	"sync"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/core/ports"
	"jikoni/internal/pkg/errs"
)

var _ ports.TableRegistry = &TableRegistry{}

// TableRegistry keeps the restaurant's tables in memory.
type TableRegistry struct {
	mu     sync.RWMutex
	tables map[kernel.UUID]*table.Table
}

// NewTableRegistry creates an empty table registry.
func NewTableRegistry() *TableRegistry {
	return &TableRegistry{
		tables: make(map[kernel.UUID]*table.Table),
	}
}

// Add inserts a new table.
func (r *TableRegistry) Add(_ context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables[aggregate.ID()] = aggregate
	return nil
}

// Update persists status changes to an existing table.
func (r *TableRegistry) Update(_ context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("tableID", aggregate.ID())
	}
	r.tables[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a table by its unique identifier.
func (r *TableRegistry) Get(_ context.Context, id kernel.UUID) (*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tbl, ok := r.tables[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tableID", id)
	}
	return tbl, nil
}

// GetAll retrieves every table in floor-plan order.
func (r *TableRegistry) GetAll(_ context.Context) ([]*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*table.Table) bool { return true }), nil
}

// GetAllAvailable retrieves only tables selectable for a new order.
func (r *TableRegistry) GetAllAvailable(_ context.Context) ([]*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(tbl *table.Table) bool { return tbl.IsAvailable() }), nil
}

func (r *TableRegistry) collect(keep func(*table.Table) bool) []*table.Table {
	tables := make([]*table.Table, 0, len(r.tables))
	for _, tbl := range r.tables {
		if keep(tbl) {
			tables = append(tables, tbl)
		}
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Number() < tables[j].Number()
	})
	return tables
}
