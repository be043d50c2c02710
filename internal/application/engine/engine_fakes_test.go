package engine_test

import (
	"context"
	"sort"

	"github.com/jhoicas/stocktrack-api/internal/application/engine"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests del motor.
//
// Reproduce el contrato de los repositorios de PostgreSQL (nil cuando no hay
// fila, filtros conjuntivos, suma agregada con cero por defecto) y un TxRunner
// con semántica real de rollback: si el callback falla, el estado vuelve al
// snapshot previo. failLogAppend permite inyectar un fallo en la bitácora para
// verificar que la mutación acompañante también se revierte.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stocks    map[string]entity.StockType
	locations map[string]entity.Location
	instances map[string]entity.InventoryInstance
	logs      []entity.ActivityLogEntry

	failLogAppend error // si no es nil, Append devuelve este error
}

func newMemStore() *memStore {
	return &memStore{
		stocks:    map[string]entity.StockType{},
		locations: map[string]entity.Location{},
		instances: map[string]entity.InventoryInstance{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.stocks {
		cp.stocks[k] = v
	}
	for k, v := range s.locations {
		cp.locations[k] = v
	}
	for k, v := range s.instances {
		cp.instances[k] = v
	}
	cp.logs = append(cp.logs, s.logs...)
	cp.failLogAppend = s.failLogAppend
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.stocks = snap.stocks
	s.locations = snap.locations
	s.instances = snap.instances
	s.logs = snap.logs
}

// ── StockTypeRepository ──────────────────────────────────────────────────────

type fakeStockRepo struct{ s *memStore }

var _ repository.StockTypeRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Create(_ context.Context, st *entity.StockType) error {
	r.s.stocks[st.ID] = *st
	return nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, id string) (*entity.StockType, error) {
	if st, ok := r.s.stocks[id]; ok {
		cp := st
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetByName(_ context.Context, name string) (*entity.StockType, error) {
	for _, st := range r.s.stocks {
		if st.Name == name {
			cp := st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) List(_ context.Context, f repository.StockTypeFilter) ([]*entity.StockType, error) {
	var out []*entity.StockType
	for _, st := range r.s.stocks {
		if f.ID != nil && st.ID != *f.ID {
			continue
		}
		if f.Name != nil && st.Name != *f.Name {
			continue
		}
		cp := st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeStockRepo) Update(_ context.Context, st *entity.StockType) error {
	r.s.stocks[st.ID] = *st
	return nil
}

func (r *fakeStockRepo) Delete(_ context.Context, id string) error {
	delete(r.s.stocks, id)
	return nil
}

// ── LocationRepository ───────────────────────────────────────────────────────

type fakeLocationRepo struct{ s *memStore }

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func (r *fakeLocationRepo) Create(_ context.Context, loc *entity.Location) error {
	r.s.locations[loc.ID] = *loc
	return nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	if loc, ok := r.s.locations[id]; ok {
		cp := loc
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeLocationRepo) GetByName(_ context.Context, name string) (*entity.Location, error) {
	for _, loc := range r.s.locations {
		if loc.Name == name {
			cp := loc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List(_ context.Context, f repository.LocationFilter) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range r.s.locations {
		if f.ID != nil && loc.ID != *f.ID {
			continue
		}
		if f.Name != nil && loc.Name != *f.Name {
			continue
		}
		cp := loc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeLocationRepo) Update(_ context.Context, loc *entity.Location) error {
	r.s.locations[loc.ID] = *loc
	return nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id string) error {
	delete(r.s.locations, id)
	return nil
}

// ── InstanceRepository ───────────────────────────────────────────────────────

type fakeInstanceRepo struct{ s *memStore }

var _ repository.InstanceRepository = (*fakeInstanceRepo)(nil)

func (r *fakeInstanceRepo) view(inst entity.InventoryInstance) *entity.InstanceView {
	return &entity.InstanceView{
		ID:              inst.ID,
		StockTypeID:     inst.StockTypeID,
		StockName:       r.s.stocks[inst.StockTypeID].Name,
		LocationID:      inst.LocationID,
		LocationName:    r.s.locations[inst.LocationID].Name,
		CurrentQuantity: inst.CurrentQuantity,
	}
}

func (r *fakeInstanceRepo) Create(_ context.Context, inst *entity.InventoryInstance) error {
	r.s.instances[inst.ID] = *inst
	return nil
}

func (r *fakeInstanceRepo) GetByID(_ context.Context, id string) (*entity.InstanceView, error) {
	if inst, ok := r.s.instances[id]; ok {
		return r.view(inst), nil
	}
	return nil, nil
}

func (r *fakeInstanceRepo) List(_ context.Context, f repository.InstanceFilter) ([]*entity.InstanceView, error) {
	var out []*entity.InstanceView
	for _, inst := range r.s.instances {
		v := r.view(inst)
		if f.ID != nil && v.ID != *f.ID {
			continue
		}
		if f.StockName != nil && v.StockName != *f.StockName {
			continue
		}
		if f.LocationName != nil && v.LocationName != *f.LocationName {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInstanceRepo) Update(_ context.Context, inst *entity.InventoryInstance) error {
	r.s.instances[inst.ID] = *inst
	return nil
}

func (r *fakeInstanceRepo) Delete(_ context.Context, id string) error {
	delete(r.s.instances, id)
	return nil
}

func (r *fakeInstanceRepo) CountByStockType(_ context.Context, stockTypeID string) (int, error) {
	n := 0
	for _, inst := range r.s.instances {
		if inst.StockTypeID == stockTypeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInstanceRepo) CountByLocation(_ context.Context, locationID string) (int, error) {
	n := 0
	for _, inst := range r.s.instances {
		if inst.LocationID == locationID {
			n++
		}
	}
	return n, nil
}

// ── ActivityLogRepository ────────────────────────────────────────────────────

type fakeLogRepo struct{ s *memStore }

var _ repository.ActivityLogRepository = (*fakeLogRepo)(nil)

func (r *fakeLogRepo) Append(_ context.Context, e *entity.ActivityLogEntry) error {
	if r.s.failLogAppend != nil {
		return r.s.failLogAppend
	}
	r.s.logs = append(r.s.logs, *e)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, f repository.LogFilter) ([]*entity.ActivityLogEntry, error) {
	var out []*entity.ActivityLogEntry
	for i := range r.s.logs {
		l := r.s.logs[i]
		if f.ID != nil && l.ID != *f.ID {
			continue
		}
		if f.InstanceID != nil && (l.InstanceID == nil || *l.InstanceID != *f.InstanceID) {
			continue
		}
		if f.StockName != nil && l.StockName != *f.StockName {
			continue
		}
		if f.LocationName != nil && l.LocationName != *f.LocationName {
			continue
		}
		if f.ActivityType != nil && l.ActivityType != *f.ActivityType {
			continue
		}
		cp := l
		out = append(out, &cp)
	}
	return out, nil
}

// ── QuantityRepository ───────────────────────────────────────────────────────

type fakeQuantityRepo struct{ s *memStore }

var _ repository.QuantityRepository = (*fakeQuantityRepo)(nil)

func (r *fakeQuantityRepo) List(_ context.Context, f repository.QuantityFilter) ([]*entity.AggregateQuantity, error) {
	var out []*entity.AggregateQuantity
	for _, st := range r.s.stocks {
		if f.StockName != nil && st.Name != *f.StockName {
			continue
		}
		total := 0
		for _, inst := range r.s.instances {
			if inst.StockTypeID != st.ID {
				continue
			}
			if f.LocationName != nil && r.s.locations[inst.LocationID].Name != *f.LocationName {
				continue
			}
			total += inst.CurrentQuantity
		}
		out = append(out, &entity.AggregateQuantity{
			StockTypeID:      st.ID,
			Name:             st.Name,
			RestockThreshold: st.RestockThreshold,
			TotalQuantity:    total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *memStore }

var _ engine.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	instRepo repository.InstanceRepository,
	logRepo repository.ActivityLogRepository,
	stockRepo repository.StockTypeRepository,
	locationRepo repository.LocationRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(
		&fakeInstanceRepo{s: t.s},
		&fakeLogRepo{s: t.s},
		&fakeStockRepo{s: t.s},
		&fakeLocationRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(snap)
	}
	return err
}
