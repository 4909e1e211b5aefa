package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica transaccional: cada Run trabaja sobre una copia
// y solo la publica si fn no devuelve error.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	materials map[string]entity.Material // por ID
	products  map[string]entity.Product  // por SKU
	bom       map[string][]entity.BOMEntry
	movements []entity.InventoryMovement
	batches   []entity.ProductionBatch
	seq       int
	clock     time.Time
}

func (s *memState) clone() *memState {
	c := &memState{
		materials: make(map[string]entity.Material, len(s.materials)),
		products:  make(map[string]entity.Product, len(s.products)),
		bom:       make(map[string][]entity.BOMEntry, len(s.bom)),
		movements: append([]entity.InventoryMovement(nil), s.movements...),
		batches:   append([]entity.ProductionBatch(nil), s.batches...),
		seq:       s.seq,
		clock:     s.clock,
	}
	for k, v := range s.materials {
		c.materials[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.bom {
		c.bom[k] = append([]entity.BOMEntry(nil), v...)
	}
	return c
}

func (s *memState) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func (s *memState) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type memStore struct {
	state     *memState
	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		materials: map[string]entity.Material{},
		products:  map[string]entity.Product{},
		bom:       map[string][]entity.BOMEntry{},
		clock:     time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}}
}

func (m *memStore) addMaterial(id, sku string) {
	m.state.materials[id] = entity.Material{ID: id, SKU: sku, Name: sku, Unit: "kg"}
}

func (m *memStore) addProduct(id, sku string, active bool, lines ...entity.BOMEntry) {
	m.state.products[sku] = entity.Product{ID: id, SKU: sku, Name: sku, IsActive: active}
	m.state.bom[id] = lines
}

func (m *memStore) material(id string) entity.Material { return m.state.materials[id] }

// Run implementa appinv.TxRunner.
func (m *memStore) Run(ctx context.Context, fn func(repos appinv.TxRepos) error) error {
	staged := m.state.clone()
	if err := fn(reposFor(staged)); err != nil {
		m.rollbacks++
		return err
	}
	m.state = staged
	m.commits++
	return nil
}

func reposFor(s *memState) appinv.TxRepos {
	return appinv.TxRepos{
		Materials: memMaterials{s},
		Products:  memProducts{s},
		BOM:       memBOM{s},
		Movements: memMovements{s},
		Batches:   memBatches{s},
	}
}

type memMaterials struct{ s *memState }

func (r memMaterials) GetBySKU(_ context.Context, sku string) (*entity.Material, error) {
	for _, mat := range r.s.materials {
		if mat.SKU == sku {
			cp := mat
			return &cp, nil
		}
	}
	return nil, domain.ErrMaterialNotFound
}

func (r memMaterials) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Material, error) {
	return r.GetBySKU(ctx, sku)
}

func (r memMaterials) GetByIDForUpdate(_ context.Context, id string) (*entity.Material, error) {
	mat, ok := r.s.materials[id]
	if !ok {
		return nil, domain.ErrMaterialNotFound
	}
	return &mat, nil
}

func (r memMaterials) UpdateStockAndCost(_ context.Context, id string, stock, avgCost decimal.Decimal) error {
	mat := r.s.materials[id]
	mat.StockActual, mat.AvgCost = stock, avgCost
	r.s.materials[id] = mat
	return nil
}

func (r memMaterials) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	mat := r.s.materials[id]
	mat.StockActual = stock
	r.s.materials[id] = mat
	return nil
}

type memProducts struct{ s *memState }

func (r memProducts) GetActiveBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := r.s.products[sku]
	if !ok || !p.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

type memBOM struct{ s *memState }

func (r memBOM) ListByProduct(_ context.Context, productID string) ([]entity.BOMEntry, error) {
	lines := append([]entity.BOMEntry(nil), r.s.bom[productID]...)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].MaterialID < lines[j].MaterialID })
	return lines, nil
}

type memMovements struct{ s *memState }

func (r memMovements) Create(_ context.Context, mov *entity.InventoryMovement) error {
	mov.ID = r.s.nextID("mov")
	mov.CreatedAt = r.s.tick()
	r.s.movements = append(r.s.movements, *mov)
	return nil
}

func (r memMovements) ListKardex(_ context.Context, f repository.KardexFilter) ([]entity.KardexEntry, error) {
	var matID string
	for _, mat := range r.s.materials {
		if mat.SKU == f.MaterialSKU {
			matID = mat.ID
		}
	}
	var out []entity.KardexEntry
	for _, mv := range r.s.movements {
		if matID == "" || mv.MaterialID != matID {
			continue
		}
		if f.Desde != nil && mv.CreatedAt.Before(mustDate(*f.Desde)) {
			continue
		}
		if f.Hasta != nil && mv.CreatedAt.After(mustDate(*f.Hasta)) {
			continue
		}
		out = append(out, entity.KardexEntry{
			CreatedAt: mv.CreatedAt, Type: mv.Type, Quantity: mv.Quantity,
			UnitCost: mv.UnitCost, Origin: mv.Origin, Reference: mv.Reference,
		})
	}
	return out, nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type memBatches struct{ s *memState }

func (r memBatches) Create(_ context.Context, b *entity.ProductionBatch) error {
	b.ID = r.s.nextID("lote")
	b.CreatedAt = r.s.tick()
	r.s.batches = append(r.s.batches, *b)
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *string { return &s }
