package production

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria y TxRunner falso para los tests del núcleo de
// producción. Las "transacciones" son síncronas: el fn se ejecuta directo
// sobre el estado compartido.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	orders   map[string]*entity.ManufacturingOrder
	works    map[string]*entity.WorkOrder
	entries  []*entity.StockEntry
	nextSeq  int64
	boms     map[string][]entity.BOMLine
	routes   map[string][]string
	centers  []*entity.WorkCenter
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.ManufacturingOrder),
		works:    make(map[string]*entity.WorkOrder),
		boms:     make(map[string][]entity.BOMLine),
		routes:   make(map[string][]string),
	}
}

// addProduct registra un producto con el saldo inicial indicado.
func (s *memStore) addProduct(id, sku string, finished bool, opening int64) {
	s.products[id] = &entity.Product{ID: id, SKU: sku, Name: sku, IsFinished: finished}
	if opening > 0 {
		qty := decimal.NewFromInt(opening)
		s.nextSeq++
		s.entries = append(s.entries, &entity.StockEntry{
			ID: uuid.New().String(), Seq: s.nextSeq, ProductID: id,
			Direction: entity.EntryDirectionIN, Quantity: qty, Change: qty,
			BalanceAfter: qty, SourceType: entity.EntrySourceSeed,
		})
	}
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(o *entity.ManufacturingOrder) error { r.s.orders[o.ID] = o; return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	return r.s.orders[id], nil
}
func (r *memOrderRepo) GetForUpdate(id string) (*entity.ManufacturingOrder, error) {
	return r.s.orders[id], nil
}
func (r *memOrderRepo) UpdateStateIf(id string, from []string, to string, completedAt *time.Time) (bool, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if o.State == f {
			o.State = to
			if completedAt != nil {
				o.CompletedAt = completedAt
			}
			return true, nil
		}
	}
	return false, nil
}
func (r *memOrderRepo) List(limit, offset int) ([]*entity.ManufacturingOrder, error) {
	var out []*entity.ManufacturingOrder
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	return out, nil
}

type memWorkOrderRepo struct{ s *memStore }

func (r *memWorkOrderRepo) Create(wo *entity.WorkOrder) error { r.s.works[wo.ID] = wo; return nil }
func (r *memWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	return r.s.works[id], nil
}
func (r *memWorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return r.s.works[id], nil
}
func (r *memWorkOrderRepo) Update(wo *entity.WorkOrder) error { r.s.works[wo.ID] = wo; return nil }
func (r *memWorkOrderRepo) ListByOrder(orderID string) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, wo := range r.s.works {
		if wo.OrderID == orderID {
			out = append(out, wo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}
func (r *memWorkOrderRepo) CountIncompleteByOrder(orderID string) (int, error) {
	n := 0
	for _, wo := range r.s.works {
		if wo.OrderID == orderID && wo.Status != entity.WorkOrderCompleted {
			n++
		}
	}
	return n, nil
}

type memEntryRepo struct{ s *memStore }

func (r *memEntryRepo) Create(e *entity.StockEntry) error {
	r.s.nextSeq++
	e.Seq = r.s.nextSeq
	r.s.entries = append(r.s.entries, e)
	return nil
}
func (r *memEntryRepo) GetLatestByProduct(productID string) (*entity.StockEntry, error) {
	for i := len(r.s.entries) - 1; i >= 0; i-- {
		if r.s.entries[i].ProductID == productID {
			return r.s.entries[i], nil
		}
	}
	return nil, nil
}
func (r *memEntryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error) {
	var all []*entity.StockEntry
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			all = append(all, e)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type memBOMRepo struct{ s *memStore }

func (r *memBOMRepo) GetActiveByProduct(productID string) ([]entity.BOMLine, error) {
	return r.s.boms[productID], nil
}
func (r *memBOMRepo) ReplaceForProduct(productID string, lines []entity.BOMLine) error {
	r.s.boms[productID] = lines
	return nil
}

type memRouteRepo struct{ s *memStore }

func (r *memRouteRepo) GetStepsByProduct(productID string) ([]string, error) {
	return r.s.routes[productID], nil
}
func (r *memRouteRepo) ReplaceForProduct(productID string, steps []string) error {
	r.s.routes[productID] = steps
	return nil
}

type memCenterRepo struct{ s *memStore }

func (r *memCenterRepo) Create(wc *entity.WorkCenter) error {
	r.s.centers = append(r.s.centers, wc)
	return nil
}
func (r *memCenterRepo) List() ([]*entity.WorkCenter, error) { return r.s.centers, nil }

// fakeTxRunner implementa TxRunner sobre el memStore, sin transacciones reales.
type fakeTxRunner struct{ s *memStore }

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.ManufacturingOrderRepository,
	repository.WorkOrderRepository,
	repository.StockEntryRepository,
	repository.ProductRepository,
) error) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return fn(&memOrderRepo{f.s}, &memWorkOrderRepo{f.s}, &memEntryRepo{f.s}, &memProductRepo{f.s})
}

func (f *fakeTxRunner) RunCreate(ctx context.Context, fn func(
	repository.ManufacturingOrderRepository,
	repository.WorkOrderRepository,
	repository.ProductRepository,
	repository.BOMRepository,
	repository.RouteRepository,
	repository.WorkCenterRepository,
) error) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return fn(&memOrderRepo{f.s}, &memWorkOrderRepo{f.s}, &memProductRepo{f.s},
		&memBOMRepo{f.s}, &memRouteRepo{f.s}, &memCenterRepo{f.s})
}

// stubbornOrderRepo niega la transición condicional a DONE, como la ve el
// perdedor de la carrera por el cierre de la orden.
type stubbornOrderRepo struct{ memOrderRepo }

func (r *stubbornOrderRepo) UpdateStateIf(id string, from []string, to string, completedAt *time.Time) (bool, error) {
	if to == entity.OrderStateDone {
		return false, nil
	}
	return r.memOrderRepo.UpdateStateIf(id, from, to, completedAt)
}

// rollbackTxRunner envuelve al fakeTxRunner con semántica de rollback: si fn
// falla, restaura asientos y órdenes de trabajo al estado previo, igual que
// una transacción real revertida.
type rollbackTxRunner struct {
	*fakeTxRunner
	orderRepo repository.ManufacturingOrderRepository
}

func (f *rollbackTxRunner) Run(ctx context.Context, fn func(
	repository.ManufacturingOrderRepository,
	repository.WorkOrderRepository,
	repository.StockEntryRepository,
	repository.ProductRepository,
) error) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	prevEntries := len(f.s.entries)
	prevSeq := f.s.nextSeq
	prevWorks := make(map[string]entity.WorkOrder, len(f.s.works))
	for id, wo := range f.s.works {
		prevWorks[id] = *wo
	}

	err := fn(f.orderRepo, &memWorkOrderRepo{f.s}, &memEntryRepo{f.s}, &memProductRepo{f.s})
	if err != nil {
		f.s.entries = f.s.entries[:prevEntries]
		f.s.nextSeq = prevSeq
		for id, wo := range prevWorks {
			*f.s.works[id] = wo
		}
	}
	return err
}

// capturePublisher acumula los eventos publicados.
type capturePublisher struct {
	mu     sync.Mutex
	events []entity.DomainEvent
}

func (p *capturePublisher) Publish(_ context.Context, evs ...entity.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evs...)
}

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

// fakeClock devuelve los instantes programados en orden; el último se repite.
type fakeClock struct {
	times []time.Time
	i     int
}

func (c *fakeClock) Now() time.Time {
	t := c.times[c.i]
	if c.i < len(c.times)-1 {
		c.i++
	}
	return t
}
