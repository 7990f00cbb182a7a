package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"rajas/models"
)

// MemoryProducts is a map-backed ProductStore. It serves tests and the
// pre-database iteration of the service.
type MemoryProducts struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]models.Product
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{
		nextID: 1,
		byID:   make(map[int]models.Product),
	}
}

var _ ProductStore = (*MemoryProducts)(nil)

func (m *MemoryProducts) List(_ context.Context, category string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := []models.Product{}
	for _, id := range ids {
		p := m.byID[id]
		if filterActive(category) && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryProducts) GetByID(_ context.Context, id int) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *MemoryProducts) Create(_ context.Context, p models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	m.byID[p.ID] = p
	cp := p
	return &cp, nil
}

func (m *MemoryProducts) Update(_ context.Context, id int, p models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return nil, ErrNotFound
	}
	p.ID = id
	m.byID[id] = p
	cp := p
	return &cp, nil
}

func (m *MemoryProducts) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// MemoryOrders is the OrderStore counterpart.
type MemoryOrders struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]models.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{
		nextID: 1,
		byID:   make(map[int]models.Order),
	}
}

var _ OrderStore = (*MemoryOrders)(nil)

func (m *MemoryOrders) Create(_ context.Context, o models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.nextID
	m.nextID++
	o.CreatedAt = time.Now().UTC()
	m.byID[o.ID] = o
	cp := o
	return &cp, nil
}

func (m *MemoryOrders) List(_ context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := []models.Order{}
	for _, id := range ids {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *MemoryOrders) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *MemoryOrders) UpdateStatus(_ context.Context, id int, status string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	m.byID[id] = o
	cp := o
	return &cp, nil
}

func (m *MemoryOrders) Stats(_ context.Context) (*models.AdminStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := dayStart.AddDate(0, 0, -mondayOffset(dayStart.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var st models.AdminStats
	for _, o := range m.byID {
		st.TotalOrders++
		if o.Status == "pending" {
			st.PendingOrders++
		}
		if o.Status != "completed" {
			continue
		}
		if !o.CreatedAt.Before(dayStart) {
			st.CompletedToday++
			st.SalesToday += o.TotalPrice
		}
		if !o.CreatedAt.Before(weekStart) {
			st.CompletedThisWeek++
			st.SalesThisWeek += o.TotalPrice
		}
		if !o.CreatedAt.Before(monthStart) {
			st.CompletedThisMonth++
			st.SalesThisMonth += o.TotalPrice
		}
	}
	return &st, nil
}

// mondayOffset gives days since Monday, matching Postgres date_trunc('week').
func mondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}
