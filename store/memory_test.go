package store

import (
	"context"
	"reflect"
	"testing"

	"rajas/models"
)

func sampleProduct() models.Product {
	return models.Product{
		Name:        "Premium Cotton Kurta",
		Description: "Elegant handcrafted cotton kurta",
		Price:       2499,
		Category:    "men",
		Image:       "https://example.com/kurta.jpg",
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"White", "Blue"},
		InStock:     true,
	}
}

func TestProducts_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProducts()

	created, err := m.Create(ctx, sampleProduct())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected id assigned")
	}

	got, err := m.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	want := sampleProduct()
	want.ID = created.ID
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("got %+v, want %+v", *got, want)
	}
}

func TestProducts_ListCategoryFilter(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProducts()

	men := sampleProduct()
	women := sampleProduct()
	women.Name = "Designer Lehenga Set"
	women.Category = "women"

	m.Create(ctx, men)
	m.Create(ctx, women)

	got, _ := m.List(ctx, "women")
	if len(got) != 1 || got[0].Category != "women" {
		t.Fatalf("category filter failed: %+v", got)
	}

	// "all" and empty both mean no filter
	for _, filter := range []string{"all", ""} {
		got, _ = m.List(ctx, filter)
		if len(got) != 2 {
			t.Fatalf("filter %q: expected 2 products, got %d", filter, len(got))
		}
	}
}

func TestProducts_UpdateIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProducts()

	created, _ := m.Create(ctx, sampleProduct())

	updated := sampleProduct()
	updated.Name = "Renamed Kurta"
	updated.Price = 1999

	first, err := m.Update(ctx, created.ID, updated)
	if err != nil {
		t.Fatalf("update err: %v", err)
	}
	second, err := m.Update(ctx, created.ID, updated)
	if err != nil {
		t.Fatalf("second update err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("update not idempotent: %+v vs %+v", first, second)
	}

	got, _ := m.GetByID(ctx, created.ID)
	if got.Name != "Renamed Kurta" || got.Price != 1999 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestProducts_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProducts()

	created, _ := m.Create(ctx, sampleProduct())
	if err := m.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete err: %v", err)
	}
	if _, err := m.GetByID(ctx, created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.Delete(ctx, created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func sampleOrder() models.Order {
	return models.Order{
		CustomerName:  "Ali",
		Phone:         "03001234567",
		Email:         "a@b.com",
		CNIC:          "12345",
		Address:       "Lahore",
		ProductID:     1,
		ProductName:   "Premium Cotton Kurta",
		Quantity:      2,
		TotalPrice:    4998,
		PaymentMethod: "COD",
		Status:        "pending",
	}
}

func TestOrders_CreateAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryOrders()

	created, err := m.Create(ctx, sampleOrder())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected id assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
	if created.Status != "pending" {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
}

func TestOrders_UpdateStatusOnlyTouchesStatus(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryOrders()

	created, _ := m.Create(ctx, sampleOrder())

	updated, err := m.UpdateStatus(ctx, created.ID, "shipped")
	if err != nil {
		t.Fatalf("update status err: %v", err)
	}
	if updated.Status != "shipped" {
		t.Fatalf("status not updated: %q", updated.Status)
	}

	want := *created
	want.Status = "shipped"
	if !reflect.DeepEqual(*updated, want) {
		t.Fatalf("other fields changed: %+v vs %+v", *updated, want)
	}

	if _, err := m.UpdateStatus(ctx, 999, "shipped"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrders_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryOrders()

	first, _ := m.Create(ctx, sampleOrder())
	second, _ := m.Create(ctx, sampleOrder())

	if err := m.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete err: %v", err)
	}

	orders, _ := m.List(ctx)
	if len(orders) != 1 || orders[0].ID != second.ID {
		t.Fatalf("unexpected list after delete: %+v", orders)
	}

	if err := m.Delete(ctx, first.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrders_Stats(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryOrders()

	stats, err := m.Stats(ctx)
	if err != nil {
		t.Fatalf("stats err: %v", err)
	}
	if stats.TotalOrders != 0 || stats.PendingOrders != 0 {
		t.Fatalf("expected zero stats on empty store: %+v", stats)
	}

	a, _ := m.Create(ctx, sampleOrder())
	m.Create(ctx, sampleOrder())
	done := sampleOrder()
	done.TotalPrice = 1000
	c, _ := m.Create(ctx, done)

	m.UpdateStatus(ctx, a.ID, "cancelled")
	m.UpdateStatus(ctx, c.ID, "completed")

	stats, _ = m.Stats(ctx)
	if stats.TotalOrders != 3 {
		t.Fatalf("total orders = %d, want 3", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Fatalf("pending orders = %d, want 1", stats.PendingOrders)
	}
	if stats.CompletedToday != 1 || stats.CompletedThisWeek != 1 || stats.CompletedThisMonth != 1 {
		t.Fatalf("completed buckets wrong: %+v", stats)
	}
	if stats.SalesToday != 1000 {
		t.Fatalf("sales today = %v, want 1000", stats.SalesToday)
	}
}
