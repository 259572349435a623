package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// fakeStockroom backs the inventory agent with a small in-memory hospital.
type fakeStockroom struct {
	items map[string]*domain.InventoryItem
}

func newFakeStockroom(items ...*domain.InventoryItem) *fakeStockroom {
	f := &fakeStockroom{items: map[string]*domain.InventoryItem{}}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeStockroom) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeStockroom) FindByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeStockroom) SearchByName(_ context.Context, hospitalID, name string) (*domain.InventoryItem, error) {
	for _, item := range f.items {
		if item.HospitalID == hospitalID && strings.Contains(strings.ToLower(item.Name), strings.ToLower(name)) {
			return item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakeStockroom) ListByHospital(_ context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range f.items {
		if item.HospitalID == hospitalID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeStockroom) ListLowStock(_ context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range f.items {
		if item.HospitalID == hospitalID && item.LowStock() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeStockroom) Update(_ context.Context, item *domain.InventoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockroom) AdjustQuantity(_ context.Context, id string, delta int) (*domain.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	item.Quantity += delta
	item.LastUpdated = time.Now()
	return item, nil
}

func (f *fakeStockroom) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

// fakeDoctorDirectory resolves every user to one fixed doctor profile.
type fakeDoctorDirectory struct{ doctor domain.Doctor }

func (f *fakeDoctorDirectory) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	return d, nil
}

func (f *fakeDoctorDirectory) FindByID(context.Context, string) (*domain.Doctor, error) {
	d := f.doctor
	return &d, nil
}

func (f *fakeDoctorDirectory) FindByUserID(context.Context, string) (*domain.Doctor, error) {
	d := f.doctor
	return &d, nil
}

func (f *fakeDoctorDirectory) ListVerified(context.Context) ([]*domain.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorDirectory) ListUnverified(context.Context) ([]*domain.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorDirectory) ListByHospital(context.Context, string) ([]*domain.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorDirectory) Update(context.Context, *domain.Doctor) error { return nil }
func (f *fakeDoctorDirectory) Delete(context.Context, string) error         { return nil }

func newInventoryAgentUnderTest(items ...*domain.InventoryItem) (*InventoryAgent, *fakeStockroom) {
	stock := newFakeStockroom(items...)
	doctors := &fakeDoctorDirectory{doctor: domain.Doctor{ID: "d1", UserID: "user-doc", HospitalID: "h1"}}
	return NewInventoryAgent(stock, doctors), stock
}

func doctorAsks(msg string) ChatInput {
	return ChatInput{Message: msg, Role: domain.RoleDoctor, UserID: "user-doc"}
}

func TestInventoryAgentStockLookup(t *testing.T) {
	a, _ := newInventoryAgentUnderTest(&domain.InventoryItem{
		ID: "i1", HospitalID: "h1", Name: "Dental Gloves", Quantity: 120, Unit: "box", Threshold: 20,
	})

	reply, err := a.Handle(context.Background(), doctorAsks("how many gloves do we have?"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.ActionTaken != "stock_checked" {
		t.Fatalf("action = %q", reply.ActionTaken)
	}
	if !strings.Contains(reply.Response, "120") || !strings.Contains(reply.Response, "Dental Gloves") {
		t.Fatalf("response = %q", reply.Response)
	}
}

func TestInventoryAgentConsumption(t *testing.T) {
	a, stock := newInventoryAgentUnderTest(&domain.InventoryItem{
		ID: "i1", HospitalID: "h1", Name: "Anesthetic Carpules", Quantity: 50, Threshold: 10,
	})

	reply, err := a.Handle(context.Background(), doctorAsks("we used 5 anesthetic carpules today"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.ActionTaken != "stock_adjusted" {
		t.Fatalf("action = %q", reply.ActionTaken)
	}
	if stock.items["i1"].Quantity != 45 {
		t.Fatalf("quantity = %d", stock.items["i1"].Quantity)
	}
}

func TestInventoryAgentRestock(t *testing.T) {
	a, stock := newInventoryAgentUnderTest(&domain.InventoryItem{
		ID: "i1", HospitalID: "h1", Name: "Masks", Quantity: 10, Threshold: 20,
	})

	if _, err := a.Handle(context.Background(), doctorAsks("add 100 masks to stock")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if stock.items["i1"].Quantity != 110 {
		t.Fatalf("quantity = %d", stock.items["i1"].Quantity)
	}
}

func TestInventoryAgentOverdraw(t *testing.T) {
	a, stock := newInventoryAgentUnderTest(&domain.InventoryItem{
		ID: "i1", HospitalID: "h1", Name: "Syringes", Quantity: 3, Threshold: 5,
	})

	reply, err := a.Handle(context.Background(), doctorAsks("used 10 syringes"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.ActionTaken != "insufficient_stock" {
		t.Fatalf("action = %q", reply.ActionTaken)
	}
	if stock.items["i1"].Quantity != 3 {
		t.Fatalf("quantity changed to %d", stock.items["i1"].Quantity)
	}
}

func TestInventoryAgentLowStockReport(t *testing.T) {
	a, _ := newInventoryAgentUnderTest(
		&domain.InventoryItem{ID: "i1", HospitalID: "h1", Name: "Gloves", Quantity: 5, Threshold: 20},
		&domain.InventoryItem{ID: "i2", HospitalID: "h1", Name: "Masks", Quantity: 200, Threshold: 20},
	)

	reply, err := a.Handle(context.Background(), doctorAsks("what is running low?"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.ActionTaken != "low_stock_report" {
		t.Fatalf("action = %q", reply.ActionTaken)
	}
	if !strings.Contains(reply.Response, "Gloves") || strings.Contains(reply.Response, "Masks") {
		t.Fatalf("response = %q", reply.Response)
	}
}

func TestInventoryAgentRefusesNonDoctors(t *testing.T) {
	a, _ := newInventoryAgentUnderTest()

	reply, err := a.Handle(context.Background(), ChatInput{
		Message: "how much stock do we have", Role: domain.RolePatient,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.ActionTaken != "refused" {
		t.Fatalf("action = %q", reply.ActionTaken)
	}
}
