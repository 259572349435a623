package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
	"github.com/alshifa/clinic-system/internal/infrastructure/notify"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	cp := *u
	cp.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[cp.ID] = &cp
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) SetEmailVerified(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.EmailVerified = true
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubPatientRepo struct {
	mu       sync.Mutex
	seq      int
	patients map[string]*domain.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: map[string]*domain.Patient{}}
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *p
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("patient-%d", r.seq)
	}
	r.patients[cp.ID] = &cp
	return &cp, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPatientRepo) FindByUserID(_ context.Context, userID string) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.patients {
		if p.UserID == userID {
			delete(r.patients, id)
		}
	}
	return nil
}

type stubDoctorRepo struct {
	mu      sync.Mutex
	seq     int
	doctors map[string]*domain.Doctor
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{doctors: map[string]*domain.Doctor{}}
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *d
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("doctor-%d", r.seq)
	}
	r.doctors[cp.ID] = &cp
	return &cp, nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id string) (*domain.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubDoctorRepo) FindByUserID(_ context.Context, userID string) (*domain.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.doctors {
		if d.UserID == userID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) list(filter func(*domain.Doctor) bool) []*domain.Doctor {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Doctor
	for _, d := range r.doctors {
		if filter(d) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubDoctorRepo) ListVerified(_ context.Context) ([]*domain.Doctor, error) {
	return r.list(func(d *domain.Doctor) bool { return d.Verified }), nil
}

func (r *stubDoctorRepo) ListUnverified(_ context.Context) ([]*domain.Doctor, error) {
	return r.list(func(d *domain.Doctor) bool { return !d.Verified }), nil
}

func (r *stubDoctorRepo) ListByHospital(_ context.Context, hospitalID string) ([]*domain.Doctor, error) {
	return r.list(func(d *domain.Doctor) bool { return d.HospitalID == hospitalID }), nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[d.ID]; !ok {
		return domain.ErrDoctorNotFound
	}
	cp := *d
	r.doctors[d.ID] = &cp
	return nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[id]; !ok {
		return domain.ErrDoctorNotFound
	}
	delete(r.doctors, id)
	return nil
}

type stubHospitalRepo struct {
	mu        sync.Mutex
	seq       int
	hospitals map[string]*domain.Hospital
}

func newStubHospitalRepo() *stubHospitalRepo {
	return &stubHospitalRepo{hospitals: map[string]*domain.Hospital{}}
}

func (r *stubHospitalRepo) Create(_ context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *h
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("hospital-%d", r.seq)
	}
	r.hospitals[cp.ID] = &cp
	return &cp, nil
}

func (r *stubHospitalRepo) FindByID(_ context.Context, id string) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hospitals[id]
	if !ok {
		return nil, domain.ErrHospitalNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *stubHospitalRepo) FindByName(_ context.Context, name string) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.hospitals {
		if strings.EqualFold(h.Name, name) {
			cp := *h
			return &cp, nil
		}
	}
	return nil, domain.ErrHospitalNotFound
}

func (r *stubHospitalRepo) FindByOwnerID(_ context.Context, ownerID string) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.hospitals {
		if h.OwnerID == ownerID {
			cp := *h
			return &cp, nil
		}
	}
	return nil, domain.ErrHospitalNotFound
}

func (r *stubHospitalRepo) list(filter func(*domain.Hospital) bool) []*domain.Hospital {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Hospital
	for _, h := range r.hospitals {
		if filter(h) {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubHospitalRepo) ListVerified(_ context.Context) ([]*domain.Hospital, error) {
	return r.list(func(h *domain.Hospital) bool { return h.Verified }), nil
}

func (r *stubHospitalRepo) ListPendingApproval(_ context.Context) ([]*domain.Hospital, error) {
	return r.list(func(h *domain.Hospital) bool { return !h.Verified || h.PendingLocation != nil }), nil
}

func (r *stubHospitalRepo) Update(_ context.Context, h *domain.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hospitals[h.ID]; !ok {
		return domain.ErrHospitalNotFound
	}
	cp := *h
	r.hospitals[h.ID] = &cp
	return nil
}

func (r *stubHospitalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hospitals[id]; !ok {
		return domain.ErrHospitalNotFound
	}
	delete(r.hospitals, id)
	return nil
}

type stubAppointmentRepo struct {
	mu    sync.Mutex
	seq   int
	appts map[string]*domain.Appointment
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appts: map[string]*domain.Appointment{}}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *a
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("appt-%d", r.seq)
	}
	r.appts[cp.ID] = &cp
	return &cp, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubAppointmentRepo) ListByDoctorBetween(_ context.Context, doctorID string, from, to time.Time) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Appointment
	for _, a := range r.appts {
		if a.DoctorID != doctorID {
			continue
		}
		if a.StartTime.Before(from) || !a.StartTime.Before(to) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *stubAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAppointmentRepo) CountDistinctPatients(_ context.Context, doctorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]struct{}{}
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.PatientID != "" {
			seen[a.PatientID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func (r *stubAppointmentRepo) CountByDoctors(_ context.Context, doctorIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := map[string]struct{}{}
	for _, id := range doctorIDs {
		ids[id] = struct{}{}
	}
	var n int64
	for _, a := range r.appts {
		if _, ok := ids[a.DoctorID]; ok {
			n++
		}
	}
	return n, nil
}

type stubInventoryRepo struct {
	mu    sync.Mutex
	seq   int
	items map[string]*domain.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: map[string]*domain.InventoryItem{}}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *item
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("item-%d", r.seq)
	}
	r.items[cp.ID] = &cp
	return &cp, nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *stubInventoryRepo) SearchByName(_ context.Context, hospitalID, name string) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(name)
	for _, item := range r.items {
		if item.HospitalID == hospitalID && strings.Contains(strings.ToLower(item.Name), needle) {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubInventoryRepo) ListByHospital(_ context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	return r.list(func(i *domain.InventoryItem) bool { return i.HospitalID == hospitalID }), nil
}

func (r *stubInventoryRepo) ListLowStock(_ context.Context, hospitalID string) ([]*domain.InventoryItem, error) {
	return r.list(func(i *domain.InventoryItem) bool { return i.HospitalID == hospitalID && i.LowStock() }), nil
}

func (r *stubInventoryRepo) list(filter func(*domain.InventoryItem) bool) []*domain.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.InventoryItem
	for _, item := range r.items {
		if filter(item) {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubInventoryRepo) AdjustQuantity(_ context.Context, id string, delta int) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	item.Quantity += delta
	item.LastUpdated = time.Now().UTC()
	cp := *item
	return &cp, nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

type stubTreatmentRepo struct {
	mu         sync.Mutex
	seq        int
	treatments map[string]*domain.Treatment
}

func newStubTreatmentRepo() *stubTreatmentRepo {
	return &stubTreatmentRepo{treatments: map[string]*domain.Treatment{}}
}

func (r *stubTreatmentRepo) Create(_ context.Context, t *domain.Treatment) (*domain.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *t
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("treatment-%d", r.seq)
	}
	r.treatments[cp.ID] = &cp
	return &cp, nil
}

func (r *stubTreatmentRepo) FindByID(_ context.Context, id string) (*domain.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.treatments[id]
	if !ok {
		return nil, domain.ErrTreatmentNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTreatmentRepo) FindByName(_ context.Context, hospitalID, name string) (*domain.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.treatments {
		if t.HospitalID == hospitalID && strings.EqualFold(t.Name, name) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTreatmentNotFound
}

func (r *stubTreatmentRepo) ListByHospital(_ context.Context, hospitalID string) ([]*domain.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Treatment
	for _, t := range r.treatments {
		if t.HospitalID == hospitalID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTreatmentRepo) Update(_ context.Context, t *domain.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.treatments[t.ID]; !ok {
		return domain.ErrTreatmentNotFound
	}
	cp := *t
	r.treatments[t.ID] = &cp
	return nil
}

func (r *stubTreatmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.treatments[id]; !ok {
		return domain.ErrTreatmentNotFound
	}
	delete(r.treatments, id)
	return nil
}

type stubInvoiceRepo struct {
	mu       sync.Mutex
	seq      int
	invoices map[string]*domain.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: map[string]*domain.Invoice{}}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *inv
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("invoice-%d", r.seq)
	}
	r.invoices[cp.ID] = &cp
	return &cp, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id string) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvoiceRepo) ListByPatient(_ context.Context, patientID string) ([]*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Invoice
	for _, inv := range r.invoices {
		if inv.PatientID == patientID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (r *stubInvoiceRepo) ListByHospitalSince(_ context.Context, hospitalID string, since time.Time) ([]*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Invoice
	for _, inv := range r.invoices {
		if inv.HospitalID == hospitalID && !inv.IssuedAt.Before(since) {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (r *stubInvoiceRepo) MarkPaid(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	if inv.Status != domain.InvoicePending {
		return domain.ErrInvoiceNotPayable
	}
	inv.Status = domain.InvoicePaid
	inv.PaidAt = &at
	return nil
}

// stubOTPStore records issued codes and verifies against the latest one.
type stubOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newStubOTPStore() *stubOTPStore {
	return &stubOTPStore{codes: map[string]string{}}
}

func (s *stubOTPStore) Issue(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *stubOTPStore) Verify(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.codes[email]
	if !ok || stored != code {
		return false, nil
	}
	delete(s.codes, email)
	return true, nil
}

func (s *stubOTPStore) lastCode(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[email]
}

// stubMailer captures outbound mail instead of sending it.
type stubMailer struct {
	mu   sync.Mutex
	sent []notify.EmailMessage
}

func (m *stubMailer) Send(_ context.Context, msg notify.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// failingAppointmentService makes every call fail, for exercising dashboard
// branch degradation.
type failingAppointmentService struct{}

var errBranchDown = errors.New("branch down")

func (failingAppointmentService) ListPublicDoctors(context.Context) ([]ports.PublicDoctor, error) {
	return nil, errBranchDown
}

func (failingAppointmentService) Book(context.Context, ports.BookAppointmentInput) (*domain.Appointment, error) {
	return nil, errBranchDown
}

func (failingAppointmentService) ListForPatient(context.Context, string) ([]ports.PatientAppointmentView, error) {
	return nil, errBranchDown
}

func (failingAppointmentService) Cancel(context.Context, string, string) error { return errBranchDown }

func (failingAppointmentService) DoctorDay(context.Context, string, string) ([]ports.DoctorAppointmentView, error) {
	return nil, errBranchDown
}

func (failingAppointmentService) Block(context.Context, string, string, string) (*domain.Appointment, error) {
	return nil, errBranchDown
}

func (failingAppointmentService) UpdateStatus(context.Context, string, string, domain.AppointmentStatus) error {
	return errBranchDown
}

// nopBilling satisfies ports.BillingService where settlement is not under
// test.
type nopBilling struct {
	issued []string
	err    error
}

func (b *nopBilling) IssueForAppointment(_ context.Context, appt *domain.Appointment) (*domain.Invoice, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.issued = append(b.issued, appt.ID)
	return &domain.Invoice{Number: "INV-TEST", Amount: domain.DefaultConsultationFee}, nil
}

func (b *nopBilling) ListForPatient(context.Context, string) ([]*domain.Invoice, error) {
	return nil, nil
}

func (b *nopBilling) MarkPaid(context.Context, string, string) error { return nil }

func (b *nopBilling) Finance(context.Context, string, ports.FinancePeriod) (*ports.FinanceSummary, error) {
	return nil, nil
}
