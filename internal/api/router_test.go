package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/agent"
	"github.com/alshifa/clinic-system/internal/api/handler"
	"github.com/alshifa/clinic-system/internal/api/metrics"
	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

const testSecret = "router-test-secret"

// ---- fakes ----

type fakeAuthService struct {
	mu         sync.Mutex
	registerIn ports.RegisterInput
	loginErr   error
}

func (f *fakeAuthService) Register(_ context.Context, in ports.RegisterInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerIn = in
	return strings.ToLower(strings.TrimSpace(in.Email)), nil
}

func (f *fakeAuthService) VerifyOTP(context.Context, string, string) (*ports.VerifyOTPResult, error) {
	return &ports.VerifyOTPResult{Role: domain.RolePatient, Status: "active"}, nil
}

func (f *fakeAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "token-abc", &domain.User{ID: "user-1", Email: "asha@example.com", Role: domain.RolePatient}, nil
}

func (f *fakeAuthService) Profile(_ context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID, Email: "asha@example.com", Role: domain.RolePatient}, nil
}

func (f *fakeAuthService) EnsureAdmin(context.Context, string, string) error { return nil }

type fakeHospitalRepo struct{}

func (fakeHospitalRepo) Create(_ context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	return h, nil
}
func (fakeHospitalRepo) FindByID(context.Context, string) (*domain.Hospital, error) {
	return nil, domain.ErrHospitalNotFound
}
func (fakeHospitalRepo) FindByName(context.Context, string) (*domain.Hospital, error) {
	return nil, domain.ErrHospitalNotFound
}
func (fakeHospitalRepo) FindByOwnerID(context.Context, string) (*domain.Hospital, error) {
	return nil, domain.ErrHospitalNotFound
}
func (fakeHospitalRepo) ListVerified(context.Context) ([]*domain.Hospital, error) {
	return []*domain.Hospital{{ID: "h1", Name: "Al Shifa Dental", Verified: true}}, nil
}
func (fakeHospitalRepo) ListPendingApproval(context.Context) ([]*domain.Hospital, error) {
	return nil, nil
}
func (fakeHospitalRepo) Update(context.Context, *domain.Hospital) error { return nil }
func (fakeHospitalRepo) Delete(context.Context, string) error           { return nil }

type fakeAppointmentService struct {
	bookErr   error
	statusErr error
}

func (f *fakeAppointmentService) ListPublicDoctors(context.Context) ([]ports.PublicDoctor, error) {
	return []ports.PublicDoctor{{ID: "d1", FullName: "Dr. Karim", HospitalName: "Al Shifa Dental"}}, nil
}

func (f *fakeAppointmentService) Book(_ context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &domain.Appointment{ID: "appt-1", DoctorID: in.DoctorID, Status: domain.StatusConfirmed}, nil
}

func (f *fakeAppointmentService) ListForPatient(context.Context, string) ([]ports.PatientAppointmentView, error) {
	return []ports.PatientAppointmentView{{ID: "appt-1", Doctor: "Dr. Karim", Status: "confirmed"}}, nil
}

func (f *fakeAppointmentService) Cancel(context.Context, string, string) error { return nil }

func (f *fakeAppointmentService) DoctorDay(context.Context, string, string) ([]ports.DoctorAppointmentView, error) {
	return []ports.DoctorAppointmentView{{ID: "appt-1", PatientName: "Asha Rahman", Status: "confirmed"}}, nil
}

func (f *fakeAppointmentService) Block(context.Context, string, string, string) (*domain.Appointment, error) {
	return &domain.Appointment{ID: "blk-1", Status: domain.StatusBlocked}, nil
}

func (f *fakeAppointmentService) UpdateStatus(context.Context, string, string, domain.AppointmentStatus) error {
	return f.statusErr
}

type fakeScheduleService struct{}

func (fakeScheduleService) AvailableSlots(context.Context, string, string) ([]domain.Slot, error) {
	return []domain.Slot{{SlotID: "d1-0900", Start: "09:00", End: "09:30", DoctorID: "d1", DoctorName: "Dr. Karim"}}, nil
}

func (fakeScheduleService) UpdateConfig(_ context.Context, _ string, in ports.ScheduleConfigInput) (*domain.ScheduleConfig, error) {
	cfg := domain.DefaultScheduleConfig()
	cfg.SlotMinutes = domain.SlotMinutesForStyle(in.ConsultationStyle)
	return &cfg, nil
}

type fakeInventoryService struct {
	mu       sync.Mutex
	updateIn *ports.InventoryItemInput
}

func (f *fakeInventoryService) List(context.Context, string) ([]*domain.InventoryItem, error) {
	return []*domain.InventoryItem{{ID: "i1", HospitalID: "h1", Name: "Gloves", Quantity: 40}}, nil
}
func (f *fakeInventoryService) Create(_ context.Context, _ string, in ports.InventoryItemInput) (*domain.InventoryItem, error) {
	return &domain.InventoryItem{ID: "i2", HospitalID: "h1", Name: in.Name, Quantity: in.Quantity}, nil
}
func (f *fakeInventoryService) Update(_ context.Context, _ string, itemID string, in ports.InventoryItemInput) (*domain.InventoryItem, error) {
	f.mu.Lock()
	f.updateIn = &in
	f.mu.Unlock()
	return &domain.InventoryItem{ID: itemID, HospitalID: "h1", Name: in.Name, Quantity: in.Quantity, Unit: in.Unit, Threshold: in.Threshold}, nil
}
func (f *fakeInventoryService) Adjust(_ context.Context, _ string, itemID string, delta int) (*domain.InventoryItem, error) {
	return &domain.InventoryItem{ID: itemID, HospitalID: "h1", Quantity: 40 + delta}, nil
}
func (f *fakeInventoryService) Delete(context.Context, string, string) error { return nil }
func (f *fakeInventoryService) LowStock(context.Context, string) ([]*domain.InventoryItem, error) {
	return []*domain.InventoryItem{{ID: "i3", HospitalID: "h1", Name: "Gauze", Quantity: 1, Threshold: 5}}, nil
}

type fakeTreatmentService struct{}

func (fakeTreatmentService) List(context.Context, string) ([]*domain.Treatment, error) {
	return []*domain.Treatment{{ID: "t1", Name: "Root Canal", Cost: 4500}}, nil
}
func (fakeTreatmentService) Create(_ context.Context, _ string, in ports.TreatmentInput) (*domain.Treatment, error) {
	return &domain.Treatment{ID: "t2", Name: in.Name, Cost: in.Cost}, nil
}
func (fakeTreatmentService) Update(_ context.Context, _ string, id string, in ports.TreatmentInput) (*domain.Treatment, error) {
	return &domain.Treatment{ID: id, Name: in.Name, Cost: in.Cost}, nil
}
func (fakeTreatmentService) Delete(context.Context, string, string) error { return nil }

type fakeBillingService struct {
	payErr error
}

func (f *fakeBillingService) IssueForAppointment(context.Context, *domain.Appointment) (*domain.Invoice, error) {
	return &domain.Invoice{Number: "INV-TEST"}, nil
}
func (f *fakeBillingService) ListForPatient(context.Context, string) ([]*domain.Invoice, error) {
	return []*domain.Invoice{{ID: "inv-1", Number: "INV-00000001", Amount: 4500, Currency: domain.DefaultCurrency}}, nil
}
func (f *fakeBillingService) MarkPaid(context.Context, string, string) error { return f.payErr }
func (f *fakeBillingService) Finance(_ context.Context, _ string, period ports.FinancePeriod) (*ports.FinanceSummary, error) {
	return &ports.FinanceSummary{Period: period.Normalize(), Currency: domain.DefaultCurrency, TotalRevenue: 4500, Forecast: 4950}, nil
}

type fakeDashboardService struct{}

func (fakeDashboardService) Doctor(context.Context, string) (*ports.DoctorDashboard, error) {
	return &ports.DoctorDashboard{TodayCount: 2, TotalPatients: 5, Revenue: 9000}, nil
}
func (fakeDashboardService) Organization(context.Context, string) (*ports.OrganizationStats, error) {
	return &ports.OrganizationStats{DoctorCount: 3, VerifiedDoctors: 2}, nil
}

type fakeAdminService struct {
	mu       sync.Mutex
	approved []string
}

func (f *fakeAdminService) PendingVerifications(context.Context) ([]ports.PendingVerification, error) {
	return []ports.PendingVerification{{ID: "h1", Name: "Pearl Dental", Type: ports.PendingTypeOrganization}}, nil
}
func (f *fakeAdminService) Approve(_ context.Context, id, entityType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approved = append(f.approved, entityType+":"+id)
	return nil
}
func (f *fakeAdminService) Reject(context.Context, string, string) error { return nil }

type fakeOrganizationService struct{}

func (fakeOrganizationService) Doctors(context.Context, string) ([]ports.OrganizationRosterDoctor, error) {
	return []ports.OrganizationRosterDoctor{{ID: "d1", FullName: "Dr. Karim", Verified: true}}, nil
}
func (fakeOrganizationService) UpdateLocation(context.Context, string, domain.Location) error {
	return nil
}

type echoAgent struct{}

func (echoAgent) Handle(_ context.Context, in agent.ChatInput) (*agent.ChatReply, error) {
	return &agent.ChatReply{SessionID: "s1", Response: "echo: " + in.Message, ActionTaken: "chat"}, nil
}

// ---- shared server ----

// The router registers prometheus collectors on the default registry, so it
// is built once and shared across tests.
var (
	setupOnce sync.Once
	testEcho  *echo.Echo
	authFake  *fakeAuthService
	apptFake  *fakeAppointmentService
	adminFake *fakeAdminService
	invFake   *fakeInventoryService
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	setupOnce.Do(func() {
		log := zerolog.Nop()
		authFake = &fakeAuthService{}
		apptFake = &fakeAppointmentService{}
		adminFake = &fakeAdminService{}
		invFake = &fakeInventoryService{}

		a := echoAgent{}
		router := agent.NewRouter(a, a, a, a, nil, log)

		testEcho = NewRouter(Handlers{
			Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
				"mongo": func(context.Context) error { return nil },
			}),
			Auth:         handler.NewAuthHandler(authFake, fakeHospitalRepo{}, log),
			Patient:      handler.NewPatientHandler(apptFake, fakeScheduleService{}, &fakeBillingService{}, log),
			Doctor:       handler.NewDoctorHandler(apptFake, fakeScheduleService{}, invFake, fakeTreatmentService{}, &fakeBillingService{}, fakeDashboardService{}, log),
			Organization: handler.NewOrganizationHandler(fakeOrganizationService{}, fakeDashboardService{}, log),
			Admin:        handler.NewAdminHandler(adminFake, log),
			Agent:        handler.NewAgentHandler(router, log),
		}, testSecret, log)
	})
	return testEcho
}

func bearerToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        userID,
		"role":       role,
		"profile_id": role + "-profile",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// ---- tests ----

func TestHealthEndpoints(t *testing.T) {
	e := testServer(t)

	if rec := doJSON(t, e, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodGet, "/readyz", "", ""); rec.Code != http.StatusOK {
		t.Errorf("readyz status = %d, want 200", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "",
		`{"email":"not-an-email","password":"short","full_name":"","role":"pilot"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the envelope")
	}
}

func TestRegisterSuccess(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "",
		`{"email":"asha@example.com","password":"sup3rsecret","full_name":"Asha Rahman","role":"patient","age":29}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	if authFake.registerIn.Age != 29 || authFake.registerIn.Role != domain.RolePatient {
		t.Errorf("service received %+v, want age 29 and role patient", authFake.registerIn)
	}
}

func TestLoginFailureMapsTo401(t *testing.T) {
	e := testServer(t)

	authFake.loginErr = domain.ErrInvalidCredentials
	defer func() { authFake.loginErr = nil }()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"asha@example.com","password":"wrong-pass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (%s)", rec.Code, rec.Body.String())
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/patient/appointments", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRBACBlocksWrongRole(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "user-1", domain.RolePatient)
	rec := doJSON(t, e, http.MethodGet, "/api/v1/doctor/schedule", token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (%s)", rec.Code, rec.Body.String())
	}
}

func TestBookConflictMapsTo409(t *testing.T) {
	e := testServer(t)

	apptFake.bookErr = domain.ErrSlotUnavailable
	defer func() { apptFake.bookErr = nil }()

	token := bearerToken(t, "user-1", domain.RolePatient)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/patient/appointments", token,
		`{"doctor_id":"d1","date":"2030-01-15","time":"10:00"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
}

func TestBookSuccess(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "user-1", domain.RolePatient)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/patient/appointments", token,
		`{"doctor_id":"d1","date":"2030-01-15","time":"10:00 AM","reason":"Cleaning"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var appt domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &appt); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if appt.ID != "appt-1" || appt.Status != domain.StatusConfirmed {
		t.Errorf("appointment = %+v, want appt-1 confirmed", appt)
	}
}

func TestInvalidTransitionMapsTo422(t *testing.T) {
	e := testServer(t)

	apptFake.statusErr = domain.ErrInvalidTransition
	defer func() { apptFake.statusErr = nil }()

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodPut, "/api/v1/doctor/appointments/appt-1/status", token,
		`{"status":"completed"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (%s)", rec.Code, rec.Body.String())
	}
}

func TestStatusValueRejected(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodPut, "/api/v1/doctor/appointments/appt-1/status", token,
		`{"status":"vanished"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
}

func TestPublicDoctorsAndSlots(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/doctors", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("doctors status = %d, want 200", rec.Code)
	}
	var doctors []ports.PublicDoctor
	if err := json.Unmarshal(rec.Body.Bytes(), &doctors); err != nil {
		t.Fatalf("decode doctors: %v", err)
	}
	if len(doctors) != 1 || doctors[0].FullName != "Dr. Karim" {
		t.Errorf("doctors = %+v, want Dr. Karim", doctors)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/v1/doctors/d1/slots?date=2030-01-15", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("slots status = %d, want 200", rec.Code)
	}
	var slots []domain.Slot
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) != 1 || slots[0].Start != "09:00" {
		t.Errorf("slots = %+v, want one slot at 09:00", slots)
	}
}

func TestInventoryDeltaAdjust(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodPut, "/api/v1/doctor/inventory/i1", token, `{"delta":-5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var item domain.InventoryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Quantity != 35 {
		t.Errorf("quantity = %d, want 35", item.Quantity)
	}

	if got := testutil.ToFloat64(metrics.LowStockItems.WithLabelValues("h1")); got != 1 {
		t.Errorf("low stock gauge = %v, want 1 after the adjustment", got)
	}
}

func TestInventoryPartialUpdateRejected(t *testing.T) {
	e := testServer(t)

	invFake.mu.Lock()
	invFake.updateIn = nil
	invFake.mu.Unlock()

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodPut, "/api/v1/doctor/inventory/i1", token, `{"threshold":5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
	invFake.mu.Lock()
	defer invFake.mu.Unlock()
	if invFake.updateIn != nil {
		t.Fatalf("service received %+v, want no update call for a partial body", *invFake.updateIn)
	}
}

func TestInventoryFullUpdate(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodPut, "/api/v1/doctor/inventory/i1", token,
		`{"name":"Gloves","quantity":60,"unit":"boxes","threshold":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	invFake.mu.Lock()
	in := invFake.updateIn
	invFake.mu.Unlock()
	if in == nil {
		t.Fatal("update never reached the service")
	}
	if in.Name != "Gloves" || in.Quantity != 60 || in.Unit != "boxes" || in.Threshold != 5 {
		t.Errorf("service received %+v, want all fields carried through", *in)
	}
}

func TestFinanceSummary(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "doc-user", domain.RoleDoctor)
	rec := doJSON(t, e, http.MethodGet, "/api/v1/doctor/finance?period=weekly", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var summary ports.FinanceSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Period != ports.PeriodWeekly || summary.Forecast != 4950 {
		t.Errorf("summary = %+v, want weekly with forecast 4950", summary)
	}
}

func TestAdminApproveRequiresType(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "admin-user", domain.RoleAdmin)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/admin/approve-account/h1", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodPost, "/api/v1/admin/approve-account/h1?type=organization", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	adminFake.mu.Lock()
	defer adminFake.mu.Unlock()
	if len(adminFake.approved) == 0 || adminFake.approved[len(adminFake.approved)-1] != "organization:h1" {
		t.Errorf("approved = %v, want organization:h1", adminFake.approved)
	}
}

func TestAgentChat(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "user-1", domain.RolePatient)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/agent/chat", token,
		`{"message":"book me an appointment tomorrow","agent_type":"appointment"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var reply agent.ChatReply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if !strings.Contains(reply.Response, "book me an appointment") {
		t.Errorf("response = %q, want the echoed message", reply.Response)
	}
	if reply.SessionID == "" {
		t.Error("expected a session id")
	}
}

func TestAgentChatRequiresMessage(t *testing.T) {
	e := testServer(t)

	token := bearerToken(t, "user-1", domain.RolePatient)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/agent/chat", token, `{"message":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
}
