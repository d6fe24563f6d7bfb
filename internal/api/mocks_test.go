package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/metrics"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	testToken = "valid-token"
	testUID   = "65f1a2b3c4d5e6f708091a2b"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- mocks ---

type mockAuthService struct {
	signUpFn       func(ctx context.Context, in service.SignUpInput) (*service.Session, error)
	loginFn        func(ctx context.Context, email, password string) (*service.Session, error)
	getProfileFn   func(ctx context.Context, uid string) (*domain.User, error)
	authenticateFn func(ctx context.Context, token string) (*domain.Credential, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (*service.Session, error) {
	return m.signUpFn(ctx, in)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.Session, error) {
	return m.loginFn(ctx, email, password)
}
func (m *mockAuthService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	return m.getProfileFn(ctx, uid)
}
func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*domain.Credential, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	if token != testToken {
		return nil, service.ErrInvalidToken
	}
	oid, _ := primitive.ObjectIDFromHex(testUID)
	return &domain.Credential{ID: oid, Email: "jane@example.com"}, nil
}

type mockClientService struct {
	createFn      func(ctx context.Context, c *domain.Client) (string, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Client, error)
	getAllFn      func(ctx context.Context) ([]domain.Client, error)
	updateFn      func(ctx context.Context, id string, c *domain.Client) error
	deleteFn      func(ctx context.Context, id string) error
	searchFn      func(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error)
	photoUploadFn func(ctx context.Context, id, contentType string) (*service.PhotoUpload, error)
	photoURLFn    func(ctx context.Context, id string) (string, error)
}

func (m *mockClientService) Create(ctx context.Context, c *domain.Client) (string, error) {
	return m.createFn(ctx, c)
}
func (m *mockClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockClientService) GetAll(ctx context.Context) ([]domain.Client, error) {
	return m.getAllFn(ctx)
}
func (m *mockClientService) Update(ctx context.Context, id string, c *domain.Client) error {
	return m.updateFn(ctx, id, c)
}
func (m *mockClientService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
func (m *mockClientService) Search(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	return m.searchFn(ctx, f)
}
func (m *mockClientService) RequestPhotoUpload(ctx context.Context, id, contentType string) (*service.PhotoUpload, error) {
	return m.photoUploadFn(ctx, id, contentType)
}
func (m *mockClientService) GetPhotoURL(ctx context.Context, id string) (string, error) {
	return m.photoURLFn(ctx, id)
}

type mockTrainerService struct {
	createFn   func(ctx context.Context, t *domain.Trainer) (string, error)
	getByIDFn  func(ctx context.Context, id string) (*domain.Trainer, error)
	getAllFn   func(ctx context.Context) ([]domain.Trainer, error)
	updateFn   func(ctx context.Context, id string, t *domain.Trainer) error
	deleteFn   func(ctx context.Context, id string) error
	searchFn   func(ctx context.Context, f domain.TrainerFilter) ([]domain.Trainer, error)
	scheduleFn func(ctx context.Context, trainerID string, classIDs []string) error
}

func (m *mockTrainerService) Create(ctx context.Context, t *domain.Trainer) (string, error) {
	return m.createFn(ctx, t)
}
func (m *mockTrainerService) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockTrainerService) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	return m.getAllFn(ctx)
}
func (m *mockTrainerService) Update(ctx context.Context, id string, t *domain.Trainer) error {
	return m.updateFn(ctx, id, t)
}
func (m *mockTrainerService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
func (m *mockTrainerService) Search(ctx context.Context, f domain.TrainerFilter) ([]domain.Trainer, error) {
	return m.searchFn(ctx, f)
}
func (m *mockTrainerService) ManageSchedule(ctx context.Context, trainerID string, classIDs []string) error {
	return m.scheduleFn(ctx, trainerID, classIDs)
}

type mockClassService struct {
	createFn  func(ctx context.Context, c *domain.Class) (string, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Class, error)
	getAllFn  func(ctx context.Context) ([]domain.Class, error)
	updateFn  func(ctx context.Context, id string, c *domain.Class) error
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockClassService) Create(ctx context.Context, c *domain.Class) (string, error) {
	return m.createFn(ctx, c)
}
func (m *mockClassService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockClassService) GetAll(ctx context.Context) ([]domain.Class, error) {
	return m.getAllFn(ctx)
}
func (m *mockClassService) Update(ctx context.Context, id string, c *domain.Class) error {
	return m.updateFn(ctx, id, c)
}
func (m *mockClassService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockPackageService struct {
	createFn  func(ctx context.Context, p *domain.Package) (string, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Package, error)
	getAllFn  func(ctx context.Context) ([]domain.Package, error)
	updateFn  func(ctx context.Context, id string, p *domain.Package) error
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockPackageService) Create(ctx context.Context, p *domain.Package) (string, error) {
	return m.createFn(ctx, p)
}
func (m *mockPackageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockPackageService) GetAll(ctx context.Context) ([]domain.Package, error) {
	return m.getAllFn(ctx)
}
func (m *mockPackageService) Update(ctx context.Context, id string, p *domain.Package) error {
	return m.updateFn(ctx, id, p)
}
func (m *mockPackageService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockStatsService struct {
	countFn   func(ctx context.Context) (int64, error)
	perDayFn  func(ctx context.Context) (map[string]int, error)
	revenueFn func(ctx context.Context) (float64, error)
}

func (m *mockStatsService) MembersCount(ctx context.Context) (int64, error)  { return m.countFn(ctx) }
func (m *mockStatsService) TrainersCount(ctx context.Context) (int64, error) { return m.countFn(ctx) }
func (m *mockStatsService) ClassesCount(ctx context.Context) (int64, error)  { return m.countFn(ctx) }
func (m *mockStatsService) PlansCount(ctx context.Context) (int64, error)    { return m.countFn(ctx) }
func (m *mockStatsService) ClassesPerDay(ctx context.Context) (map[string]int, error) {
	return m.perDayFn(ctx)
}
func (m *mockStatsService) MonthlyRevenue(ctx context.Context) (float64, error) {
	return m.revenueFn(ctx)
}

// --- helpers ---

// newTestRouter wires svcs into a router. Nil services are replaced with
// empty mocks; tests only hit the routes whose mocks they configure.
func newTestRouter(t *testing.T, svcs Services) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	if svcs.Auth == nil {
		svcs.Auth = &mockAuthService{}
	}
	if svcs.Clients == nil {
		svcs.Clients = &mockClientService{}
	}
	if svcs.Trainers == nil {
		svcs.Trainers = &mockTrainerService{}
	}
	if svcs.Classes == nil {
		svcs.Classes = &mockClassService{}
	}
	if svcs.Packages == nil {
		svcs.Packages = &mockPackageService{}
	}
	if svcs.Stats == nil {
		svcs.Stats = &mockStatsService{}
	}

	reg := prometheus.NewRegistry()
	router := gin.New()
	err := SetupRoutes(router, svcs, RouterOptions{
		AllowedOrigin:  "http://localhost:5173",
		SessionTTL:     service.DefaultSessionTTL,
		SecureCookies:  true,
		Metrics:        metrics.NewCollector(reg),
		MetricsHandler: metrics.Handler(reg),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("SetupRoutes() error = %v", err)
	}
	return router, reg
}

// doRequest sends body (marshalled to JSON unless it is a string) with the
// test session cookie when authed is true.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		r = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
}

func assertMessage(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Errorf("status = %d, want %d (body %s)", w.Code, wantStatus, w.Body.String())
	}
	var resp MessageResponse
	decodeBody(t, w, &resp)
	if resp.Message != wantMessage {
		t.Errorf("message = %q, want %q", resp.Message, wantMessage)
	}
}
