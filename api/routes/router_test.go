package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cropsense/cropsense-backend/internal/admin"
	"github.com/cropsense/cropsense-backend/internal/auth"
	"github.com/cropsense/cropsense-backend/internal/cropanalysis"
	"github.com/cropsense/cropsense-backend/internal/items"
	"github.com/cropsense/cropsense-backend/internal/marketplace"
	"github.com/cropsense/cropsense-backend/internal/orders"
	"github.com/cropsense/cropsense-backend/internal/users"
	"github.com/cropsense/cropsense-backend/internal/weather"
	pkgAuth "github.com/cropsense/cropsense-backend/pkg/auth"
	"github.com/cropsense/cropsense-backend/pkg/config"
	"github.com/cropsense/cropsense-backend/pkg/db/models"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/metrics"
)

type stubAuthService struct {
	user      users.UserDTO
	refreshed []string
}

func (s *stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.SessionResponse, error) {
	return &auth.SessionResponse{AccessToken: "at", RefreshToken: "rt", User: &s.user}, nil
}

func (s *stubAuthService) Signin(ctx context.Context, req auth.SigninRequest) (*auth.SessionResponse, error) {
	return &auth.SessionResponse{AccessToken: "at", RefreshToken: "rt", User: &s.user}, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.SessionResponse, error) {
	s.refreshed = append(s.refreshed, req.RefreshToken)
	return &auth.SessionResponse{AccessToken: "at2", RefreshToken: "rt2", User: &s.user}, nil
}

func (s *stubAuthService) Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &s.user, nil
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubSessionChecker struct {
	ok bool
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.ok, nil
}

// rawGorm adapts a plain GORM connection to the admin browser's querier.
type rawGorm struct {
	conn *gorm.DB
}

func (r rawGorm) Raw(ctx context.Context, query string, args ...any) *gorm.DB {
	return r.conn.WithContext(ctx).Raw(query, args...)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "cropsense", ExpirationMinutes: 30},
		// Zero windows disable auth throttling so no Redis is needed.
		Admin: config.AdminConfig{BrowseRowLimit: 50},
	}
}

func newTestRouter(t *testing.T, sessions *stubSessionChecker) (http.Handler, *items.Service) {
	t.Helper()

	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}))

	itemsService, err := items.NewService(items.NewRepository(conn))
	require.NoError(t, err)

	om := metrics.NewOrderMetrics(prometheus.NewRegistry())
	ordersService, err := orders.NewService(orders.NewRepository(conn), itemsService, logg, om)
	require.NoError(t, err)

	adminService, err := admin.NewService(rawGorm{conn: conn}, cfg.Admin.BrowseRowLimit)
	require.NoError(t, err)

	handler := NewRouter(
		cfg,
		logg,
		nil,
		nil,
		sessions,
		&stubAuthService{user: users.UserDTO{ID: uuid.New(), Username: "greenacres"}},
		itemsService,
		ordersService,
		weather.NewService(),
		cropanalysis.NewService(),
		marketplace.NewService(),
		adminService,
		nil,
	)
	return handler, itemsService
}

func mintToken(t *testing.T, role *string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:     uuid.New(),
		Username:   "greenacres",
		SystemRole: role,
		JTI:        "jti-router-test",
	})
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestRouterPublicSurface(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: true})

	rec := doRequest(t, handler, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", rec.Header().Get("X-CropSense-Env"))
	require.Equal(t, "live", decodeBody(t, rec)["status"])

	rec = doRequest(t, handler, http.MethodGet, "/api/items", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/weather/forecast?days=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/crop-analysis", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doRequest(t, handler, http.MethodGet, "/api/marketplace/sellers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(3), decodeBody(t, rec)["total"])

	rec = doRequest(t, handler, http.MethodGet, "/api/marketplace/products/prod-001", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterTokenRefresh(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: true})

	rec := doRequest(t, handler, http.MethodPost, "/api/auth/refresh", "", map[string]any{
		"access_token":  "expired-token",
		"refresh_token": "refresh-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "at2", body["access_token"])
	require.Equal(t, "rt2", body["refresh_token"])

	rec = doRequest(t, handler, http.MethodPost, "/api/auth/refresh", "", map[string]any{
		"access_token": "expired-token",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, "refresh token is required")
}

func TestRouterOrderFlow(t *testing.T) {
	handler, itemsService := newTestRouter(t, &stubSessionChecker{ok: true})

	owner := uuid.New()
	listing, err := itemsService.CreateListing(context.Background(), items.CreateItemDTO{
		OwnerID: owner,
		Title:   "Sweet Corn",
		Price:   decimal.NewFromFloat(4.50),
		Contact: "farmer@example.com",
		Type:    "produce",
	})
	require.NoError(t, err)

	buyer := uuid.New()
	rec := doRequest(t, handler, http.MethodPost, "/api/orders", "", map[string]any{
		"item_id": listing.ItemID,
		"qty":     1,
		"userId":  buyer.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Order placed successfully", decodeBody(t, rec)["message"])

	rec = doRequest(t, handler, http.MethodGet, "/api/orders?user="+buyer.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), decodeBody(t, rec)["count"])
}

func TestRouterOrderRejectsMalformedBody(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: true})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterAuthGuard(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: true})

	rec := doRequest(t, handler, http.MethodGet, "/api/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/auth/profile", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/auth/profile", mintToken(t, nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "greenacres", user["username"])
}

func TestRouterRejectsRevokedSession(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: false})

	rec := doRequest(t, handler, http.MethodGet, "/api/auth/profile", mintToken(t, nil), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterAdminRequiresRole(t *testing.T) {
	handler, _ := newTestRouter(t, &stubSessionChecker{ok: true})

	rec := doRequest(t, handler, http.MethodGet, "/api/admin/tables", mintToken(t, nil), nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminRole := "admin"
	rec = doRequest(t, handler, http.MethodGet, "/api/admin/tables", mintToken(t, &adminRole), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.ElementsMatch(t, []any{"items", "orders", "users"}, decodeBody(t, rec)["tables"])
}
