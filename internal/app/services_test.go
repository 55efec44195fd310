package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/payment"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/middleware"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/router"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testAPI struct {
	t       *testing.T
	server  *httptest.Server
	metrics *metrics.MetricsManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.NewNop()
	store := memory.NewStore(nil, log)
	require.NoError(t, store.Bootstrap(context.Background(), seed.Initial()))

	cfg := &config.Config{CurrentUserID: seed.CurrentUserID}
	cfg.Cart.TTL = time.Hour
	cfg.Auth.JWTSecret = testSecret

	clk := clock.New()
	infra := Infra{
		Store:     store,
		Carts:     memory.NewCartRepository(),
		Publisher: nats.NewNoopPublisher(),
		Gateway:   payment.NewSimulatedGateway(0, clk, log),
		Email:     email.NewLogSender("no-reply@marketplace.local", log),
		Clock:     clk,
		Metrics:   metrics.NewMetricsManager("marketplace_test"),
	}
	services := NewServices(infra, cfg, log)
	mux := router.New(services.Handlers(cfg, log), infra.Metrics, testSecret, log.Desugar())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testAPI{t: t, server: srv, metrics: infra.Metrics}
}

func (a *testAPI) do(method, path string, body interface{}, token string, out interface{}) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(a.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAPI_NegotiateAndPay(t *testing.T) {
	api := newTestAPI(t)

	var offer entity.Message
	status := api.do(http.MethodPost, "/api/conversations/3/offers", map[string]string{"sender": "me", "price": "250"}, "", &offer)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "$250", offer.OfferDetails.Price)

	var accepted entity.Message
	status = api.do(http.MethodPost, "/api/conversations/3/offers/"+itoa(offer.ID)+"/accept", map[string]string{"actor": "other"}, "", &accepted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.OfferAccepted, accepted.OfferDetails.Status)

	status = api.do(http.MethodPost, "/api/conversations/3/offers/"+itoa(offer.ID)+"/decline", map[string]string{"actor": "other"}, "", nil)
	assert.Equal(t, http.StatusConflict, status, "resolved offers stay resolved")

	var intent entity.PaymentIntent
	status = api.do(http.MethodPost, "/api/conversations/3/payment-intent", map[string]string{"actor": "me"}, "", &intent)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "$250", intent.Price)
	assert.Equal(t, int64(5), intent.Item.ID)

	var receipt entity.Receipt
	status = api.do(http.MethodPost, "/api/payments/confirm", map[string]interface{}{"intent": intent, "payment_method_id": 1}, "", &receipt)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(5), receipt.ListingID)
	assert.NotEmpty(t, receipt.TransactionID)

	var conv entity.Conversation
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/conversations/3", nil, "", &conv))
	assert.Equal(t, entity.PaymentPaid, conv.PaymentStatus)

	status = api.do(http.MethodPost, "/api/conversations/3/payment-intent", map[string]string{"actor": "me"}, "", nil)
	assert.Equal(t, http.StatusConflict, status, "paid conversations do not unlock payment again")
}

func TestAPI_Errors(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/conversations/404", nil, "", nil))
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/conversations/abc", nil, "", nil))
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/conversations/3/messages", map[string]string{"sender": "me", "text": "   "}, "", nil))
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/conversations/3/messages", map[string]string{"sender": "buyer", "text": "hi"}, "", nil))
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPost, "/api/listings/2/buy-now", nil, "", nil))

	assert.Positive(t, testutil.CollectAndCount(api.metrics.APIErrors))
}

func TestAPI_Search(t *testing.T) {
	api := newTestAPI(t)

	var listings []entity.Listing
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/listings?subcategory=Laptops,Cameras&max_price=500", nil, "", &listings))
	require.NotEmpty(t, listings)
	for _, l := range listings {
		assert.Equal(t, "Electronics", l.Category)
	}

	var categories map[string][]string
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/categories", nil, "", &categories))
	assert.Contains(t, categories, "Bikes")
}

func TestAPI_CartAndNotifications(t *testing.T) {
	api := newTestAPI(t)

	var cart struct {
		Items    []entity.Listing `json:"items"`
		Subtotal string           `json:"subtotal"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/cart/items", map[string]int64{"listing_id": 5}, "", &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "$300.00", cart.Subtotal)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPost, "/api/cart/items", map[string]int64{"listing_id": 2}, "", nil))
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/cart", nil, "", nil))

	var inbox struct {
		Unread int `json:"unread"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/notifications", nil, "", &inbox))
	assert.Equal(t, 3, inbox.Unread)
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/notifications/read-all", nil, "", nil))
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/notifications", nil, "", &inbox))
	assert.Zero(t, inbox.Unread)
}

func TestAPI_AdminRequiresAdminToken(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/admin/dashboard", nil, "", nil))

	userToken, err := middleware.GenerateToken(1, "user", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/admin/dashboard", nil, userToken, nil))

	adminToken, err := middleware.GenerateToken(seed.CurrentUserID, middleware.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	var dashboard struct {
		TotalListings int `json:"total_listings"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/admin/dashboard", nil, adminToken, &dashboard))
	assert.Equal(t, 9, dashboard.TotalListings)

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/admin/listings/9", nil, adminToken, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/listings/9", nil, "", nil))

	// A token with the admin role for a user who is not an administrator is still refused.
	forged, err := middleware.GenerateToken(1, middleware.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/admin/dashboard", nil, forged, nil))
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	resp, err := http.Get(api.server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(api.server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
