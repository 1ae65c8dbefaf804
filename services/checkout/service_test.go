package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"storefront/models"
	"storefront/services/cart"
	"storefront/services/identity"
	"storefront/services/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.CheckoutSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*models.CheckoutSession)}
}

func (m *memorySessionStore) Get(_ context.Context, shopperID string) (*models.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[shopperID]
	if !ok {
		return nil, nil
	}
	copied := *sess
	return &copied, nil
}

func (m *memorySessionStore) Save(_ context.Context, sess *models.CheckoutSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *sess
	m.sessions[sess.ShopperID] = &copied
	return nil
}

func (m *memorySessionStore) Delete(_ context.Context, shopperID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, shopperID)
	return nil
}

type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]*models.Cart)}
}

func (m *memoryCartStore) Get(_ context.Context, shopperID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	crt, ok := m.carts[shopperID]
	if !ok {
		return nil, nil
	}
	copied := *crt
	copied.Lines = append([]models.CartLine(nil), crt.Lines...)
	return &copied, nil
}

func (m *memoryCartStore) Save(_ context.Context, crt *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *crt
	copied.Lines = append([]models.CartLine(nil), crt.Lines...)
	m.carts[crt.ShopperID] = &copied
	return nil
}

func (m *memoryCartStore) Delete(_ context.Context, shopperID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, shopperID)
	return nil
}

type mockCatalog struct {
	services map[string]models.Service
	products map[string]models.Product
}

func (m *mockCatalog) GetServiceByID(id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (m *mockCatalog) GetProductByID(id string) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type mockCustomerRepo struct {
	profiles map[string]*models.CustomerProfile
}

func (m *mockCustomerRepo) GetByPrincipalID(principalID string) (*models.CustomerProfile, error) {
	return m.profiles[principalID], nil
}

type mockLinkStore struct {
	mu     sync.Mutex
	tokens []string
}

func (m *mockLinkStore) Write(_ context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = append(m.tokens, orderID)
	return nil
}

type checkoutFixture struct {
	svc       *DefaultCheckoutService
	carts     cart.CartService
	cartStore *memoryCartStore
	sessions  *memorySessionStore
	links     *mockLinkStore
	profiles  map[string]*models.CustomerProfile
	received  *models.OrderPayload
}

func newFixture(t *testing.T, ordersHandler http.HandlerFunc) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		cartStore: newMemoryCartStore(),
		sessions:  newMemorySessionStore(),
		links:     &mockLinkStore{},
		profiles:  make(map[string]*models.CustomerProfile),
		received:  &models.OrderPayload{},
	}

	if ordersHandler == nil {
		ordersHandler = func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(f.received))
			json.NewEncoder(w).Encode(models.OrderResult{OK: true, Order: &models.CreatedOrder{ID: "ord-1"}})
		}
	}
	server := httptest.NewServer(ordersHandler)
	t.Cleanup(server.Close)

	cartService := &cart.DefaultCartService{
		Store: f.cartStore,
		Catalog: &mockCatalog{
			services: map[string]models.Service{
				"svc1": {ID: "svc1", Name: "Spa Treatment", Price: 200000, DurationMinutes: 60, Active: true},
			},
			products: map[string]models.Product{
				"p1": {ID: "p1", Name: "Oil", Price: 50, Active: true},
			},
		},
	}
	f.carts = cartService

	f.svc = &DefaultCheckoutService{
		Sessions: f.sessions,
		Carts:    cartService,
		Identity: &identity.DefaultResolver{Customers: &mockCustomerRepo{profiles: f.profiles}},
		Orders: &order.DefaultSubmissionService{
			MerchantID: "m1",
			Client:     order.NewHTTPOrdersClient(server.URL, ""),
			Carts:      cartService,
			LinkStore:  f.links,
		},
	}
	return f
}

func TestOpenEntryStepFollowsCartContents(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	sess, err := f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepInfo, sess.Step)

	_, err = f.carts.AddService(ctx, "s2", "svc1")
	require.NoError(t, err)
	sess, err = f.svc.Open(ctx, "s2", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, sess.Step)
}

func TestOpenFastPathLandsOnConfirm(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.profiles["u1"] = &models.CustomerProfile{ID: "c1", PrincipalID: "u1", Name: "An", Phone: "0901234567"}

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)

	sess, err := f.svc.Open(ctx, "s1", &models.Principal{ID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, models.StepConfirm, sess.Step)
	assert.Equal(t, "An", sess.Customer.Name, "profile pre-fill applied")
}

func TestReopenRecomputesEntryStep(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddService(ctx, "s1", "svc1")
	require.NoError(t, err)
	sess, err := f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	require.Equal(t, models.StepDateTime, sess.Step)

	// The service is removed between opens; the entry step must follow.
	_, err = f.carts.RemoveLine(ctx, "s1", "svc1")
	require.NoError(t, err)
	_, err = f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)

	sess, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepInfo, sess.Step)
}

func TestGuardBlocksNext(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)

	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An"})
	require.NoError(t, err)

	_, err = f.svc.Next(ctx, "s1")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "guardBlocked", flowErr.Code)

	sess, err := f.svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepInfo, sess.Step, "step unchanged while phone is missing")
}

func TestGuestBookingScenario(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddService(ctx, "s1", "svc1")
	require.NoError(t, err)

	sess, err := f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	require.Equal(t, models.StepDateTime, sess.Step)

	_, err = f.svc.SelectSchedule(ctx, "s1", "2025-03-10", "14:00")
	require.NoError(t, err)
	sess, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, models.StepInfo, sess.Step)

	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	sess, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, models.StepConfirm, sess.Step)

	result, err := f.svc.Submit(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, "ord-1", result.OrderID)
	assert.Equal(t, "ord-1", result.GuestOrderID)
	assert.Equal(t, models.StepSuccess, result.Session.Step)
	assert.Equal(t, []string{"ord-1"}, f.links.tokens)

	crt, err := f.carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, crt.IsEmpty(), "submission success clears the cart")

	// Wire contract for the scenario.
	assert.Nil(t, f.received.CustomerID)
	assert.Equal(t, models.OrderStatusPending, f.received.Status)
	assert.Equal(t, 200000.0, f.received.TotalPrice)
	require.NotNil(t, f.received.BookingDate)
	assert.Equal(t, "2025-03-10", *f.received.BookingDate)
	require.NotNil(t, f.received.StartTime)
	assert.Equal(t, "14:00", *f.received.StartTime)
	require.NotNil(t, f.received.EndTime)
	assert.Equal(t, "15:00", *f.received.EndTime)
	require.Len(t, f.received.CartItems, 1)
	assert.Equal(t, "service", f.received.CartItems[0].Type)
	assert.Equal(t, "svc1", f.received.CartItems[0].ID)
	assert.Equal(t, 60, f.received.CartItems[0].DurationMinutes)
}

func TestSuccessPersistsAcrossReopen(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)
	result, err := f.svc.Submit(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, models.StepSuccess, result.Session.Step)

	sess, err := f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, sess.Step, "success view persists until explicitly closed")
	assert.Equal(t, result.Session.SessionID, sess.SessionID)

	require.NoError(t, f.svc.Close(ctx, "s1"))
	sess, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StepInfo, sess.Step)
}

func TestDuplicateSubmitRejected(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)

	// Simulate an in-flight submission.
	sess, err := f.sessions.Get(ctx, "s1")
	require.NoError(t, err)
	sess.Submitting = true
	require.NoError(t, f.sessions.Save(ctx, sess))

	_, err = f.svc.Submit(ctx, "s1")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "duplicateSubmit", flowErr.Code)
}

func TestSubmitFailureKeepsSessionForRetry(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(models.OrderResult{OK: false, Error: "orders API down"})
	})
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "s1")
	var subErr *order.SubmissionError
	require.ErrorAs(t, err, &subErr)

	sess, err := f.svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, sess.Step)
	assert.False(t, sess.Submitting, "flag released for retry")
	assert.Equal(t, "An", sess.Customer.Name, "form data intact")

	crt, err := f.carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, crt.IsEmpty(), "failed submission must not clear the cart")
}

func TestSubmitRefusedOutsideConfirm(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "s1")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "guardBlocked", flowErr.Code)
}

func TestSubmitRefusedWithEmptyCart(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)

	// The cart empties between confirmation and submit.
	require.NoError(t, f.carts.Clear(ctx, "s1"))

	_, err = f.svc.Submit(ctx, "s1")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "emptyCart", flowErr.Code)
}

func TestResetRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddService(ctx, "s1", "svc1")
	require.NoError(t, err)

	fresh, err := f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)

	_, err = f.svc.SelectSchedule(ctx, "s1", "2025-03-10", "14:00")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "s1")
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{Name: "An", Phone: "0901234567", Notes: "ring twice"})
	require.NoError(t, err)

	sess, err := f.svc.Reset(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, fresh.Step, sess.Step, "reset re-derives the same entry step as a fresh session")
	assert.Empty(t, sess.SelectedDate)
	assert.Empty(t, sess.SelectedTime)
	assert.Empty(t, sess.Customer.Notes)
	assert.Empty(t, sess.Customer.Name, "guest contact fields are cleared")
	assert.Empty(t, sess.Customer.Phone)
}

func TestResetKeepsLinkedCustomerIdentityFields(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.profiles["u1"] = &models.CustomerProfile{ID: "c1", PrincipalID: "u1", Name: "An", Phone: "0901234567"}

	_, err := f.carts.AddService(ctx, "s1", "svc1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", &models.Principal{ID: "u1"})
	require.NoError(t, err)
	_, err = f.svc.SelectSchedule(ctx, "s1", "2025-03-10", "14:00")
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, "s1", models.CustomerForm{
		Name: "An", Phone: "0901234567", Notes: "ring twice",
	})
	require.NoError(t, err)

	sess, err := f.svc.Reset(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, "An", sess.Customer.Name, "linked customer contact fields persist")
	assert.Equal(t, "0901234567", sess.Customer.Phone)
	assert.Empty(t, sess.Customer.Notes)
	assert.Empty(t, sess.SelectedDate)
}

func TestCloseLeavesCartUntouched(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Open(ctx, "s1", nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.Close(ctx, "s1"))

	_, err = f.svc.Get(ctx, "s1")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, "sessionNotFound", flowErr.Code)

	crt, err := f.carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, crt.IsEmpty(), "cancel never clears the cart")
}
