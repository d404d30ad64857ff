package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepository drives command handler outcomes in transport tests.
type stubOrderRepository struct {
	order        *order.Order
	getErr       error
	addErr       error
	updateErr    error
	updatedTo    order.Status
	updateCalled bool
}

func (s *stubOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return s.addErr
}

func (s *stubOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func (s *stubOrderRepository) UpdateStatus(_ context.Context, _ kernel.UUID, _, to order.Status) error {
	s.updateCalled = true
	s.updatedTo = to
	return s.updateErr
}

// stubUoW satisfies both commands.UoW and commands.OrderUoW.
type stubUoW struct {
	orders ports.OrderRepository
}

func (s *stubUoW) Begin(_ context.Context) error            { return nil }
func (s *stubUoW) Commit(_ context.Context) error           { return nil }
func (s *stubUoW) Rollback(_ context.Context) error         { return nil }
func (s *stubUoW) OrderRepository() ports.OrderRepository   { return s.orders }
func (s *stubUoW) SellerRepository() ports.SellerRepository { return nil }

type stubUoWFactory struct{ uow *stubUoW }

func (f stubUoWFactory) Create() commands.UoW { return f.uow }

type stubOrderUoWFactory struct{ uow *stubUoW }

func (f stubOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

func newTestServer(orders *stubOrderRepository) (*echo.Echo, *stubOrderRepository) {
	if orders == nil {
		orders = &stubOrderRepository{}
	}
	uow := &stubUoW{orders: orders}

	createHandler := commands.NewCreateOrderCommandHandler(
		stubUoWFactory{uow: uow}, commands.NewDefaultCreationPolicy())
	changeHandler := commands.NewChangeOrderStatusCommandHandler(
		stubOrderUoWFactory{uow: uow}, services.NewTransitionAuthorizer())

	server := adapter.NewServer(
		createHandler,
		changeHandler,
		queries.GetOrdersQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetPackagingOrdersQueryHandler{},
	)

	e := echo.New()
	e.Use(adapter.PrincipalMiddleware())
	servers.RegisterHandlers(e, server)
	return e, orders
}

func doRequest(e *echo.Echo, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func identityHeaders(role string) map[string]string {
	return map[string]string{
		adapter.HeaderUserID:   kernel.NewUUID().String(),
		adapter.HeaderUserRole: role,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func pendingTestOrder(t *testing.T) *order.Order {
	t.Helper()
	customer, err := order.NewCustomerDetails("Nora Aziz", "9715550001", "12 Marina Walk", "")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Walnut Desk", "120cm", 1, 149.90)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderNumber(), kernel.NewUUID(),
		customer, "", 149.90, []order.Item{item}, order.PendingReview)
	require.NoError(t, err)
	return o
}

func TestPrincipalMiddleware(t *testing.T) {
	e, _ := newTestServer(nil)

	t.Run("should return 401 when identity headers are missing", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/packaging/orders", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing identity headers", decodeError(t, rec).Message)
	})

	t.Run("should return 401 for malformed user id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/packaging/orders", "", map[string]string{
			adapter.HeaderUserID:   "not-a-uuid",
			adapter.HeaderUserRole: "PACKAGING_AGENT",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should return 403 for unknown role", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/packaging/orders", "",
			identityHeaders("WAREHOUSE_ELF"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "Unknown role")
	})

	t.Run("should pass non-api paths through anonymously", func(t *testing.T) {
		e.GET("/health", func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "OK")
		})

		rec := doRequest(e, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	validBody := `{
		"customerName": "Nora Aziz",
		"customerPhone": "9715550001",
		"shippingAddress": "12 Marina Walk",
		"totalAmount": 149.90,
		"items": [
			{"productId": "` + kernel.NewUUID().String() + `", "productName": "Walnut Desk", "quantity": 1, "unitPrice": 149.90}
		]
	}`

	t.Run("should create order for seller with embedded profile and return 201", func(t *testing.T) {
		e, _ := newTestServer(nil)
		headers := identityHeaders("SELLER")
		headers[adapter.HeaderSellerID] = kernel.NewUUID().String()

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", validBody, headers)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response["orderId"])
		assert.Regexp(t, `^ORD-\d+-\d+$`, response["orderNumber"])
	})

	t.Run("should return 400 when items are missing", func(t *testing.T) {
		e, _ := newTestServer(nil)
		headers := identityHeaders("SELLER")
		headers[adapter.HeaderSellerID] = kernel.NewUUID().String()
		body := `{"customerName": "Nora Aziz", "customerPhone": "9715550001", "totalAmount": 10, "items": []}`

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", body, headers)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		response := decodeError(t, rec)
		assert.Equal(t, "Invalid request data", response.Message)
		require.NotNil(t, response.Error)
		assert.Contains(t, *response.Error, "items")
	})

	t.Run("should return 400 when customer name is blank", func(t *testing.T) {
		e, _ := newTestServer(nil)
		headers := identityHeaders("SELLER")
		headers[adapter.HeaderSellerID] = kernel.NewUUID().String()
		body := `{"customerName": "", "customerPhone": "9715550001", "totalAmount": 10,
			"items": [{"productId": "` + kernel.NewUUID().String() + `", "productName": "Desk", "quantity": 1, "unitPrice": 10}]}`

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", body, headers)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request data", decodeError(t, rec).Message)
	})

	t.Run("should return 400 when non-privileged role picks an initial status", func(t *testing.T) {
		e, _ := newTestServer(nil)
		headers := identityHeaders("SELLER")
		headers[adapter.HeaderSellerID] = kernel.NewUUID().String()
		body := `{"customerName": "Nora Aziz", "customerPhone": "9715550001", "totalAmount": 10,
			"initialStatus": "CONFIRMED",
			"items": [{"productId": "` + kernel.NewUUID().String() + `", "productName": "Desk", "quantity": 1, "unitPrice": 10}]}`

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", body, headers)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for unparsable initial status", func(t *testing.T) {
		e, _ := newTestServer(nil)
		headers := identityHeaders("SELLER")
		headers[adapter.HeaderSellerID] = kernel.NewUUID().String()
		body := `{"customerName": "Nora Aziz", "customerPhone": "9715550001", "totalAmount": 10,
			"initialStatus": "SHIPPED",
			"items": [{"productId": "` + kernel.NewUUID().String() + `", "productName": "Desk", "quantity": 1, "unitPrice": 10}]}`

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", body, headers)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "Invalid initial status")
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("should confirm a pending order and return 200", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, repo := newTestServer(&stubOrderRepository{order: current})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "CONFIRMED"}`, identityHeaders("CALL_CENTER_AGENT"))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var response servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, current.ID().String(), response.Id.String())
		assert.Equal(t, "CONFIRMED", response.Status)
		assert.Equal(t, current.OrderNumber(), response.OrderNumber)
		assert.Equal(t, "Nora Aziz", response.CustomerName)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Walnut Desk", response.Items[0].ProductName)
		assert.True(t, repo.updateCalled)
		assert.Equal(t, order.Confirmed, repo.updatedTo)
	})

	t.Run("should return 400 with the denial reason verbatim", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, repo := newTestServer(&stubOrderRepository{order: current})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "PACKED"}`, identityHeaders("PACKAGING_AGENT"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Packaging can only pack orders in CONFIRMED.", decodeError(t, rec).Message)
		assert.False(t, repo.updateCalled)
	})

	t.Run("should return 400 for a non-writable target status", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, _ := newTestServer(&stubOrderRepository{order: current})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "DELIVERED"}`, identityHeaders("CALL_CENTER_AGENT"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			"Invalid status requested: DELIVERED. Allowed: CONFIRMED, CANCELLED, PACKED.",
			decodeError(t, rec).Message)
	})

	t.Run("should return 400 for an unparsable status string", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, _ := newTestServer(&stubOrderRepository{order: current})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "SHIPPED"}`, identityHeaders("CALL_CENTER_AGENT"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			"Invalid status requested: SHIPPED. Allowed: CONFIRMED, CANCELLED, PACKED.",
			decodeError(t, rec).Message)
	})

	t.Run("should return 403 when the role may never update status", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, _ := newTestServer(&stubOrderRepository{order: current})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "CONFIRMED"}`, identityHeaders("STOCK_KEEPER"))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "not permitted to update order status")
	})

	t.Run("should return 404 for an unknown order", func(t *testing.T) {
		e, _ := newTestServer(&stubOrderRepository{
			getErr: errs.NewObjectNotFoundError("order", kernel.NewUUID().String()),
		})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
			`{"status": "CONFIRMED"}`, identityHeaders("CALL_CENTER_AGENT"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", decodeError(t, rec).Message)
	})

	t.Run("should return 409 when a concurrent transition won", func(t *testing.T) {
		current := pendingTestOrder(t)
		e, _ := newTestServer(&stubOrderRepository{
			order:     current,
			updateErr: errs.NewVersionIsInvalidErrorWithCause("status"),
		})

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+current.ID().String()+"/status",
			`{"status": "CONFIRMED"}`, identityHeaders("CALL_CENTER_AGENT"))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Order status changed concurrently. Reload and retry.",
			decodeError(t, rec).Message)
	})
}

func TestListOrders_InvalidStatusFilter(t *testing.T) {
	e, _ := newTestServer(nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/orders?status=SHIPPED", "",
		identityHeaders("STOCK_KEEPER"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Invalid status filter")
}
