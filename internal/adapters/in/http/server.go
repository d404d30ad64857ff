package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getPackagingOrdersHandler queries.GetPackagingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPackagingOrdersHandler queries.GetPackagingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeStatusHandler:       changeStatusHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getPackagingOrdersHandler: getPackagingOrdersHandler,
	}
}

// ListOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	query, err := queries.NewGetOrdersQuery(p)
	if err != nil {
		return respondError(ctx, err)
	}

	if params.Status != nil {
		status, statusErr := order.StatusFromString(*params.Status)
		if statusErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Message: "Invalid status filter: " + *params.Status,
			})
		}
		if query, err = query.WithStatusFilter(status); err != nil {
			return respondError(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaries(orders))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid request body",
		})
	}

	customer, err := order.NewCustomerDetails(body.CustomerName, body.CustomerPhone,
		stringValue(body.ShippingAddress), stringValue(body.Notes))
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, itemBody := range body.Items {
		productID, productErr := kernel.UUIDFromBytes(itemBody.ProductId[:])
		if productErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Message: "Invalid productId",
			})
		}

		item, itemErr := order.NewItem(productID, itemBody.ProductName,
			stringValue(itemBody.VariantLabel), itemBody.Quantity, itemBody.UnitPrice)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	orderNumber := order.NewOrderNumber()
	cmd, err := commands.NewCreateOrderCommand(p, orderID, orderNumber,
		customer, stringValue(body.InternalNotes), body.TotalAmount, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if body.SellerId != nil {
		sellerID, sellerErr := kernel.UUIDFromBytes((*body.SellerId)[:])
		if sellerErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Message: "Invalid sellerId",
			})
		}
		if cmd, err = cmd.WithSellerID(sellerID); err != nil {
			return respondError(ctx, err)
		}
	}

	if body.InitialStatus != nil {
		status, statusErr := order.StatusFromString(*body.InitialStatus)
		if statusErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Message: "Invalid initial status: " + *body.InitialStatus,
			})
		}
		if cmd, err = cmd.WithInitialStatus(status); err != nil {
			return respondError(ctx, err)
		}
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"orderId":     orderID.String(),
		"orderNumber": orderNumber,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid orderId",
		})
	}

	query, err := queries.NewGetOrderQuery(p, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(response))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - moves an
// order through the lifecycle, subject to the caller's transition authority.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid orderId",
		})
	}

	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid request body",
		})
	}

	requested, err := order.StatusFromString(body.Status)
	if err != nil {
		// An unparsable target reads the same as a non-writable one to the
		// operator, so reuse the authorizer's wording.
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid status requested: " + body.Status + ". Allowed: CONFIRMED, CANCELLED, PACKED.",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(p, orderID, requested)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderFromAggregate(updated))
}

// ListPackagingOrders handles GET /api/v1/packaging/orders - the packaging
// work queue, oldest confirmed orders first.
func (s *Server) ListPackagingOrders(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	query, err := queries.NewGetPackagingOrdersQuery(p)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getPackagingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaries(orders))
}

// respondError maps application and domain errors onto the HTTP contract.
// Transition denials surface their reason verbatim with 400; authority and
// visibility violations are 403; unknown objects 404; lost status races 409.
func respondError(ctx echo.Context, err error) error {
	var (
		transitionDenied *services.TransitionDeniedError
		roleNotPermitted *services.RoleNotPermittedError
		accessDenied     *services.AccessDeniedError
	)

	switch {
	case errors.As(err, &transitionDenied):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Message: transitionDenied.Reason})

	case errors.As(err, &roleNotPermitted):
		return ctx.JSON(http.StatusForbidden, servers.Error{Message: roleNotPermitted.Error()})

	case errors.As(err, &accessDenied):
		return ctx.JSON(http.StatusForbidden, servers.Error{Message: accessDenied.Reason})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Message: "Order not found"})

	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Message: "Order status changed concurrently. Reload and retry.",
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		detail := err.Error()
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Message: "Invalid request data",
			Error:   &detail,
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Message: "Internal server error",
		})
	}
}

func respondMissingPrincipal(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Message: "Missing identity headers",
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toSummaries(orders []queries.OrderSummaryResponse) []servers.OrderSummary {
	response := make([]servers.OrderSummary, len(orders))
	for i, summary := range orders {
		response[i] = servers.OrderSummary{
			Id:           summary.ID.Bytes(),
			OrderNumber:  summary.OrderNumber,
			SellerId:     summary.SellerID.Bytes(),
			CustomerName: summary.CustomerName,
			Status:       summary.Status.String(),
			TotalAmount:  summary.TotalAmount,
			CreatedAt:    summary.CreatedAt,
		}
	}
	return response
}

func toOrderFromAggregate(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.OrderItem{
			ProductId:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			VariantLabel: item.VariantLabel(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		}
	}

	var internalNotes *string
	if aggregate.InternalNotes() != "" {
		notes := aggregate.InternalNotes()
		internalNotes = &notes
	}

	return servers.Order{
		Id:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		SellerId:        aggregate.SellerID().Bytes(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		ShippingAddress: aggregate.Customer().ShippingAddress(),
		Notes:           aggregate.Customer().Notes(),
		InternalNotes:   internalNotes,
		TotalAmount:     aggregate.TotalAmount(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

func toOrder(response queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = servers.OrderItem{
			ProductId:    item.ProductID.Bytes(),
			ProductName:  item.ProductName,
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		}
	}

	var internalNotes *string
	if response.InternalNotes != "" {
		internalNotes = &response.InternalNotes
	}

	return servers.Order{
		Id:              response.ID.Bytes(),
		OrderNumber:     response.OrderNumber,
		SellerId:        response.SellerID.Bytes(),
		CustomerName:    response.CustomerName,
		CustomerPhone:   response.CustomerPhone,
		ShippingAddress: response.ShippingAddress,
		Notes:           response.Notes,
		InternalNotes:   internalNotes,
		TotalAmount:     response.TotalAmount,
		Status:          response.Status.String(),
		CreatedAt:       response.CreatedAt,
		Items:           items,
	}
}
