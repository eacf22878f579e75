// Package http exposes the delivery workflow over an echo HTTP API.
// Handlers translate requests into commands and queries, and map the typed
// error taxonomy onto status codes. The acting user is identified by the
// X-User-ID header; authorization against the order's participants happens
// in the domain.
package http

import (
	"net/http"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/queries"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the acting user's id on every request.
const UserIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignRiderHandler    commands.AssignRiderCommandHandler
	acceptHandler         commands.AcceptDeliveryCommandHandler
	declineHandler        commands.DeclineDeliveryCommandHandler
	pickupHandler         commands.PickupDeliveryCommandHandler
	markInTransitHandler  commands.MarkInTransitCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	completeHandler       commands.CompleteDeliveryCommandHandler
	cancelBySenderHandler commands.CancelBySenderCommandHandler
	cancelByRiderHandler  commands.CancelByRiderCommandHandler

	// Query handlers
	getWalletHandler         queries.GetWalletQueryHandler
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignRiderHandler commands.AssignRiderCommandHandler,
	acceptHandler commands.AcceptDeliveryCommandHandler,
	declineHandler commands.DeclineDeliveryCommandHandler,
	pickupHandler commands.PickupDeliveryCommandHandler,
	markInTransitHandler commands.MarkInTransitCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	completeHandler commands.CompleteDeliveryCommandHandler,
	cancelBySenderHandler commands.CancelBySenderCommandHandler,
	cancelByRiderHandler commands.CancelByRiderCommandHandler,
	getWalletHandler queries.GetWalletQueryHandler,
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler,
) *Server {
	return &Server{
		assignRiderHandler:       assignRiderHandler,
		acceptHandler:            acceptHandler,
		declineHandler:           declineHandler,
		pickupHandler:            pickupHandler,
		markInTransitHandler:     markInTransitHandler,
		markDeliveredHandler:     markDeliveredHandler,
		completeHandler:          completeHandler,
		cancelBySenderHandler:    cancelBySenderHandler,
		cancelByRiderHandler:     cancelByRiderHandler,
		getWalletHandler:         getWalletHandler,
		getDeliveryOrdersHandler: getDeliveryOrdersHandler,
	}
}

// RegisterRoutes attaches all delivery endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries/:txRef/assign", s.AssignRider)
	api.POST("/deliveries/:txRef/accept", s.AcceptDelivery)
	api.POST("/deliveries/:txRef/decline", s.DeclineDelivery)
	api.POST("/deliveries/:txRef/pickup", s.PickupDelivery)
	api.POST("/deliveries/:txRef/in-transit", s.MarkInTransit)
	api.POST("/deliveries/:txRef/delivered", s.MarkDelivered)
	api.POST("/deliveries/:txRef/complete", s.CompleteDelivery)
	api.POST("/orders/:orderID/cancel", s.CancelBySender)
	api.POST("/orders/:orderID/cancel-by-rider", s.CancelByRider)
	api.GET("/orders", s.GetDeliveryOrders)
	api.GET("/wallet", s.GetWallet)
}

// AssignRiderRequest is the body for POST /deliveries/:txRef/assign.
type AssignRiderRequest struct {
	RiderID string `json:"rider_id"`
}

// AssignRiderResponse is the body returned on successful assignment.
type AssignRiderResponse struct {
	OrderID    string `json:"order_id"`
	RiderID    string `json:"rider_id"`
	RiderName  string `json:"rider_name"`
	RiderPhone string `json:"rider_phone"`
	RiderEmail string `json:"rider_email"`
	Status     string `json:"status"`
}

// OrderStatusResponse is the body returned by the plain status transitions.
type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// CancelBySenderRequest is the body for POST /orders/:orderID/cancel.
type CancelBySenderRequest struct {
	Reason string `json:"reason"`
}

// CancelBySenderResponse is the body returned on sender cancellation.
type CancelBySenderResponse struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

// AssignRider handles POST /api/v1/deliveries/:txRef/assign.
func (s *Server) AssignRider(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	var request AssignRiderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider_id")
	}

	cmd, err := commands.NewAssignRiderCommand(ctx.Param("txRef"), riderID, actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignRiderResponse{
		OrderID:    result.OrderID.String(),
		RiderID:    result.RiderID.String(),
		RiderName:  result.RiderName,
		RiderPhone: result.RiderPhone,
		RiderEmail: result.RiderEmail,
		Status:     result.Status.String(),
	})
}

// AcceptDelivery handles POST /api/v1/deliveries/:txRef/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.acceptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// DeclineDelivery handles POST /api/v1/deliveries/:txRef/decline.
func (s *Server) DeclineDelivery(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewDeclineDeliveryCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err = s.declineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupDelivery handles POST /api/v1/deliveries/:txRef/pickup.
func (s *Server) PickupDelivery(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewPickupDeliveryCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.pickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// MarkInTransit handles POST /api/v1/deliveries/:txRef/in-transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewMarkInTransitCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.markInTransitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// MarkDelivered handles POST /api/v1/deliveries/:txRef/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// CompleteDelivery handles POST /api/v1/deliveries/:txRef/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(ctx.Param("txRef"), actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.completeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// CancelBySender handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelBySender(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request CancelBySenderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelBySenderCommand(orderID, actorID, request.Reason)
	if err != nil {
		return unprocessable(ctx, err)
	}

	result, err := s.cancelBySenderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelBySenderResponse{
		OrderID:   result.OrderID.String(),
		Status:    result.Status.String(),
		Cancelled: result.Cancelled,
		Message:   result.Message,
	})
}

// CancelByRider handles POST /api/v1/orders/:orderID/cancel-by-rider.
func (s *Server) CancelByRider(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelByRiderCommand(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err = s.cancelByRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryOrders handles GET /api/v1/orders - lists the acting user's orders.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	query, err := queries.NewGetDeliveryOrdersQuery(actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	orders, err := s.getDeliveryOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryOrderResponse, len(orders))
	for i, order := range orders {
		var riderID *string
		if order.RiderID != nil {
			id := order.RiderID.String()
			riderID = &id
		}

		response[i] = DeliveryOrderResponse{
			ID:            order.ID.String(),
			TxRef:         order.TxRef,
			OrderNumber:   order.OrderNumber,
			SenderID:      order.SenderID.String(),
			RiderID:       riderID,
			Status:        order.Status.String(),
			PaymentStatus: order.PaymentStatus.String(),
			DeliveryFee:   order.DeliveryFee,
			TotalPrice:    order.TotalPrice,
			CreatedAt:     order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWallet handles GET /api/v1/wallet - returns the acting user's statement.
func (s *Server) GetWallet(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid or missing "+UserIDHeader+" header")
	}

	query, err := queries.NewGetWalletQuery(actorID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	statement, err := s.getWalletHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	transactions := make([]WalletTransactionResponse, len(statement.Transactions))
	for i, entry := range statement.Transactions {
		transactions[i] = WalletTransactionResponse{
			ID:              entry.ID.String(),
			TxRef:           entry.TxRef,
			Amount:          entry.Amount,
			TransactionType: entry.TransactionType.String(),
			Label:           entry.Label.String(),
			Reason:          entry.Reason,
			Actor:           entry.Actor,
			CreatedAt:       entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, WalletResponse{
		WalletID:      statement.WalletID.String(),
		OwnerID:       statement.OwnerID.String(),
		Balance:       statement.Balance,
		EscrowBalance: statement.EscrowBalance,
		Transactions:  transactions,
	})
}

// actorID extracts the acting user's id from the request header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(UserIDHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unprocessable(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: err.Error(),
	})
}
