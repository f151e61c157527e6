// Package http adapts the REST surface to application commands and queries.
// Every mutation returns the full refreshed order read model so pharmacy and
// patient clients see the post-operation state in one round trip.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"mediorder/internal/core/application/usecases/commands"
	"mediorder/internal/core/application/usecases/queries"
	"mediorder/internal/core/domain/model/kernel"
	"mediorder/internal/core/domain/model/order"
	"mediorder/internal/core/domain/model/prescription"
	"mediorder/internal/core/ports"
	"mediorder/internal/generated/servers"
	"mediorder/internal/pkg/errs"
)

const defaultNearbyRadiusKm = 10.0

// Server implements the generated ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getOrderByNumberHandler    queries.GetOrderByNumberQueryHandler
	getPendingOrdersHandler    queries.GetPendingOrdersQueryHandler
	getNearbyPharmaciesHandler queries.GetNearbyPharmaciesQueryHandler
	getDeliveryEstimateHandler queries.GetDeliveryEstimateQueryHandler

	validate *validator.Validate
}

// NewServer creates an HTTP server backed by the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getNearbyPharmaciesHandler queries.GetNearbyPharmaciesQueryHandler,
	getDeliveryEstimateHandler queries.GetDeliveryEstimateQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		acceptOrderHandler:         acceptOrderHandler,
		rejectOrderHandler:         rejectOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		getOrderHandler:            getOrderHandler,
		getOrderByNumberHandler:    getOrderByNumberHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getNearbyPharmaciesHandler: getNearbyPharmaciesHandler,
		getDeliveryEstimateHandler: getDeliveryEstimateHandler,
		validate:                   validator.New(),
	}
}

// CreateMedicineOrder handles POST /medicine-orders.
func (s *Server) CreateMedicineOrder(ctx echo.Context) error {
	var body servers.CreateMedicineOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	if err := s.validate.Var(body.DeliveryPincode, "required,numeric,len=6"); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "deliveryPincode must be a 6 digit postal code")
	}

	orderType := order.TypeDelivery
	if body.OrderType != nil {
		parsed, err := order.ParseType(string(*body.OrderType))
		if err != nil {
			return domainErrorResponse(ctx, err)
		}
		orderType = parsed
	}

	prescriptionID, err := kernel.UUIDFromBytes(body.PrescriptionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid prescriptionId")
	}
	patientID, err := kernel.UUIDFromBytes(body.PatientId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid patientId")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		prescriptionID,
		patientID,
		orderType,
		body.DeliveryAddress,
		body.DeliveryPincode,
		stringValue(body.SpecialInstructions),
	)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetMedicineOrderById handles GET /medicine-orders/{orderId}.
func (s *Server) GetMedicineOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetMedicineOrderByNumber handles GET /medicine-orders/number/{orderNumber}.
func (s *Server) GetMedicineOrderByNumber(ctx echo.Context, orderNumber string) error {
	number, err := kernel.OrderNumberFromString(orderNumber)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order number")
	}

	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	resp, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMedicineOrder(resp))
}

// GetPendingMedicineOrders handles GET /medicine-orders/pending.
func (s *Server) GetPendingMedicineOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	pending, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]servers.PendingMedicineOrder, len(pending))
	for i, p := range pending {
		response[i] = servers.PendingMedicineOrder{
			Id:              p.ID.Bytes(),
			OrderNumber:     p.OrderNumber,
			Status:          servers.OrderStatus(p.Status),
			DeliveryPincode: p.DeliveryPincode,
			FinalAmount:     p.FinalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptMedicineOrder handles POST /medicine-orders/{orderId}/accept.
func (s *Server) AcceptMedicineOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AcceptMedicineOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	pharmacyID, err := kernel.UUIDFromBytes(body.PharmacyId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pharmacyId")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, pharmacyID, stringValue(body.PharmacyNotes))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RejectMedicineOrder handles POST /medicine-orders/{orderId}/reject.
func (s *Server) RejectMedicineOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RejectMedicineOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	pharmacyID, err := kernel.UUIDFromBytes(body.PharmacyId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pharmacyId")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, pharmacyID, body.RejectionReason)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// UpdateMedicineOrderStatus handles PUT /medicine-orders/{orderId}/status.
func (s *Server) UpdateMedicineOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateMedicineOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	force := body.Force != nil && *body.Force
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, force)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetNearbyPharmacies handles GET /medicine-orders/nearby-pharmacies.
func (s *Server) GetNearbyPharmacies(ctx echo.Context, params servers.GetNearbyPharmaciesParams) error {
	if err := s.validate.Var(params.Pincode, "required,numeric,len=6"); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "pincode must be a 6 digit postal code")
	}

	radiusKm := defaultNearbyRadiusKm
	if params.RadiusKm != nil {
		radiusKm = *params.RadiusKm
	}

	query, err := queries.NewGetNearbyPharmaciesQuery(params.Pincode, radiusKm)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	matches, err := s.getNearbyPharmaciesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]servers.NearbyPharmacy, len(matches))
	for i, m := range matches {
		response[i] = servers.NearbyPharmacy{
			Id:         m.ID.Bytes(),
			Name:       m.Name,
			Address:    m.Address,
			DistanceKm: m.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryEstimate handles GET /medicine-orders/delivery-estimate.
func (s *Server) GetDeliveryEstimate(ctx echo.Context, params servers.GetDeliveryEstimateParams) error {
	if err := s.validate.Var(params.Pincode, "required,numeric,len=6"); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "pincode must be a 6 digit postal code")
	}

	pharmacyID, err := kernel.UUIDFromBytes(params.PharmacyId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pharmacyId")
	}

	query, err := queries.NewGetDeliveryEstimateQuery(params.Pincode, pharmacyID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	estimate, err := s.getDeliveryEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryEstimate{
		PharmacyId:       estimate.PharmacyID.Bytes(),
		PharmacyName:     estimate.PharmacyName,
		DistanceKm:       estimate.DistanceKm,
		EstimatedMinutes: estimate.EstimatedMinutes,
		DeliveryFee:      estimate.DeliveryFee,
	})
}

// respondWithOrder loads the order read model and writes it as the response
// body. Mutating endpoints call it after their command succeeded.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	resp, err := s.loadOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) loadOrder(ctx context.Context, orderID kernel.UUID) (servers.MedicineOrder, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return servers.MedicineOrder{}, err
	}

	resp, err := s.getOrderHandler.Handle(ctx, query)
	if err != nil {
		return servers.MedicineOrder{}, err
	}

	return toMedicineOrder(resp), nil
}

func toMedicineOrder(resp queries.GetOrderQueryResponse) servers.MedicineOrder {
	items := make([]servers.MedicineOrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.MedicineOrderItem{
			MedicineName: item.MedicineName,
			Dosage:       item.Dosage,
			Quantity:     item.Quantity,
			Status:       item.Status,
		}
	}

	result := servers.MedicineOrder{
		Id:                   resp.ID.Bytes(),
		OrderNumber:          resp.OrderNumber,
		PrescriptionId:       resp.PrescriptionID.Bytes(),
		PatientId:            resp.PatientID.Bytes(),
		Status:               servers.OrderStatus(resp.Status),
		OrderType:            resp.OrderType,
		TotalAmount:          resp.TotalAmount,
		DeliveryFee:          resp.DeliveryFee,
		FinalAmount:          resp.FinalAmount,
		DeliveryAddress:      resp.DeliveryAddress,
		DeliveryPincode:      resp.DeliveryPincode,
		PatientPhone:         optionalString(resp.PatientPhone),
		SpecialInstructions:  optionalString(resp.SpecialInstructions),
		PharmacyNotes:        optionalString(resp.PharmacyNotes),
		RejectionReason:      optionalString(resp.RejectionReason),
		Items:                items,
		Version:              resp.Version,
		CreatedAt:            resp.CreatedAt,
		UpdatedAt:            resp.UpdatedAt,
		AcceptedAt:           resp.AcceptedAt,
		ExpectedDeliveryTime: resp.ExpectedDeliveryTime,
	}

	if resp.PharmacyID != nil {
		pharmacyID := resp.PharmacyID.Bytes()
		result.PharmacyId = &pharmacyID
	}

	return result
}

// domainErrorResponse maps application and domain errors onto HTTP statuses.
func domainErrorResponse(ctx echo.Context, err error) error {
	return errorResponse(ctx, statusCodeFor(err), err.Error())
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrConcurrencyConflict),
		errors.Is(err, commands.ErrNoPharmacyAvailable):
		return http.StatusConflict
	case errors.Is(err, order.ErrPharmacyNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrLocationNotResolved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prescription.ErrPrescriptionNotUsable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
