package http

import (
	"errors"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/printing"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	setCustomerInfoHandler commands.SetCustomerInfoCommandHandler
	stageCandidateHandler  commands.StageCandidateCommandHandler
	addCandidateHandler    commands.AddCandidateCommandHandler
	removeItemHandler      commands.RemoveItemCommandHandler
	submitOrderHandler     commands.SubmitOrderCommandHandler

	// Query handlers
	filterProductsHandler  queries.FilterProductsQueryHandler
	getDraftHandler        queries.GetDraftQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	renderInvoiceHandler   queries.RenderInvoiceQueryHandler

	printCoordinator *printing.Coordinator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	setCustomerInfoHandler commands.SetCustomerInfoCommandHandler,
	stageCandidateHandler commands.StageCandidateCommandHandler,
	addCandidateHandler commands.AddCandidateCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	filterProductsHandler queries.FilterProductsQueryHandler,
	getDraftHandler queries.GetDraftQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	renderInvoiceHandler queries.RenderInvoiceQueryHandler,
	printCoordinator *printing.Coordinator,
) *Server {
	return &Server{
		setCustomerInfoHandler: setCustomerInfoHandler,
		stageCandidateHandler:  stageCandidateHandler,
		addCandidateHandler:    addCandidateHandler,
		removeItemHandler:      removeItemHandler,
		submitOrderHandler:     submitOrderHandler,
		filterProductsHandler:  filterProductsHandler,
		getDraftHandler:        getDraftHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		renderInvoiceHandler:   renderInvoiceHandler,
		printCoordinator:       printCoordinator,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)

	api.GET("/order", s.GetOrder)
	api.PUT("/order/customer", s.PutCustomerInfo)
	api.PUT("/order/candidate", s.PutCandidate)
	api.POST("/order/items", s.AddItem)
	api.DELETE("/order/items/:productId", s.RemoveItem)
	api.POST("/order/submit", s.SubmitOrder)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/invoice", s.GetInvoice)

	api.GET("/print", s.GetPrintState)
	api.POST("/print/painted", s.DocumentPainted)
	api.POST("/print", s.RequestPrint)
}

// GetProducts handles GET /api/v1/products - searches the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewFilterProductsQuery(
		ctx.QueryParam("name"),
		ctx.QueryParam("supplier"),
	)

	products, err := s.filterProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Product, len(products))
	for i, product := range products {
		response[i] = toProductDTO(product)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/order - returns the in-progress draft.
func (s *Server) GetOrder(ctx echo.Context) error {
	view, err := s.getDraftHandler.Handle(ctx.Request().Context(), queries.NewGetDraftQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDraftDTO(view))
}

// PutCustomerInfo handles PUT /api/v1/order/customer - updates the customer block.
func (s *Server) PutCustomerInfo(ctx echo.Context) error {
	var body CustomerInfo
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewSetCustomerInfoCommand(body.Name, body.Contact)
	if err := s.setCustomerInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PutCandidate handles PUT /api/v1/order/candidate - stages a product-quantity pair.
func (s *Server) PutCandidate(ctx echo.Context) error {
	var body Candidate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewStageCandidateCommand(body.ProductID, body.Quantity)
	if err := s.stageCandidateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/order/items - adds the staged candidate to the draft.
func (s *Server) AddItem(ctx echo.Context) error {
	cmd := commands.NewAddCandidateCommand()
	if err := s.addCandidateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getDraftHandler.Handle(ctx.Request().Context(), queries.NewGetDraftQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDraftDTO(view))
}

// RemoveItem handles DELETE /api/v1/order/items/:productId - removes one line item.
func (s *Server) RemoveItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveItemCommand(ctx.Param("productId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/order/submit - freezes the draft into history.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	submitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), commands.NewSubmitOrderCommand())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toSubmittedOrderDTO(submitted))
}

// GetOrders handles GET /api/v1/orders - lists submitted orders, newest last.
func (s *Server) GetOrders(ctx echo.Context) error {
	rows, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]HistoryRow, len(rows))
	for i, row := range rows {
		response[i] = HistoryRow{
			ID:           row.ID.String(),
			CustomerName: row.CustomerName,
			Total:        moneyString(row.Total),
			ItemCount:    row.ItemCount,
			SubmittedAt:  row.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInvoice handles GET /api/v1/orders/:id/invoice - renders an invoice on demand.
func (s *Server) GetInvoice(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewRenderInvoiceQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	doc, err := s.renderInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceDTO(doc))
}

// GetPrintState handles GET /api/v1/print - reports the coordinator state.
func (s *Server) GetPrintState(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, PrintState{Status: s.printCoordinator.Status().String()})
}

// DocumentPainted handles POST /api/v1/print/painted - confirms the rendered
// invoice is stable on screen, releasing the readiness barrier.
func (s *Server) DocumentPainted(ctx echo.Context) error {
	if err := s.printCoordinator.DocumentPainted(ctx.Request().Context()); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RequestPrint handles POST /api/v1/print - the manual print trigger.
func (s *Server) RequestPrint(ctx echo.Context) error {
	if err := s.printCoordinator.RequestPrint(ctx.Request().Context()); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain and application errors onto HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, printing.ErrPrintAlreadyRequested),
		errors.Is(err, printing.ErrNoDocumentToPrint),
		errors.Is(err, printing.ErrDocumentIsNotRenderable):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
