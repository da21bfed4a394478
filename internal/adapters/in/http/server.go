package http

import (
	"errors"
	"log/slog"
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the mailroom operations over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerParcelHandler  commands.RegisterParcelCommandHandler
	deliverParcelHandler   commands.DeliverParcelCommandHandler
	reclassifyStaleHandler commands.ReclassifyStaleParcelsCommandHandler

	// Query handlers
	searchParcelsHandler    queries.SearchParcelsQueryHandler
	matchRecipientsHandler  queries.MatchRecipientsQueryHandler
	parcelStatisticsHandler queries.ParcelStatisticsQueryHandler

	allocator services.SlotAllocator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerParcelHandler commands.RegisterParcelCommandHandler,
	deliverParcelHandler commands.DeliverParcelCommandHandler,
	reclassifyStaleHandler commands.ReclassifyStaleParcelsCommandHandler,
	searchParcelsHandler queries.SearchParcelsQueryHandler,
	matchRecipientsHandler queries.MatchRecipientsQueryHandler,
	parcelStatisticsHandler queries.ParcelStatisticsQueryHandler,
) *Server {
	return &Server{
		registerParcelHandler:   registerParcelHandler,
		deliverParcelHandler:    deliverParcelHandler,
		reclassifyStaleHandler:  reclassifyStaleHandler,
		searchParcelsHandler:    searchParcelsHandler,
		matchRecipientsHandler:  matchRecipientsHandler,
		parcelStatisticsHandler: parcelStatisticsHandler,
		allocator:               services.NewSlotAllocator(),
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/parcels", s.RegisterParcel)
	v1.POST("/parcels/:trackingNumber/delivery", s.DeliverParcel)
	v1.GET("/parcels", s.SearchParcels)
	v1.GET("/recipients/match", s.MatchRecipients)
	v1.GET("/statistics", s.GetStatistics)
	v1.GET("/catalogs", s.GetCatalogs)
	v1.GET("/slots", s.GetAvailableSlots)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterParcel handles POST /api/v1/parcels - registers a parcel at intake.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var request RegisterParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(
		parcelID,
		request.TrackingNumber,
		request.Carrier,
		request.Recipient,
		request.Category,
		request.Size,
		request.Slot,
		request.RackNumber,
		request.ColorLabel,
		request.RegisteredBy,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid intake data: " + err.Error(),
		})
	}

	if err = s.registerParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterParcelResponse{ID: parcelID.String()})
}

// DeliverParcel handles POST /api/v1/parcels/:trackingNumber/delivery -
// confirms handover with a captured signature.
func (s *Server) DeliverParcel(ctx echo.Context) error {
	var request DeliverParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDeliverParcelCommand(
		ctx.Param("trackingNumber"), []byte(request.Signature))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if err = s.deliverParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchParcels handles GET /api/v1/parcels - lists parcel records,
// optionally filtered by status (?status=) and free text (?q=).
// Stale pending records are reclassified before the query runs, so the
// listing never shows a parcel as pending past its dwell time.
func (s *Server) SearchParcels(ctx echo.Context) error {
	if err := s.reclassifyStale(ctx); err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewSearchParcelsQuery(
		ctx.QueryParam("status"), ctx.QueryParam("q"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid search: " + err.Error(),
		})
	}

	parcels, err := s.searchParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]ParcelResponse, 0, len(parcels))
	for _, view := range parcels {
		response = append(response, parcelResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// MatchRecipients handles GET /api/v1/recipients/match - validates a
// recipient name fragment (?q=) against the directory.
func (s *Server) MatchRecipients(ctx echo.Context) error {
	query := queries.NewMatchRecipientsQuery(ctx.QueryParam("q"))

	result, err := s.matchRecipientsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := MatchRecipientsResponse{
		Candidates:    make([]RecipientResponse, 0, len(result.Candidates)),
		Quarantined:   result.Quarantined,
		ClearRedLabel: result.ClearRedLabel,
	}
	for _, candidate := range result.Candidates {
		response.Candidates = append(response.Candidates, RecipientResponse(candidate))
	}
	if result.Exact != nil {
		exact := RecipientResponse(*result.Exact)
		response.Exact = &exact
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatistics handles GET /api/v1/statistics - computes operational
// statistics, optionally scoped by range (?range=) and carrier (?carrier=).
func (s *Server) GetStatistics(ctx echo.Context) error {
	if err := s.reclassifyStale(ctx); err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewParcelStatisticsQuery(
		ctx.QueryParam("range"), ctx.QueryParam("carrier"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid statistics request: " + err.Error(),
		})
	}

	stats, err := s.parcelStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statisticsResponse(stats))
}

// GetCatalogs handles GET /api/v1/catalogs - lists the fixed value sets the
// intake form enumerates. Carrier stays free text on records; the listed
// carriers are the common choices.
func (s *Server) GetCatalogs(ctx echo.Context) error {
	grid := kernel.GridSlots()
	slots := make([]string, 0, len(grid))
	for _, slot := range grid {
		slots = append(slots, slot.String())
	}

	return ctx.JSON(http.StatusOK, CatalogsResponse{
		Carriers:    parcel.KnownCarriers(),
		Categories:  parcel.KnownCategories(),
		Sizes:       parcel.KnownSizes(),
		ColorLabels: parcel.KnownColorLabels(),
		Slots:       slots,
	})
}

// GetAvailableSlots handles GET /api/v1/slots - lists the slots eligible for
// a parcel given its carrier (?carrier=) and size (?size=). An omitted size
// leaves placement unconstrained by bulk.
func (s *Server) GetAvailableSlots(ctx echo.Context) error {
	size := parcel.SizeUnknown
	if sizeName := ctx.QueryParam("size"); sizeName != "" {
		parsed, err := parcel.ParseSize(sizeName)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid size: " + err.Error(),
			})
		}
		size = parsed
	}

	available := s.allocator.AvailableSlots(ctx.QueryParam("carrier"), size)
	codes := make([]string, 0, len(available))
	for _, slot := range available {
		codes = append(codes, slot.String())
	}

	return ctx.JSON(http.StatusOK, AvailableSlotsResponse{Slots: codes})
}

func (s *Server) reclassifyStale(ctx echo.Context) error {
	cmd := commands.NewReclassifyStaleParcelsCommand()
	return s.reclassifyStaleHandler.Handle(ctx.Request().Context(), cmd)
}

// errorResponse maps domain and application errors to HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, parcel.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, parcel.ErrSignatureIsRequired):
		code = http.StatusUnprocessableEntity
	default:
		slog.Error("request failed", "path", ctx.Path(), "error", err)
		code = http.StatusInternalServerError
		return ctx.JSON(code, ErrorResponse{Code: code, Message: "Internal server error"})
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
