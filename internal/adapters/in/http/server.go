package http

import (
	"errors"
	"log/slog"
	"net/http"

	"checkout/internal/api/servers"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createSessionHandler  commands.CreateSessionCommandHandler
	setFieldHandler       commands.SetFieldCommandHandler
	submitCheckoutHandler commands.SubmitCheckoutCommandHandler

	// Query handlers
	getSessionHandler queries.GetSessionQueryHandler
	// nil when attempt recording is disabled
	getStatsHandler *queries.GetSubmissionStatsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
// getStatsHandler may be nil.
func NewServer(
	createSessionHandler commands.CreateSessionCommandHandler,
	setFieldHandler commands.SetFieldCommandHandler,
	submitCheckoutHandler commands.SubmitCheckoutCommandHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getStatsHandler *queries.GetSubmissionStatsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createSessionHandler:  createSessionHandler,
		setFieldHandler:       setFieldHandler,
		submitCheckoutHandler: submitCheckoutHandler,
		getSessionHandler:     getSessionHandler,
		getStatsHandler:       getStatsHandler,
		logger:                logger.With("component", "http_server"),
	}
}

// CreateSession handles POST /api/v1/checkout/sessions - opens a session.
func (s *Server) CreateSession(ctx echo.Context) error {
	cmd, err := commands.NewCreateSessionCommand(kernel.NewUUID())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to open session")
	}

	if err = s.createSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to open session")
	}

	return s.sessionResponse(ctx, http.StatusCreated, cmd.SessionID())
}

// GetSession handles GET /api/v1/checkout/sessions/{sessionId} - reads a session.
func (s *Server) GetSession(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid session id")
	}

	return s.sessionResponse(ctx, http.StatusOK, id)
}

// SetField handles PUT /api/v1/checkout/sessions/{sessionId}/fields/{field} - edits one field.
func (s *Server) SetField(ctx echo.Context, sessionId servers.SessionId, field string) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid session id")
	}

	key, err := checkout.ParseField(field)
	if err != nil {
		return s.errorResponse(ctx, err, "Unknown field")
	}

	var body servers.SetFieldJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetFieldCommand(id, key, body.Value)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid field edit")
	}

	if err = s.setFieldHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to update field")
	}

	return s.sessionResponse(ctx, http.StatusOK, id)
}

// SubmitCheckout handles POST /api/v1/checkout/sessions/{sessionId}/submit.
// The confirm and navigate collaborators of this request fill in the
// response: the success message and the redirect target.
func (s *Server) SubmitCheckout(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid session id")
	}

	var response servers.SubmitResult
	confirmer := ports.ConfirmerFunc(func() {
		message := checkout.OrderPlacedMessage
		response.Message = &message
	})
	navigator := ports.NavigatorFunc(func(path string) {
		response.Redirect = &path
	})

	cmd, err := commands.NewSubmitCheckoutCommand(id, confirmer, navigator)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid submission")
	}

	result, err := s.submitCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to submit checkout")
	}

	response.Accepted = result.Accepted
	if !result.Accepted {
		errorMap := result.Errors.Strings()
		response.Errors = &errorMap
		return ctx.JSON(http.StatusUnprocessableEntity, response)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSubmissionStats handles GET /api/v1/checkout/stats.
func (s *Server) GetSubmissionStats(ctx echo.Context) error {
	if s.getStatsHandler == nil {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Submission attempt recording is disabled",
		})
	}

	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetSubmissionStatsQuery())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve statistics")
	}

	failures := make(map[string]int64, len(stats.FailuresByField))
	for field, count := range stats.FailuresByField {
		failures[field.String()] = count
	}

	return ctx.JSON(http.StatusOK, servers.SubmissionStats{
		Total:           stats.Total,
		Accepted:        stats.Accepted,
		Rejected:        stats.Rejected,
		FailuresByField: failures,
	})
}

func (s *Server) sessionResponse(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid session id")
	}

	session, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve session")
	}

	return ctx.JSON(status, toSession(session))
}

// errorResponse maps core errors to status codes. Unexpected errors are
// logged and reported without detail.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, checkout.ErrFormIsClosed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	} else {
		message = message + ": " + err.Error()
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func toSession(session queries.GetSessionQueryResponse) servers.Session {
	fields := make([]servers.FormField, len(session.Fields))
	for i, view := range session.Fields {
		field := servers.FormField{
			Name:      view.Field.String(),
			Label:     view.Label,
			InputType: servers.FormFieldInputType(view.InputType),
			Value:     view.Value,
		}
		if view.MaxLength > 0 {
			maxLength := view.MaxLength
			field.MaxLength = &maxLength
		}
		if view.HasError {
			msg := view.Error
			field.Error = &msg
		}
		fields[i] = field
	}

	return servers.Session{
		Id:     session.ID.Bytes(),
		Status: servers.SessionStatus(session.Status.String()),
		Fields: fields,
		Errors: session.Errors.Strings(),
	}
}
