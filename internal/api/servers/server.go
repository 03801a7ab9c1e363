package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Open a checkout session with an empty form
	// (POST /api/v1/checkout/sessions)
	CreateSession(ctx echo.Context) error
	// Read the current form of a session
	// (GET /api/v1/checkout/sessions/{sessionId})
	GetSession(ctx echo.Context, sessionId SessionId) error
	// Replace the value of one field and clear its error
	// (PUT /api/v1/checkout/sessions/{sessionId}/fields/{field})
	SetField(ctx echo.Context, sessionId SessionId, field string) error
	// Validate the form and place the order
	// (POST /api/v1/checkout/sessions/{sessionId}/submit)
	SubmitCheckout(ctx echo.Context, sessionId SessionId) error
	// Submission attempt statistics
	// (GET /api/v1/checkout/stats)
	GetSubmissionStats(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateSession converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

// GetSession converts echo context to params.
func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetSession(ctx, sessionId)
}

// SetField converts echo context to params.
func (w *ServerInterfaceWrapper) SetField(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}

	var field string
	err = runtime.BindStyledParameterWithLocation("simple", false, "field", runtime.ParamLocationPath, ctx.Param("field"), &field)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter field: %s", err))
	}

	return w.Handler.SetField(ctx, sessionId, field)
}

// SubmitCheckout converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitCheckout(ctx echo.Context) error {
	sessionId, err := bindSessionId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.SubmitCheckout(ctx, sessionId)
}

// GetSubmissionStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetSubmissionStats(ctx echo.Context) error {
	return w.Handler.GetSubmissionStats(ctx)
}

func bindSessionId(ctx echo.Context) (SessionId, error) {
	var sessionId SessionId
	err := runtime.BindStyledParameterWithLocation("simple", false, "sessionId", runtime.ParamLocationPath, ctx.Param("sessionId"), &sessionId)
	if err != nil {
		return sessionId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}
	return sessionId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, and prepends BaseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/checkout/sessions", wrapper.CreateSession)
	router.GET(baseURL+"/api/v1/checkout/sessions/:sessionId", wrapper.GetSession)
	router.PUT(baseURL+"/api/v1/checkout/sessions/:sessionId/fields/:field", wrapper.SetField)
	router.POST(baseURL+"/api/v1/checkout/sessions/:sessionId/submit", wrapper.SubmitCheckout)
	router.GET(baseURL+"/api/v1/checkout/stats", wrapper.GetSubmissionStats)
}
