package http

import (
	"log/slog"
	"net/http"
	"sync"

	"checkout/internal/api/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig holds the knobs of the HTTP surface.
type RouterConfig struct {
	SubmitRateLimit int
}

// NewRouter builds the echo instance serving the checkout API, /health and
// the Swagger UI at /swagger/.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(SubmitRateLimiter(cfg.SubmitRateLimit))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}

// swaggerDoc serves the OpenAPI document to the Swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc registers the document once per process; swag panics on
// a second registration under the same name.
func registerSwaggerDoc(doc *openapi3.T) error {
	swaggerOnce.Do(func() {
		data, err := doc.MarshalJSON()
		if err != nil {
			swaggerErr = err
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return swaggerErr
}
