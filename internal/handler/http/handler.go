package http

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
)

type Handler struct {
	services *service.Services
	graphql  http.Handler

	clientDir string

	logger *logger.Logger
}

// NewHandler wires the parsed GraphQL schema into an HTTP handler. The
// relay handler does the transport work (request decoding, response
// encoding); everything else on this type is middleware and static assets.
func NewHandler(services *service.Services, schema *graphql.Schema, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		graphql:   &relay.Handler{Schema: schema},
		clientDir: cfg.ClientDir,
		logger:    logger,
	}
}
