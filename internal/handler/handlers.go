package handler

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/handler/http"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, schema *graphql.Schema, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, schema, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
