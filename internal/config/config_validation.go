// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to optional configuration fields that remain unset
// after all sources have been merged.
const (
	// DefaultHTTPAddress is the fallback listening address, matching the
	// conventional development port of the API.
	DefaultHTTPAddress = ":3001"

	// DefaultMongoURI is the fallback MongoDB connection string for local
	// development.
	DefaultMongoURI = "mongodb://localhost:27017"

	// DefaultMongoDatabase is the fallback database name.
	DefaultMongoDatabase = "deep-thoughts"

	// DefaultTokenIssuer is the fallback "iss" claim value.
	DefaultTokenIssuer = "deep-thoughts"

	// DefaultTokenDuration is the fallback token lifetime.
	DefaultTokenDuration = 2 * time.Hour
)

// applyDefaults fills optional fields that are still at their zero value
// after merging all configuration sources.
//
// The token signing key deliberately has no default: it is a secret and must
// always be provided explicitly.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Storage.Mongo.URI == "" {
		cfg.Storage.Mongo.URI = DefaultMongoURI
	}

	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = DefaultMongoDatabase
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
