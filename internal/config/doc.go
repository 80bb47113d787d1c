// Package config manages application configuration for the Podium API.
//
// Configuration is loaded from environment variables with development
// defaults, then validated once at startup:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // refuse to start
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT key paths, issuer, and expiration
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated list of allowed origins
//	DB_HOST / DB_PORT    - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE
//	DB_USER / DB_PASSWORD
//	JWT_PRIVATE_KEY_PATH / JWT_PUBLIC_KEY_PATH
//	JWT_EXPIRATION_MINS / JWT_ISSUER
package config
