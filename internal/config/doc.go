// Package config manages application configuration for the peña backend.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables, with a .env file
// honored in development:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - NotifyConfig: board notification webhook settings
//   - StoreConfig: flat-file document store location
//
// # Feature Flags
//
// Feature gates for the public site sections live in Flags, an explicitly
// owned object with a reload lifecycle instead of ambient global state:
//
//	flags := config.LoadFlags()
//	snapshot := flags.Current()
//	flags.Reload() // re-read gates, notify subscribers
package config
