// Package repository implements the data access layer for the peña API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain
// entity. The shirt vote and merchandise catalog are the exception: they
// live in flat JSON documents managed by the filestore package.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, Get, Update, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - math::sum() aggregates for attendee counts
//
// # Example Usage
//
//	repo := NewMatchRepository(db)
//	match, err := repo.Get(ctx, "match:abc123")
//	if err != nil {
//	    return err
//	}
//	if match == nil {
//	    // not found
//	}
package repository
