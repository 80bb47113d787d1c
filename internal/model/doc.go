// Package model defines domain entities and data structures for the Podium API.
//
// The model package contains struct definitions for domain objects,
// request types, and error definitions. Models are used across all layers
// of the application.
//
// # Domain Entities
//
//   - User: Application user with authentication credentials
//   - Speaker: A speaker record owned by the user who created it
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Speaker struct {
//	    ID   string `json:"id"`
//	    Name string `json:"name"`
//	}
//
// # Error Types
//
// API errors serialize as a plain {"message": "..."} body; see errors.go.
package model
