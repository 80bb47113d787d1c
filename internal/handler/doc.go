// Package handler provides HTTP request handlers for the Podium API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the dependencies needed to
// serve requests for a specific feature area (speakers, authentication).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to {"message": ...} JSON bodies via MapServiceError
//
// # Response Format
//
// Successful responses carry the resource representation directly as the
// JSON body and always use status 200. Error responses carry a single
// message field:
//
//	{"message": "Speaker not found"}
//
// # Resource Loading
//
// Routes with a {speakerId} segment rely on middleware.SpeakerLoader to
// resolve the record before the handler runs; handlers read it back with
// middleware.GetSpeaker. Ownership checks likewise run in the middleware
// chain, so a handler body never re-verifies access.
package handler
