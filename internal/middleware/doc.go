// Package middleware provides HTTP middleware for the API server.
//
// Handlers are composed with Chain, which applies middlewares in the
// order given:
//
//	handler := middleware.Chain(mux,
//		middleware.Recovery,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.CORS(origins),
//	)
//
// Per-route chains layer resource loading and access control on top of
// the global stack. A mutating speaker route runs SpeakerLoader to
// resolve {speakerId}, Auth to establish the caller's identity, and
// SpeakerOwner to enforce ownership, in that order. Each middleware
// short-circuits with the appropriate JSON error when its check fails,
// so handlers only ever see requests that passed the whole chain.
package middleware
