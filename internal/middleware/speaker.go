package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/podiumhq/podium/internal/model"
)

const SpeakerKey contextKey = "speaker"

// SpeakerResolver resolves a speaker ID taken from the URL to a full record.
type SpeakerResolver interface {
	ResolveSpeaker(ctx context.Context, id string) (*model.Speaker, error)
}

// SpeakerLoader resolves the {speakerId} path segment before the handler
// runs. A miss short-circuits the chain with a 404; on success the loaded
// speaker is attached to the request context.
func SpeakerLoader(resolver SpeakerResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("speakerId")
			if id == "" {
				model.NewNotFoundError("Speaker").WriteJSON(w)
				return
			}

			speaker, err := resolver.ResolveSpeaker(r.Context(), id)
			if err != nil {
				var apiErr *model.APIError
				if errors.As(err, &apiErr) {
					apiErr.WriteJSON(w)
					return
				}
				model.NewInternalError("Failed to load speaker").WriteJSON(w)
				return
			}
			if speaker == nil {
				model.NewNotFoundError("Speaker").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), SpeakerKey, speaker)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSpeaker extracts the loaded speaker from context.
func GetSpeaker(ctx context.Context) *model.Speaker {
	if speaker, ok := ctx.Value(SpeakerKey).(*model.Speaker); ok {
		return speaker
	}
	return nil
}

// SpeakerOwner rejects requests whose authenticated user does not own the
// loaded speaker. It must run after Auth and SpeakerLoader in the chain.
func SpeakerOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		speaker := GetSpeaker(r.Context())
		userID := GetUserID(r.Context())

		if speaker == nil || userID == "" || speaker.OwnerID() != userID {
			model.NewForbiddenError().WriteJSON(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
