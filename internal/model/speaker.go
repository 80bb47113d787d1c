package model

import "time"

// Speaker represents a speaker record. The owner is the user who created
// the record; it is stamped once at creation and is what the ownership
// guard checks on mutation.
type Speaker struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Owner     *UserSummary `json:"owner,omitempty"`
	CreatedOn time.Time    `json:"created_on"`
}

// OwnerID returns the owning user's id, or "" when the owner is not set.
func (s *Speaker) OwnerID() string {
	if s.Owner == nil {
		return ""
	}
	return s.Owner.ID
}

// CreateSpeakerRequest represents a request to create a speaker.
// Owner, id, and timestamp are server-assigned; any client-supplied
// values for them are ignored.
type CreateSpeakerRequest struct {
	Name string `json:"name"`
}
