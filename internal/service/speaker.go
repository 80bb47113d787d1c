package service

import (
	"context"
	"strings"

	"github.com/podiumhq/podium/internal/model"
)

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *model.Speaker) error
	GetByID(ctx context.Context, id string) (*model.Speaker, error)
	List(ctx context.Context) ([]*model.Speaker, error)
	Merge(ctx context.Context, id string, data map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// SpeakerService handles speaker directory operations
type SpeakerService struct {
	speakerRepo SpeakerRepository
}

// SpeakerServiceConfig holds configuration for the speaker service
type SpeakerServiceConfig struct {
	SpeakerRepo SpeakerRepository
}

// NewSpeakerService creates a new speaker service
func NewSpeakerService(cfg SpeakerServiceConfig) *SpeakerService {
	return &SpeakerService{
		speakerRepo: cfg.SpeakerRepo,
	}
}

// Create validates and persists a new speaker owned by the given user.
// The owner is always stamped from the authenticated identity; an owner
// supplied by the caller is ignored.
func (s *SpeakerService) Create(ctx context.Context, userID string, req model.CreateSpeakerRequest) (*model.Speaker, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrSpeakerNameRequired
	}

	speaker := &model.Speaker{
		Name:  name,
		Owner: &model.UserSummary{ID: userID},
	}

	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, err
	}

	// Re-read so the owner link comes back resolved
	created, err := s.speakerRepo.GetByID(ctx, speaker.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return speaker, nil
	}
	return created, nil
}

// Get retrieves a speaker by ID
func (s *SpeakerService) Get(ctx context.Context, id string) (*model.Speaker, error) {
	speaker, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if speaker == nil {
		return nil, ErrSpeakerNotFound
	}
	return speaker, nil
}

// List returns all speakers, newest first
func (s *SpeakerService) List(ctx context.Context) ([]*model.Speaker, error) {
	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if speakers == nil {
		speakers = []*model.Speaker{}
	}
	return speakers, nil
}

// Update overlays the client-supplied fields onto a stored speaker and
// returns the updated record. Identity and ownership fields are stripped
// from the overlay so they cannot be reassigned through an update.
func (s *SpeakerService) Update(ctx context.Context, id string, data map[string]interface{}) (*model.Speaker, error) {
	delete(data, "id")
	delete(data, "owner")
	delete(data, "created_on")

	if name, ok := data["name"]; ok {
		str, isString := name.(string)
		if !isString || strings.TrimSpace(str) == "" {
			return nil, ErrSpeakerNameRequired
		}
		data["name"] = strings.TrimSpace(str)
	}

	if len(data) > 0 {
		if err := s.speakerRepo.Merge(ctx, id, data); err != nil {
			return nil, err
		}
	}

	updated, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrSpeakerNotFound
	}
	return updated, nil
}

// Delete removes a speaker and returns its last known state
func (s *SpeakerService) Delete(ctx context.Context, speaker *model.Speaker) (*model.Speaker, error) {
	if err := s.speakerRepo.Delete(ctx, speaker.ID); err != nil {
		return nil, err
	}
	return speaker, nil
}

// ResolveSpeaker satisfies the middleware resolver interface. A miss
// returns nil without error so callers can distinguish absence from
// storage failure.
func (s *SpeakerService) ResolveSpeaker(ctx context.Context, id string) (*model.Speaker, error) {
	return s.speakerRepo.GetByID(ctx, id)
}
