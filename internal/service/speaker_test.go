package service

import (
	"context"
	"errors"
	"testing"

	"github.com/podiumhq/podium/internal/model"
)

type mockSpeakerRepo struct {
	speakers map[string]*model.Speaker
	listErr  error
	getErr   error

	createCalled bool
	mergeData    map[string]interface{}
	deletedID    string
}

func newMockSpeakerRepo() *mockSpeakerRepo {
	return &mockSpeakerRepo{speakers: make(map[string]*model.Speaker)}
}

func (m *mockSpeakerRepo) Create(ctx context.Context, speaker *model.Speaker) error {
	m.createCalled = true
	speaker.ID = "speaker:created"
	stored := *speaker
	if stored.Owner != nil && stored.Owner.DisplayName == "" {
		// Simulate the re-read resolving the owner link
		stored.Owner = &model.UserSummary{ID: stored.Owner.ID, DisplayName: "Alice"}
	}
	m.speakers[speaker.ID] = &stored
	return nil
}

func (m *mockSpeakerRepo) GetByID(ctx context.Context, id string) (*model.Speaker, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.speakers[id], nil
}

func (m *mockSpeakerRepo) List(ctx context.Context) ([]*model.Speaker, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*model.Speaker
	for _, s := range m.speakers {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSpeakerRepo) Merge(ctx context.Context, id string, data map[string]interface{}) error {
	m.mergeData = data
	speaker, ok := m.speakers[id]
	if !ok {
		return nil
	}
	if name, ok := data["name"].(string); ok {
		speaker.Name = name
	}
	return nil
}

func (m *mockSpeakerRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	delete(m.speakers, id)
	return nil
}

func storedSpeaker() *model.Speaker {
	return &model.Speaker{
		ID:   "speaker:nelson",
		Name: "Nelson Mandela",
		Owner: &model.UserSummary{
			ID:          "user:alice",
			DisplayName: "Alice",
		},
	}
}

func TestSpeakerCreate_Success(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	speaker, err := svc.Create(context.Background(), "user:alice", model.CreateSpeakerRequest{Name: "Nelson Mandela"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speaker.Name != "Nelson Mandela" {
		t.Errorf("expected name preserved, got %q", speaker.Name)
	}
	if speaker.Owner == nil || speaker.Owner.ID != "user:alice" {
		t.Error("expected owner stamped from authenticated user")
	}
	if speaker.Owner.DisplayName != "Alice" {
		t.Error("expected owner resolved on re-read")
	}
}

func TestSpeakerCreate_EmptyName(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	cases := []string{"", "   ", "\t\n"}
	for _, name := range cases {
		_, err := svc.Create(context.Background(), "user:alice", model.CreateSpeakerRequest{Name: name})
		if !errors.Is(err, ErrSpeakerNameRequired) {
			t.Errorf("name %q: expected ErrSpeakerNameRequired, got %v", name, err)
		}
	}
	if repo.createCalled {
		t.Error("expected repository untouched on validation failure")
	}
}

func TestSpeakerCreate_TrimsName(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	speaker, err := svc.Create(context.Background(), "user:alice", model.CreateSpeakerRequest{Name: "  Ada Lovelace  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speaker.Name != "Ada Lovelace" {
		t.Errorf("expected trimmed name, got %q", speaker.Name)
	}
}

func TestSpeakerGet_Found(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.speakers["speaker:nelson"] = storedSpeaker()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	speaker, err := svc.Get(context.Background(), "speaker:nelson")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speaker.ID != "speaker:nelson" {
		t.Errorf("unexpected speaker: %+v", speaker)
	}
}

func TestSpeakerGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: newMockSpeakerRepo()})

	_, err := svc.Get(context.Background(), "speaker:missing")
	if !errors.Is(err, ErrSpeakerNotFound) {
		t.Errorf("expected ErrSpeakerNotFound, got %v", err)
	}
}

func TestSpeakerList_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: newMockSpeakerRepo()})

	speakers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speakers == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(speakers) != 0 {
		t.Errorf("expected no speakers, got %d", len(speakers))
	}
}

func TestSpeakerList_RepoError(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.listErr = errors.New("connection lost")
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestSpeakerUpdate_OverlaysName(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.speakers["speaker:nelson"] = storedSpeaker()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	updated, err := svc.Update(context.Background(), "speaker:nelson", map[string]interface{}{"name": "Madiba"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Madiba" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Owner == nil || updated.Owner.ID != "user:alice" {
		t.Error("expected owner untouched by update")
	}
}

func TestSpeakerUpdate_StripsProtectedFields(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.speakers["speaker:nelson"] = storedSpeaker()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	_, err := svc.Update(context.Background(), "speaker:nelson", map[string]interface{}{
		"name":  "Madiba",
		"id":    "speaker:hijacked",
		"owner": "user:bob",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.mergeData["id"]; ok {
		t.Error("expected id stripped from overlay")
	}
	if _, ok := repo.mergeData["owner"]; ok {
		t.Error("expected owner stripped from overlay")
	}
}

func TestSpeakerUpdate_EmptyName(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.speakers["speaker:nelson"] = storedSpeaker()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	cases := []interface{}{"", "   ", 42}
	for _, name := range cases {
		_, err := svc.Update(context.Background(), "speaker:nelson", map[string]interface{}{"name": name})
		if !errors.Is(err, ErrSpeakerNameRequired) {
			t.Errorf("name %v: expected ErrSpeakerNameRequired, got %v", name, err)
		}
	}
}

func TestSpeakerUpdate_NoFieldsSkipsMerge(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	repo.speakers["speaker:nelson"] = storedSpeaker()
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	updated, err := svc.Update(context.Background(), "speaker:nelson", map[string]interface{}{
		"id": "speaker:hijacked",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.mergeData != nil {
		t.Error("expected merge skipped when overlay is empty after stripping")
	}
	if updated.Name != "Nelson Mandela" {
		t.Errorf("expected record unchanged, got %q", updated.Name)
	}
}

func TestSpeakerDelete_ReturnsLastKnownState(t *testing.T) {
	t.Parallel()

	repo := newMockSpeakerRepo()
	speaker := storedSpeaker()
	repo.speakers[speaker.ID] = speaker
	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: repo})

	deleted, err := svc.Delete(context.Background(), speaker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deletedID != "speaker:nelson" {
		t.Errorf("expected delete issued for speaker:nelson, got %q", repo.deletedID)
	}
	if deleted.Name != "Nelson Mandela" {
		t.Error("expected last known representation returned")
	}
}

func TestResolveSpeaker_MissReturnsNilNil(t *testing.T) {
	t.Parallel()

	svc := NewSpeakerService(SpeakerServiceConfig{SpeakerRepo: newMockSpeakerRepo()})

	speaker, err := svc.ResolveSpeaker(context.Background(), "speaker:missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speaker != nil {
		t.Errorf("expected nil speaker, got %+v", speaker)
	}
}
