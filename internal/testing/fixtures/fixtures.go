// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	speaker := f.CreateSpeaker(t, user)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/podiumhq/podium/internal/database"
	"github.com/podiumhq/podium/internal/model"
	"github.com/podiumhq/podium/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	userRepo    *repository.UserRepository
	speakerRepo *repository.SpeakerRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		userRepo:    repository.NewUserRepository(db),
		speakerRepo: repository.NewSpeakerRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout, released when the test finishes
func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// UserOpts customizes user creation
type UserOpts struct {
	Email       string
	DisplayName string
	Password    string
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:       fmt.Sprintf("user_%s@test.local", randomID()),
		DisplayName: fmt.Sprintf("User %s", randomID()),
		Password:    "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hashStr := string(hash)

	user := &model.User{
		Email:       o.Email,
		DisplayName: o.DisplayName,
		Hash:        &hashStr,
	}
	if err := f.userRepo.Create(ctx(t), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	user.Hash = nil // Don't expose hash in fixture
	return user
}

// SpeakerOpts customizes speaker creation
type SpeakerOpts struct {
	Name string
}

// CreateSpeaker creates a speaker owned by the given user
func (f *Factory) CreateSpeaker(t *testing.T, owner *model.User, opts ...func(*SpeakerOpts)) *model.Speaker {
	t.Helper()

	o := &SpeakerOpts{
		Name: fmt.Sprintf("Speaker %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	speaker := &model.Speaker{
		Name:  o.Name,
		Owner: &model.UserSummary{ID: owner.ID},
	}
	if err := f.speakerRepo.Create(ctx(t), speaker); err != nil {
		t.Fatalf("fixtures: failed to create speaker: %v", err)
	}

	created, err := f.speakerRepo.GetByID(ctx(t), speaker.ID)
	if err != nil || created == nil {
		t.Fatalf("fixtures: failed to re-read speaker: %v", err)
	}
	return created
}
