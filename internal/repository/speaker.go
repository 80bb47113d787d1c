package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/podiumhq/podium/internal/database"
	"github.com/podiumhq/podium/internal/model"
)

// SpeakerRepository handles speaker data access
type SpeakerRepository struct {
	db database.Database
}

// NewSpeakerRepository creates a new speaker repository
func NewSpeakerRepository(db database.Database) *SpeakerRepository {
	return &SpeakerRepository{db: db}
}

// Create persists a new speaker. The owner link and creation timestamp are
// assigned here; the caller's speaker is updated with the store-assigned
// id and timestamp.
func (r *SpeakerRepository) Create(ctx context.Context, speaker *model.Speaker) error {
	query := `
		CREATE speaker CONTENT {
			name: $name,
			owner: type::record($owner_id),
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":     speaker.Name,
		"owner_id": speaker.OwnerID(),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	speaker.ID = created.ID
	speaker.CreatedOn = created.CreatedOn
	return nil
}

// GetByID retrieves a speaker by ID with its owner resolved to a summary.
// Returns (nil, nil) when no record matches.
func (r *SpeakerRepository) GetByID(ctx context.Context, id string) (*model.Speaker, error) {
	// type::record rejects malformed refs at the statement level, and a
	// ref into another table can never name a speaker. Both are misses.
	if rest, ok := strings.CutPrefix(id, "speaker:"); !ok || rest == "" {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id) FETCH owner`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	speaker, err := parseSpeakerResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return speaker, nil
}

// List retrieves all speakers, owners resolved, newest created first.
func (r *SpeakerRepository) List(ctx context.Context) ([]*model.Speaker, error) {
	query := `SELECT * FROM speaker ORDER BY created_on DESC FETCH owner`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Speaker{}, nil
	}

	speakers := make([]*model.Speaker, 0, len(records))
	for _, record := range records {
		data, ok := record.(map[string]interface{})
		if !ok {
			continue
		}
		speakers = append(speakers, parseSpeakerMap(data))
	}
	return speakers, nil
}

// Merge overlays the given fields onto the stored record. This is a shallow
// merge by key: supplied keys overwrite, absent keys are preserved.
func (r *SpeakerRepository) Merge(ctx context.Context, id string, fields map[string]interface{}) error {
	query := `UPDATE type::record($id) MERGE $data`
	vars := map[string]interface{}{
		"id":   id,
		"data": fields,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a speaker
func (r *SpeakerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// parseSpeakerResult maps a single query result to a Speaker
func parseSpeakerResult(result interface{}) (*model.Speaker, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return parseSpeakerMap(data), nil
}

// parseSpeakerMap converts a raw record map to a Speaker
func parseSpeakerMap(data map[string]interface{}) *model.Speaker {
	return &model.Speaker{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		Owner:     parseOwner(data["owner"]),
		CreatedOn: getTime(data, "created_on"),
	}
}

// parseOwner handles both a fetched owner record and a bare record link
func parseOwner(v interface{}) *model.UserSummary {
	if v == nil {
		return nil
	}

	// Fetched record: a full user map
	if data, ok := v.(map[string]interface{}); ok {
		// A bare record link can also decode to a map with "tb"/"id" keys
		if _, isLink := data["tb"]; !isLink {
			return &model.UserSummary{
				ID:          convertSurrealID(data["id"]),
				DisplayName: getString(data, "display_name"),
			}
		}
	}

	// Unfetched link: keep the id, display attribute unresolved
	if id := convertSurrealID(v); id != "" {
		return &model.UserSummary{ID: id}
	}
	return nil
}
