package participantmodel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ParticipantRepository handles all participant database operations.
// PostgreSQL keeps the index/status row; MongoDB holds the dynamic field map
// under the same ID.
type ParticipantRepository struct {
	db    *gorm.DB
	mongo *mongo.Database
}

// CombinedParticipant merges the relational row with the dynamic data.
type CombinedParticipant struct {
	ID          string         `json:"id"`
	EventID     string         `json:"event_id"`
	EmailStatus string         `json:"email_status"`
	CheckedIn   bool           `json:"checked_in"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DynamicData map[string]any `json:"data"`
}

// DisplayName returns the participant's name field, falling back to the ID
// so error reports and filenames always have something to show.
func (p *CombinedParticipant) DisplayName() string {
	if name, ok := p.DynamicData["name"].(string); ok && name != "" {
		return name
	}
	return p.ID
}

// Email returns the participant's email field when present.
func (p *CombinedParticipant) Email() string {
	if email, ok := p.DynamicData["email"].(string); ok {
		return email
	}
	return ""
}

func NewParticipantRepository(db *gorm.DB, mongoDb *mongo.Database) *ParticipantRepository {
	return &ParticipantRepository{db: db, mongo: mongoDb}
}

// Add inserts participants into both stores with shared UUIDs. Mongo first;
// a Postgres failure rolls the documents back so the stores stay aligned.
func (r *ParticipantRepository) Add(eventId string, participants []map[string]any) ([]*CombinedParticipant, error) {
	ids := make([]string, len(participants))
	for i := range participants {
		ids[i] = uuid.New().String()
	}

	if err := r.addToMongo(eventId, participants, ids); err != nil {
		slog.Error("Participant Add Mongo failed", "error", err, "event_id", eventId)
		return nil, fmt.Errorf("mongo insertion failed: %w", err)
	}

	if err := r.addToPostgres(eventId, ids); err != nil {
		slog.Error("Participant Add Postgres failed", "error", err, "event_id", eventId)
		r.removeFromMongo(ids)
		return nil, fmt.Errorf("postgres insertion failed: %w", err)
	}

	slog.Info("Participant Add completed", "event_id", eventId, "count", len(ids))

	return r.GetByEvent(eventId)
}

// GetByEvent returns combined participant records for one event.
func (r *ParticipantRepository) GetByEvent(eventId string) ([]*CombinedParticipant, error) {
	rows, err := r.getByEventFromPostgres(eventId)
	if err != nil {
		return nil, fmt.Errorf("failed to get postgres participants: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	dataById, err := r.getDataByIds(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get mongo participants: %w", err)
	}

	combined := make([]*CombinedParticipant, 0, len(rows))
	for _, row := range rows {
		combined = append(combined, combine(row, dataById[row.ID]))
	}

	return combined, nil
}

// GetByIds resolves a batch of participant IDs. IDs with no index row come
// back in missing; the call only errors on store failures.
func (r *ParticipantRepository) GetByIds(ids []string) ([]*CombinedParticipant, []string, error) {
	rows, err := r.getByIdsFromPostgres(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get postgres participants: %w", err)
	}

	found := map[string]bool{}
	for _, row := range rows {
		found[row.ID] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	dataById, err := r.getDataByIds(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get mongo participants: %w", err)
	}

	combined := make([]*CombinedParticipant, 0, len(rows))
	for _, row := range rows {
		combined = append(combined, combine(row, dataById[row.ID]))
	}

	return combined, missing, nil
}

// GetById returns nil, nil when the participant does not exist.
func (r *ParticipantRepository) GetById(participantId string) (*CombinedParticipant, error) {
	combined, missing, err := r.GetByIds([]string{participantId})
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 || len(combined) == 0 {
		return nil, nil
	}
	return combined[0], nil
}

// Edit replaces the participant's dynamic data and touches the index row.
func (r *ParticipantRepository) Edit(participantId string, data map[string]any) (*CombinedParticipant, error) {
	existing, err := r.GetById(participantId)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.updateInMongo(participantId, data); err != nil {
		slog.Error("Participant Edit Mongo failed", "error", err, "participant_id", participantId)
		return nil, err
	}

	if err := r.touchInPostgres(participantId); err != nil {
		slog.Warn("Participant Edit timestamp update failed", "error", err, "participant_id", participantId)
	}

	return r.GetById(participantId)
}

// Delete removes the participant from both stores.
func (r *ParticipantRepository) Delete(participantId string) (*CombinedParticipant, error) {
	existing, err := r.GetById(participantId)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.deleteFromPostgres(participantId); err != nil {
		slog.Error("Participant Delete Postgres failed", "error", err, "participant_id", participantId)
		return nil, err
	}

	r.removeFromMongo([]string{participantId})

	return existing, nil
}
