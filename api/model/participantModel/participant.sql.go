package participantmodel

import (
	"log/slog"
	"time"

	"github.com/eventflow-app/eventflow-api/type/shared/model"
)

func (r *ParticipantRepository) addToPostgres(eventId string, ids []string) error {
	rows := make([]*model.Participant, len(ids))
	for i, id := range ids {
		rows[i] = &model.Participant{
			ID:          id,
			EventID:     eventId,
			EmailStatus: "pending",
		}
	}

	return r.db.Create(rows).Error
}

func (r *ParticipantRepository) getByEventFromPostgres(eventId string) ([]*model.Participant, error) {
	var rows []*model.Participant
	err := r.db.Where("event_id = ?", eventId).Order("created_at asc").Find(&rows).Error
	return rows, err
}

func (r *ParticipantRepository) getByIdsFromPostgres(ids []string) ([]*model.Participant, error) {
	var rows []*model.Participant
	err := r.db.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *ParticipantRepository) touchInPostgres(participantId string) error {
	return r.db.Model(&model.Participant{}).
		Where("id = ?", participantId).
		Update("updated_at", time.Now()).Error
}

func (r *ParticipantRepository) deleteFromPostgres(participantId string) error {
	return r.db.Where("id = ?", participantId).Delete(&model.Participant{}).Error
}

// SetEmailStatus updates the delivery status column.
func (r *ParticipantRepository) SetEmailStatus(participantId string, status string) error {
	err := r.db.Model(&model.Participant{}).
		Where("id = ?", participantId).
		Update("email_status", status).Error

	if err != nil {
		slog.Error("Participant SetEmailStatus failed", "error", err, "participant_id", participantId, "status", status)
	}
	return err
}

// MarkCheckedIn flags the participant as checked in at the event.
func (r *ParticipantRepository) MarkCheckedIn(participantId string) error {
	err := r.db.Model(&model.Participant{}).
		Where("id = ?", participantId).
		Update("checked_in", true).Error

	if err != nil {
		slog.Error("Participant MarkCheckedIn failed", "error", err, "participant_id", participantId)
	}
	return err
}
