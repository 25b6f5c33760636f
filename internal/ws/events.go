package ws

import (
	"encoding/json"
	"time"

	"talentx/internal/domain/engagement"

	"github.com/google/uuid"
)

const (
	EventInvitationCreated       = "invitation_created"
	EventInvitationResponded     = "invitation_responded"
	EventApplicationSubmitted    = "application_submitted"
	EventApplicationStatusChange = "application_status_changed"
)

type EngagementEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	TalentID  uuid.UUID `json:"talent_id"`
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
}

// Notifier fans engagement lifecycle events out to connected subscribers.
// It satisfies the usecase notifier contract; broadcasting never blocks the
// mutation that triggered it.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) InvitationCreated(inv engagement.Invitation) {
	n.publish(EventInvitationCreated, inv.JobID, inv.TalentID, string(inv.Status))
}

func (n *Notifier) InvitationResponded(inv engagement.Invitation) {
	n.publish(EventInvitationResponded, inv.JobID, inv.TalentID, string(inv.Status))
}

func (n *Notifier) ApplicationSubmitted(app engagement.Application) {
	n.publish(EventApplicationSubmitted, app.JobID, app.TalentID, string(app.Status))
}

func (n *Notifier) ApplicationStatusChanged(app engagement.Application) {
	n.publish(EventApplicationStatusChange, app.JobID, app.TalentID, string(app.Status))
}

func (n *Notifier) publish(eventType string, jobID, talentID uuid.UUID, status string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := EngagementEvent{
		Type:      eventType,
		JobID:     jobID,
		TalentID:  talentID,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
