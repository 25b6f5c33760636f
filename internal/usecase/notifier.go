package usecase

import "talentx/internal/domain/engagement"

// EngagementNotifier receives lifecycle events after a mutation commits.
// Delivery is fire-and-forget; a nil notifier disables events.
type EngagementNotifier interface {
	InvitationCreated(inv engagement.Invitation)
	InvitationResponded(inv engagement.Invitation)
	ApplicationSubmitted(app engagement.Application)
	ApplicationStatusChanged(app engagement.Application)
}
