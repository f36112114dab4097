package notify

import (
	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/rs/zerolog/log"
)

// UserNotifier surfaces mutation outcomes. Every outcome is logged; a
// push notification additionally goes to the journey owner when a push
// manager is configured.
type UserNotifier struct {
	TargetUser string

	pushManager *PushManager
}

func NewUserNotifier(targetUser string, pushManager *PushManager) *UserNotifier {
	return &UserNotifier{
		TargetUser:  targetUser,
		pushManager: pushManager,
	}
}

func (n *UserNotifier) Success(message string) {
	log.Info().Str("user", n.TargetUser).Msg(message)

	n.push("Itinerary updated", message)
}

func (n *UserNotifier) Failure(message string) {
	log.Warn().Str("user", n.TargetUser).Msg(message)

	n.push("Itinerary update failed", message)
}

func (n *UserNotifier) push(title string, message string) {
	if n.pushManager == nil || n.TargetUser == "" {
		return
	}

	err := n.pushManager.SendPush(travelplan.Notification{
		TargetUser: n.TargetUser,
		Type:       travelplan.NotificationTypePush,
		Title:      title,
		Message:    message,
	})
	if err != nil {
		log.Debug().Err(err).Str("user", n.TargetUser).Msg("Push notification not delivered")
	}
}
