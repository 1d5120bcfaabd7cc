package notice

import (
	"time"

	"friendsite/internal/friend"
)

// Notifier adapts the manager to the sink contract the core consumes. Every
// call enqueues asynchronously and returns immediately; a state transition
// never waits on, or fails with, its notifications.
type Notifier struct {
	manager *Manager
}

func NewNotifier(manager *Manager) *Notifier {
	return &Notifier{manager: manager}
}

func (n *Notifier) NotifyNewApply(siteUserID, siteFriendID string) {
	n.manager.NotifyAsync(Event{
		Type:         ApplyNoticeType,
		SiteUserID:   siteFriendID,
		SiteFriendID: siteUserID,
		Content:      "requested to add you as a friend",
		CreatedAt:    time.Now(),
	})
}

func (n *Notifier) PushApplyCreated(siteUserID, siteFriendID string) {
	n.manager.NotifyAsync(Event{
		Type:         ApplyPushType,
		SiteUserID:   siteFriendID,
		SiteFriendID: siteUserID,
		Content:      "you have a new friend apply",
		CreatedAt:    time.Now(),
	})
}

func (n *Notifier) PushApplyAccepted(siteUserID, siteFriendID string) {
	n.manager.NotifyAsync(Event{
		Type:         AcceptPushType,
		SiteUserID:   siteFriendID,
		SiteFriendID: siteUserID,
		Content:      "accepted your friend apply",
		CreatedAt:    time.Now(),
	})
}

func (n *Notifier) PostFriendAddedMessage(record *friend.ApplyRecord) {
	n.manager.NotifyAsync(Event{
		Type:         FriendAddedType,
		SiteUserID:   record.SiteUserID,
		SiteFriendID: record.SiteFriendID,
		Content:      "you are now friends",
		CreatedAt:    time.Now(),
	})
}
