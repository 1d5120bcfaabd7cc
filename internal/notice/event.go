package notice

import "time"

type EventType string

const (
	// ApplyNoticeType is the in-conversation notice for a first apply.
	ApplyNoticeType EventType = "friend_apply_notice"
	// ApplyPushType is the push reminder fired on every apply.
	ApplyPushType EventType = "friend_apply_push"
	// AcceptPushType tells a requester their apply was accepted.
	AcceptPushType EventType = "friend_accept_push"
	// FriendAddedType is the system text message recording a new friendship.
	FriendAddedType EventType = "friend_added_message"
)

// Event is one relationship side effect. SiteUserID is the recipient,
// SiteFriendID the user whose action triggered it.
type Event struct {
	Type         EventType `json:"type"`
	SiteUserID   string    `json:"site_user_id"`
	SiteFriendID string    `json:"site_friend_id"`
	Content      string    `json:"content,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
