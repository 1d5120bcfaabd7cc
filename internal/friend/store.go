package friend

import "context"

// RelationStore is the durable store of pairwise relation state, pending
// applies and per-pair settings. Implementations must keep both directions
// of a relation consistent within a single mutation, and must make
// CreateApply and ResolveApply atomic: concurrent callers may not overshoot
// the apply limit or both consume the same pending apply.
type RelationStore interface {
	GetRelation(ctx context.Context, siteUserID, siteFriendID string) (Relation, error)
	GetFriends(ctx context.Context, siteUserID string) ([]FriendSummary, error)
	DeleteFriend(ctx context.Context, siteUserID, siteFriendID string) error
	GetFriendSetting(ctx context.Context, siteUserID, siteFriendID string) (*FriendSetting, error)
	UpdateFriendSetting(ctx context.Context, siteUserID, siteFriendID string, mute bool) error

	// CreateApply persists a new pending apply unless the requester already
	// holds limit unresolved applies toward the target, in which case it
	// returns ErrApplyLimit. The returned count is the number of applies
	// outstanding before this call.
	CreateApply(ctx context.Context, siteUserID, siteFriendID, reason string, limit int) (int, error)
	CountApplies(ctx context.Context, siteUserID string) (int, error)
	ListApplies(ctx context.Context, siteUserID string) ([]ApplyRecord, error)

	// ResolveApply consumes every pending apply from siteFriendID toward
	// siteUserID; on agree it also promotes the pair to friends in the same
	// transaction. It returns the earliest consumed record, or ErrNotFound
	// when there was nothing pending (first resolver wins).
	ResolveApply(ctx context.Context, siteUserID, siteFriendID string, agree bool) (*ApplyRecord, error)
}

// ProfileStore resolves public profiles by their lookup keys.
type ProfileStore interface {
	GetProfileBySiteID(ctx context.Context, siteUserID string) (*UserProfile, error)
	GetProfileByGlobalID(ctx context.Context, globalUserID string) (*UserProfile, error)
}

// NotificationSink delivers relationship-event side effects. Deliveries are
// best effort and asynchronous; a failed delivery never fails the state
// transition that triggered it.
type NotificationSink interface {
	// NotifyNewApply posts the in-conversation notice shown for a requester's
	// first outstanding apply toward the target.
	NotifyNewApply(siteUserID, siteFriendID string)
	// PushApplyCreated sends the push reminder fired on every successful apply.
	PushApplyCreated(siteUserID, siteFriendID string)
	// PushApplyAccepted tells the requester their apply was accepted.
	PushApplyAccepted(siteUserID, siteFriendID string)
	// PostFriendAddedMessage records the new friendship as a system text
	// message, addressed from the consumed apply record.
	PostFriendAddedMessage(record *ApplyRecord)
}
