package friend

import "time"

// Relation is the friendship state between two site users. It is symmetric:
// the store maintains both directions of a pair as one unit.
type Relation int32

const (
	RelationStranger Relation = 0
	RelationFriend   Relation = 1
	RelationSelf     Relation = 2
)

// ApplyLimit caps the number of unresolved applies one requester may hold
// toward the same target.
const ApplyLimit = 5

// UserProfile is the public profile snapshot owned by the profile store.
type UserProfile struct {
	SiteUserID   string
	GlobalUserID string
	UserIDPubk   string
	UserName     string
	UserPhoto    string
	UserStatus   int32
}

// FriendSummary is the short profile form used in friend listings.
type FriendSummary struct {
	SiteUserID string
	UserName   string
	UserPhoto  string
}

// ApplyRecord is one pending friend apply from SiteUserID toward SiteFriendID.
type ApplyRecord struct {
	SiteUserID   string
	SiteFriendID string
	ApplyReason  string
	ApplyTime    time.Time
}

// ApplyEntry pairs a pending apply with the requester's resolved profile.
type ApplyEntry struct {
	Profile UserProfile
	Reason  string
}

// FriendSetting is the per-direction attribute set an owner keeps for one
// friend. Muting is not symmetric.
type FriendSetting struct {
	MessageMute bool
}

// ProfileResult is the profile operation outcome: the target's profile plus
// the caller's relation to them.
type ProfileResult struct {
	Profile  UserProfile
	Relation Relation
}
