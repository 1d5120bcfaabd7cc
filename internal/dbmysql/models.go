package dbmysql

import "time"

// UserProfile is the public profile row. Site user id is the primary lookup
// key; global id and public key are alternate keys.
type UserProfile struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteUserID   string    `gorm:"column:site_user_id;size:64;not null;uniqueIndex" json:"site_user_id"`
	GlobalUserID string    `gorm:"column:global_user_id;size:128;index" json:"global_user_id"`
	UserIDPubk   string    `gorm:"column:user_id_pubk;type:text" json:"user_id_pubk"`
	UserName     string    `gorm:"column:user_name;size:64" json:"user_name"`
	UserPhoto    string    `gorm:"column:user_photo;size:255" json:"user_photo"`
	UserStatus   int32     `gorm:"column:user_status;default:0" json:"user_status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "site_user_profile"
}

// Friend is one direction of a friendship. The store always writes both
// directions of a pair inside one transaction; Mute is per direction.
type Friend struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteUserID   string    `gorm:"column:site_user_id;size:64;not null;index:idx_site_friend,unique" json:"site_user_id"`
	SiteFriendID string    `gorm:"column:site_friend_id;size:64;not null;index:idx_site_friend,unique" json:"site_friend_id"`
	Mute         bool      `gorm:"column:mute;default:false" json:"mute"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Friend) TableName() string {
	return "site_user_friend"
}

// FriendApply is a pending friend request from SiteUserID toward SiteFriendID.
type FriendApply struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteUserID   string    `gorm:"column:site_user_id;size:64;not null;index:idx_apply_pair" json:"site_user_id"`
	SiteFriendID string    `gorm:"column:site_friend_id;size:64;not null;index:idx_apply_pair;index" json:"site_friend_id"`
	ApplyReason  string    `gorm:"column:apply_reason;size:255" json:"apply_reason"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FriendApply) TableName() string {
	return "site_friend_apply"
}
