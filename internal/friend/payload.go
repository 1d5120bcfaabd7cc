package friend

// Request and response payload shapes for the friend command family. The
// codec in the api package turns these into the opaque bytes the transport
// carries; optional profile fields use omitempty so absent stays absent.

type ProfileRequest struct {
	SiteUserID string `json:"site_user_id,omitempty"`
	UserIDPubk string `json:"user_id_pubk,omitempty"`
}

type ProfilePayload struct {
	SiteUserID string `json:"site_user_id"`
	UserName   string `json:"user_name,omitempty"`
	UserPhoto  string `json:"user_photo,omitempty"`
	UserStatus int32  `json:"user_status,omitempty"`
}

type ProfileResponse struct {
	Profile    ProfilePayload `json:"profile"`
	Relation   Relation       `json:"relation"`
	UserIDPubk string         `json:"user_id_pubk,omitempty"`
}

type ListRequest struct {
	SiteUserID string `json:"site_user_id"`
}

type ListResponse struct {
	List []ProfilePayload `json:"list"`
}

type ApplyRequest struct {
	SiteFriendID string `json:"site_friend_id"`
	ApplyReason  string `json:"apply_reason,omitempty"`
}

type ApplyListEntry struct {
	ApplyUser   ProfilePayload `json:"apply_user"`
	ApplyReason string         `json:"apply_reason,omitempty"`
}

type ApplyListResponse struct {
	List []ApplyListEntry `json:"list"`
}

type ApplyCountResponse struct {
	ApplyCount int `json:"apply_count"`
}

type ApplyResultRequest struct {
	SiteFriendID string `json:"site_friend_id"`
	ApplyResult  bool   `json:"apply_result"`
}

type DeleteRequest struct {
	SiteFriendID string `json:"site_friend_id"`
}

type SettingRequest struct {
	SiteFriendID string `json:"site_friend_id"`
}

type SettingResponse struct {
	MessageMute bool `json:"message_mute"`
}

type UpdateSettingRequest struct {
	SiteFriendID string `json:"site_friend_id"`
	MessageMute  bool   `json:"message_mute"`
}

type MuteRequest struct {
	SiteFriendID string `json:"site_friend_id"`
}

type UpdateMuteRequest struct {
	SiteFriendID string `json:"site_friend_id"`
	Mute         bool   `json:"mute"`
}
