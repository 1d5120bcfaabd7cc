package friend

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"friendsite/internal/api"
)

// Handler is the command entry point for the friend operation family. Each
// method decodes its payload, delegates to the services and maps the outcome
// to a response status. Malformed payloads surface as the opaque system
// error and are logged with command context, never with the payload itself.
type Handler struct {
	friends FriendService
	applies ApplyService
	codec   api.Codec
	log     *logrus.Logger
}

func NewHandler(friends FriendService, applies ApplyService, codec api.Codec, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{friends: friends, applies: applies, codec: codec, log: log}
}

// Register binds every friend action onto the dispatcher.
func (h *Handler) Register(d *api.Dispatcher) {
	d.Register("api.friend.profile", h.Profile)
	d.Register("api.friend.list", h.List)
	d.Register("api.friend.apply", h.Apply)
	d.Register("api.friend.applyList", h.ApplyList)
	d.Register("api.friend.applyCount", h.ApplyCount)
	d.Register("api.friend.applyResult", h.ApplyResult)
	d.Register("api.friend.delete", h.Delete)
	d.Register("api.friend.setting", h.Setting)
	d.Register("api.friend.updateSetting", h.UpdateSetting)
	d.Register("api.friend.mute", h.Mute)
	d.Register("api.friend.updateMute", h.UpdateMute)
}

func (h *Handler) Profile(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req ProfileRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	result, err := h.friends.Profile(ctx, cmd.SiteUserID, req.SiteUserID, req.UserIDPubk)
	if err != nil {
		return h.failure(cmd, err)
	}
	if result == nil {
		// Nothing to show; distinct from a malformed request.
		return api.Success(nil)
	}

	resp := ProfileResponse{
		Profile: ProfilePayload{
			SiteUserID: result.Profile.SiteUserID,
			UserName:   result.Profile.UserName,
			UserPhoto:  result.Profile.UserPhoto,
			UserStatus: result.Profile.UserStatus,
		},
		Relation:   result.Relation,
		UserIDPubk: result.Profile.UserIDPubk,
	}
	return h.success(cmd, &resp)
}

func (h *Handler) List(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req ListRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	friends, err := h.friends.Friends(ctx, cmd.SiteUserID, req.SiteUserID)
	if err != nil {
		return h.failure(cmd, err)
	}

	resp := ListResponse{List: make([]ProfilePayload, 0, len(friends))}
	for _, f := range friends {
		resp.List = append(resp.List, ProfilePayload{
			SiteUserID: f.SiteUserID,
			UserName:   f.UserName,
			UserPhoto:  f.UserPhoto,
		})
	}
	return h.success(cmd, &resp)
}

func (h *Handler) Apply(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req ApplyRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	if err := h.applies.Apply(ctx, cmd.SiteUserID, req.SiteFriendID, req.ApplyReason); err != nil {
		return h.failure(cmd, err)
	}
	return api.Success(nil)
}

func (h *Handler) ApplyList(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	entries, err := h.applies.ApplyList(ctx, cmd.SiteUserID)
	if err != nil {
		return h.failure(cmd, err)
	}

	resp := ApplyListResponse{List: make([]ApplyListEntry, 0, len(entries))}
	for _, entry := range entries {
		resp.List = append(resp.List, ApplyListEntry{
			ApplyUser: ProfilePayload{
				SiteUserID: entry.Profile.SiteUserID,
				UserName:   entry.Profile.UserName,
				UserPhoto:  entry.Profile.UserPhoto,
			},
			ApplyReason: entry.Reason,
		})
	}
	return h.success(cmd, &resp)
}

func (h *Handler) ApplyCount(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	count, err := h.applies.ApplyCount(ctx, cmd.SiteUserID)
	if err != nil {
		return h.failure(cmd, err)
	}
	return h.success(cmd, &ApplyCountResponse{ApplyCount: count})
}

func (h *Handler) ApplyResult(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req ApplyResultRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	if err := h.applies.ApplyResult(ctx, cmd.SiteUserID, req.SiteFriendID, req.ApplyResult); err != nil {
		return h.failure(cmd, err)
	}
	return api.Success(nil)
}

func (h *Handler) Delete(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req DeleteRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	if err := h.friends.Delete(ctx, cmd.SiteUserID, req.SiteFriendID); err != nil {
		return h.failure(cmd, err)
	}
	return api.Success(nil)
}

func (h *Handler) Setting(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req SettingRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	setting, err := h.friends.GetSetting(ctx, cmd.SiteUserID, req.SiteFriendID)
	if err != nil {
		return h.failure(cmd, err)
	}
	return h.success(cmd, &SettingResponse{MessageMute: setting.MessageMute})
}

func (h *Handler) UpdateSetting(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req UpdateSettingRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	if err := h.friends.UpdateSetting(ctx, cmd.SiteUserID, req.SiteFriendID, req.MessageMute); err != nil {
		return h.failure(cmd, err)
	}
	return api.Success(nil)
}

func (h *Handler) Mute(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req MuteRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	setting, err := h.friends.GetSetting(ctx, cmd.SiteUserID, req.SiteFriendID)
	if err != nil {
		return h.failure(cmd, err)
	}
	return h.success(cmd, &SettingResponse{MessageMute: setting.MessageMute})
}

func (h *Handler) UpdateMute(ctx context.Context, cmd *api.Command) *api.CommandResponse {
	var req UpdateMuteRequest
	if err := h.codec.Unmarshal(cmd.Params, &req); err != nil {
		return h.decodeFailure(cmd, err)
	}

	if err := h.friends.UpdateSetting(ctx, cmd.SiteUserID, req.SiteFriendID, req.Mute); err != nil {
		return h.failure(cmd, err)
	}
	return api.Success(nil)
}

func (h *Handler) success(cmd *api.Command, body interface{}) *api.CommandResponse {
	params, err := h.codec.Marshal(body)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"action":       cmd.Action,
			"site_user_id": cmd.SiteUserID,
			"error":        err,
		}).Error("failed to encode response payload")
		return api.Failure(api.StatusSystemError)
	}
	return api.Success(params)
}

func (h *Handler) decodeFailure(cmd *api.Command, err error) *api.CommandResponse {
	h.log.WithFields(logrus.Fields{
		"action":       cmd.Action,
		"site_user_id": cmd.SiteUserID,
		"error":        err,
	}).Error("failed to decode request payload")
	return api.Failure(api.StatusSystemError)
}

func (h *Handler) failure(cmd *api.Command, err error) *api.CommandResponse {
	status := statusOf(err)
	if status == api.StatusError || status == api.StatusSystemError {
		h.log.WithFields(logrus.Fields{
			"action":       cmd.Action,
			"site_user_id": cmd.SiteUserID,
			"client_ip":    cmd.ClientIP,
			"error":        err,
		}).Warn("command failed")
	}
	return api.Failure(status)
}

func statusOf(err error) api.Status {
	switch {
	case err == nil:
		return api.StatusSuccess
	case errors.Is(err, ErrInvalidParam):
		return api.StatusInvalidParam
	case errors.Is(err, ErrApplySelf):
		return api.StatusApplySelf
	case errors.Is(err, ErrAlreadyFriend):
		return api.StatusAlreadyFriend
	case errors.Is(err, ErrApplyLimit):
		return api.StatusApplyLimit
	case errors.Is(err, ErrExecuteFailed):
		return api.StatusDatabaseError
	default:
		return api.StatusError
	}
}
