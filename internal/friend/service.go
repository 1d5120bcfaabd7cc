package friend

import (
	"context"
	"errors"
)

// FriendService decides whether relation operations are permitted for a pair
// of site users and performs the minimal store mutations.
type FriendService interface {
	Profile(ctx context.Context, siteUserID, friendKey, userIDPubk string) (*ProfileResult, error)
	Friends(ctx context.Context, siteUserID, requestedID string) ([]FriendSummary, error)
	Delete(ctx context.Context, siteUserID, siteFriendID string) error
	GetSetting(ctx context.Context, siteUserID, siteFriendID string) (*FriendSetting, error)
	UpdateSetting(ctx context.Context, siteUserID, siteFriendID string, mute bool) error
}

type friendService struct {
	store    RelationStore
	profiles ProfileStore
}

func NewFriendService(store RelationStore, profiles ProfileStore) FriendService {
	return &friendService{store: store, profiles: profiles}
}

// Profile resolves the target by site id first, falling back to the global
// id. A target that cannot be resolved is not an error: the caller gets a
// nil result and renders "nothing to show".
func (s *friendService) Profile(ctx context.Context, siteUserID, friendKey, userIDPubk string) (*ProfileResult, error) {
	if friendKey == "" && userIDPubk == "" {
		return nil, ErrInvalidParam
	}

	profile, err := s.profiles.GetProfileBySiteID(ctx, friendKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if profile == nil || profile.SiteUserID == "" {
		profile, err = s.profiles.GetProfileByGlobalID(ctx, friendKey)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	if profile == nil || profile.SiteUserID == "" {
		return nil, nil
	}

	relation, err := s.store.GetRelation(ctx, siteUserID, profile.SiteUserID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{Profile: *profile, Relation: relation}, nil
}

// Friends lists the caller's own friends; listing anyone else's is rejected.
func (s *friendService) Friends(ctx context.Context, siteUserID, requestedID string) ([]FriendSummary, error) {
	if requestedID == "" || requestedID != siteUserID {
		return nil, ErrInvalidParam
	}
	return s.store.GetFriends(ctx, siteUserID)
}

func (s *friendService) Delete(ctx context.Context, siteUserID, siteFriendID string) error {
	if siteUserID == "" || siteFriendID == "" || siteUserID == siteFriendID {
		return ErrInvalidParam
	}
	return s.store.DeleteFriend(ctx, siteUserID, siteFriendID)
}

// GetSetting reads the mute flag the caller keeps for siteFriendID. A pair
// with no settings row reports a database-execution failure rather than a
// default; clients are expected to have initialized the row.
func (s *friendService) GetSetting(ctx context.Context, siteUserID, siteFriendID string) (*FriendSetting, error) {
	if siteUserID == "" || siteFriendID == "" {
		return nil, ErrInvalidParam
	}
	setting, err := s.store.GetFriendSetting(ctx, siteUserID, siteFriendID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrExecuteFailed
		}
		return nil, err
	}
	return setting, nil
}

func (s *friendService) UpdateSetting(ctx context.Context, siteUserID, siteFriendID string, mute bool) error {
	if siteUserID == "" || siteFriendID == "" {
		return ErrInvalidParam
	}
	if err := s.store.UpdateFriendSetting(ctx, siteUserID, siteFriendID, mute); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrExecuteFailed
		}
		return err
	}
	return nil
}
