package dbmysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"friendsite/internal/friend"
)

// ProfileStore implements friend.ProfileStore on the profile table.
type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) GetProfileBySiteID(ctx context.Context, siteUserID string) (*friend.UserProfile, error) {
	if siteUserID == "" {
		return nil, friend.ErrNotFound
	}
	var row UserProfile
	err := s.db.WithContext(ctx).
		Where("site_user_id = ?", siteUserID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, friend.ErrNotFound
		}
		return nil, err
	}
	return toProfile(&row), nil
}

func (s *ProfileStore) GetProfileByGlobalID(ctx context.Context, globalUserID string) (*friend.UserProfile, error) {
	if globalUserID == "" {
		return nil, friend.ErrNotFound
	}
	var row UserProfile
	err := s.db.WithContext(ctx).
		Where("global_user_id = ?", globalUserID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, friend.ErrNotFound
		}
		return nil, err
	}
	return toProfile(&row), nil
}

func toProfile(row *UserProfile) *friend.UserProfile {
	return &friend.UserProfile{
		SiteUserID:   row.SiteUserID,
		GlobalUserID: row.GlobalUserID,
		UserIDPubk:   row.UserIDPubk,
		UserName:     row.UserName,
		UserPhoto:    row.UserPhoto,
		UserStatus:   row.UserStatus,
	}
}
