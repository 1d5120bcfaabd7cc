package dbmysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"friendsite/internal/friend"
)

// FriendStore implements friend.RelationStore on MySQL. Relation mutations
// touch both directions of a pair inside one transaction, and the apply
// primitives do their check-and-write atomically so concurrent callers
// cannot overshoot the limit or double-consume a pending apply.
type FriendStore struct {
	db *gorm.DB
}

func NewFriendStore(db *gorm.DB) *FriendStore {
	return &FriendStore{db: db}
}

func (s *FriendStore) GetRelation(ctx context.Context, siteUserID, siteFriendID string) (friend.Relation, error) {
	if siteUserID != "" && siteUserID == siteFriendID {
		return friend.RelationSelf, nil
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&Friend{}).
		Where("site_user_id = ? AND site_friend_id = ?", siteUserID, siteFriendID).
		Count(&count).Error
	if err != nil {
		return friend.RelationStranger, err
	}
	if count > 0 {
		return friend.RelationFriend, nil
	}
	return friend.RelationStranger, nil
}

func (s *FriendStore) GetFriends(ctx context.Context, siteUserID string) ([]friend.FriendSummary, error) {
	var rows []Friend
	err := s.db.WithContext(ctx).
		Where("site_user_id = ?", siteUserID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []friend.FriendSummary{}, nil
	}

	friendIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		friendIDs = append(friendIDs, row.SiteFriendID)
	}

	var profiles []UserProfile
	err = s.db.WithContext(ctx).
		Where("site_user_id IN ?", friendIDs).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*UserProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].SiteUserID] = &profiles[i]
	}

	// Preserve the relation-row order; a friend without a profile row still
	// shows up with their id.
	summaries := make([]friend.FriendSummary, 0, len(rows))
	for _, row := range rows {
		summary := friend.FriendSummary{SiteUserID: row.SiteFriendID}
		if profile, ok := byID[row.SiteFriendID]; ok {
			summary.UserName = profile.UserName
			summary.UserPhoto = profile.UserPhoto
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *FriendStore) DeleteFriend(ctx context.Context, siteUserID, siteFriendID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(
			"(site_user_id = ? AND site_friend_id = ?) OR (site_user_id = ? AND site_friend_id = ?)",
			siteUserID, siteFriendID, siteFriendID, siteUserID,
		).Delete(&Friend{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return friend.ErrNotFound
		}
		return nil
	})
}

func (s *FriendStore) GetFriendSetting(ctx context.Context, siteUserID, siteFriendID string) (*friend.FriendSetting, error) {
	var row Friend
	err := s.db.WithContext(ctx).
		Where("site_user_id = ? AND site_friend_id = ?", siteUserID, siteFriendID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, friend.ErrNotFound
		}
		return nil, err
	}
	return &friend.FriendSetting{MessageMute: row.Mute}, nil
}

func (s *FriendStore) UpdateFriendSetting(ctx context.Context, siteUserID, siteFriendID string, mute bool) error {
	res := s.db.WithContext(ctx).
		Model(&Friend{}).
		Where("site_user_id = ? AND site_friend_id = ?", siteUserID, siteFriendID).
		Update("mute", mute)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return friend.ErrNotFound
	}
	return nil
}

func (s *FriendStore) CreateApply(ctx context.Context, siteUserID, siteFriendID, reason string, limit int) (int, error) {
	prior := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The count must be a locking read: a plain snapshot read would let
		// two concurrent transactions both see limit-1 and both insert.
		var count int64
		err := tx.Model(&FriendApply{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("site_user_id = ? AND site_friend_id = ?", siteUserID, siteFriendID).
			Count(&count).Error
		if err != nil {
			return err
		}
		prior = int(count)
		if prior >= limit {
			return friend.ErrApplyLimit
		}

		apply := FriendApply{
			SiteUserID:   siteUserID,
			SiteFriendID: siteFriendID,
			ApplyReason:  reason,
		}
		return tx.Create(&apply).Error
	})
	if err != nil {
		return prior, err
	}
	return prior, nil
}

func (s *FriendStore) CountApplies(ctx context.Context, siteUserID string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&FriendApply{}).
		Where("site_friend_id = ?", siteUserID).
		Count(&count).Error
	return int(count), err
}

func (s *FriendStore) ListApplies(ctx context.Context, siteUserID string) ([]friend.ApplyRecord, error) {
	var rows []FriendApply
	err := s.db.WithContext(ctx).
		Where("site_friend_id = ?", siteUserID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]friend.ApplyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, friend.ApplyRecord{
			SiteUserID:   row.SiteUserID,
			SiteFriendID: row.SiteFriendID,
			ApplyReason:  row.ApplyReason,
			ApplyTime:    row.CreatedAt,
		})
	}
	return records, nil
}

func (s *FriendStore) ResolveApply(ctx context.Context, siteUserID, siteFriendID string, agree bool) (*friend.ApplyRecord, error) {
	var record *friend.ApplyRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []FriendApply
		err := tx.Where("site_user_id = ? AND site_friend_id = ?", siteFriendID, siteUserID).
			Order("created_at ASC").
			Find(&rows).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return friend.ErrNotFound
		}

		// Consume the whole backlog from this requester; accepting one apply
		// forgives the rest.
		res := tx.Where("site_user_id = ? AND site_friend_id = ?", siteFriendID, siteUserID).
			Delete(&FriendApply{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return friend.ErrNotFound
		}

		if agree {
			pair := []Friend{
				{SiteUserID: siteUserID, SiteFriendID: siteFriendID},
				{SiteUserID: siteFriendID, SiteFriendID: siteUserID},
			}
			for i := range pair {
				err := tx.Where(
					"site_user_id = ? AND site_friend_id = ?",
					pair[i].SiteUserID, pair[i].SiteFriendID,
				).FirstOrCreate(&pair[i]).Error
				if err != nil {
					return err
				}
			}
		}

		first := rows[0]
		record = &friend.ApplyRecord{
			SiteUserID:   first.SiteUserID,
			SiteFriendID: first.SiteFriendID,
			ApplyReason:  first.ApplyReason,
			ApplyTime:    first.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
