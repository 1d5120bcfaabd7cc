package friend

import (
	"context"
	"errors"
)

// ApplyService owns the pending-apply lifecycle: creation under the rate
// limit, listing and counting for the target, and resolution with its
// side-effect notifications.
type ApplyService interface {
	Apply(ctx context.Context, siteUserID, siteFriendID, reason string) error
	ApplyList(ctx context.Context, siteUserID string) ([]ApplyEntry, error)
	ApplyCount(ctx context.Context, siteUserID string) (int, error)
	ApplyResult(ctx context.Context, siteUserID, siteFriendID string, agree bool) error
}

type applyService struct {
	store    RelationStore
	profiles ProfileStore
	sink     NotificationSink
}

func NewApplyService(store RelationStore, profiles ProfileStore, sink NotificationSink) ApplyService {
	return &applyService{store: store, profiles: profiles, sink: sink}
}

// Apply runs the checks in fixed order: blank caller, self-apply, existing
// friendship, then the rate-limited insert. Only the insert writes, so a
// rejection earlier in the chain leaves no trace. The conversation notice
// fires only for the requester's first outstanding apply toward this target;
// the push reminder fires every time.
func (s *applyService) Apply(ctx context.Context, siteUserID, siteFriendID, reason string) error {
	if siteUserID == "" {
		return ErrInvalidParam
	}
	if siteUserID == siteFriendID {
		return ErrApplySelf
	}

	relation, err := s.store.GetRelation(ctx, siteUserID, siteFriendID)
	if err != nil {
		return err
	}
	if relation == RelationFriend {
		return ErrAlreadyFriend
	}

	prior, err := s.store.CreateApply(ctx, siteUserID, siteFriendID, reason, ApplyLimit)
	if err != nil {
		return err
	}

	if prior == 0 {
		s.sink.NotifyNewApply(siteUserID, siteFriendID)
	}
	s.sink.PushApplyCreated(siteUserID, siteFriendID)
	return nil
}

// ApplyList returns every pending apply targeting the caller together with
// the requester's profile. Applies whose requester can no longer be resolved
// are skipped rather than failing the whole list.
func (s *applyService) ApplyList(ctx context.Context, siteUserID string) ([]ApplyEntry, error) {
	if siteUserID == "" {
		return nil, ErrInvalidParam
	}

	records, err := s.store.ListApplies(ctx, siteUserID)
	if err != nil {
		return nil, err
	}

	entries := make([]ApplyEntry, 0, len(records))
	for _, record := range records {
		profile, err := s.profiles.GetProfileBySiteID(ctx, record.SiteUserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if profile == nil || profile.SiteUserID == "" {
			continue
		}
		entries = append(entries, ApplyEntry{Profile: *profile, Reason: record.ApplyReason})
	}
	return entries, nil
}

func (s *applyService) ApplyCount(ctx context.Context, siteUserID string) (int, error) {
	if siteUserID == "" {
		return 0, ErrInvalidParam
	}
	return s.store.CountApplies(ctx, siteUserID)
}

// ApplyResult resolves the pending applies from siteFriendID toward the
// caller. Acceptance promotes the relation and consumes the whole backlog
// from that requester in one atomic store call; a concurrent second accept
// finds nothing pending and fails without re-notifying.
func (s *applyService) ApplyResult(ctx context.Context, siteUserID, siteFriendID string, agree bool) error {
	if siteUserID == "" || siteFriendID == "" || siteUserID == siteFriendID {
		return ErrInvalidParam
	}

	record, err := s.store.ResolveApply(ctx, siteUserID, siteFriendID, agree)
	if err != nil {
		return err
	}

	if agree {
		s.sink.PushApplyAccepted(siteUserID, siteFriendID)
		if record != nil && record.SiteUserID != "" {
			s.sink.PostFriendAddedMessage(record)
		}
	}
	return nil
}
