package notice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"friendsite/internal/dbmongo"
	"friendsite/internal/push"
)

const deliverTimeout = 5 * time.Second

// PushObserver forwards push-kind events to the publisher.
type PushObserver struct {
	publisher push.Publisher
}

func NewPushObserver(publisher push.Publisher) *PushObserver {
	return &PushObserver{publisher: publisher}
}

func (o *PushObserver) Name() string {
	return "push_observer"
}

func (o *PushObserver) Update(event Event) error {
	switch event.Type {
	case ApplyPushType, AcceptPushType:
	default:
		return nil
	}

	payload, err := json.Marshal(&event)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	return o.publisher.PublishPush(ctx, event.SiteUserID, payload)
}

// Archiver persists system messages; satisfied by dbmongo.MessageArchive.
type Archiver interface {
	SaveMessage(ctx context.Context, msg *dbmongo.ArchivedMessage) error
}

// ArchiveObserver records conversation notices and friend-added texts as
// system messages.
type ArchiveObserver struct {
	archive Archiver
}

func NewArchiveObserver(archive Archiver) *ArchiveObserver {
	return &ArchiveObserver{archive: archive}
}

func (o *ArchiveObserver) Name() string {
	return "archive_observer"
}

func (o *ArchiveObserver) Update(event Event) error {
	switch event.Type {
	case ApplyNoticeType, FriendAddedType:
	default:
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	return o.archive.SaveMessage(ctx, &dbmongo.ArchivedMessage{
		MsgID:        uuid.NewString(),
		MsgType:      string(event.Type),
		SiteUserID:   event.SiteUserID,
		SiteFriendID: event.SiteFriendID,
		Content:      event.Content,
		CreatedAt:    event.CreatedAt,
	})
}
