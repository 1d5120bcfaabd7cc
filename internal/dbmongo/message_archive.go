package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// ArchivedMessage is one system message recorded for a relationship event:
// the apply notice shown in the conversation and the friend-added text.
type ArchivedMessage struct {
	MsgID        string    `bson:"msg_id" json:"msg_id"`
	MsgType      string    `bson:"msg_type" json:"msg_type"`
	SiteUserID   string    `bson:"site_user_id" json:"site_user_id"`
	SiteFriendID string    `bson:"site_friend_id" json:"site_friend_id"`
	Content      string    `bson:"content" json:"content"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type MessageArchive struct {
	coll *mongo.Collection
}

func NewMessageArchive(mongoClient *MongoClient) *MessageArchive {
	return &MessageArchive{
		coll: mongoClient.Database.Collection("system_messages"),
	}
}

func (a *MessageArchive) SaveMessage(ctx context.Context, msg *ArchivedMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := a.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to archive message: %w", err)
	}
	return nil
}
