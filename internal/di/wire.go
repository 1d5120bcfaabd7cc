//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"friendsite/internal/api"
	"friendsite/internal/dbmysql"
	"friendsite/internal/friend"
)

// This is just a declaration — wire will generate the real body
func InitFriendHandler(db *gorm.DB, sink friend.NotificationSink, log *logrus.Logger) *friend.Handler {
	wire.Build(
		dbmysql.NewFriendStore,
		dbmysql.NewProfileStore,
		api.NewJSONCodec,
		friend.NewFriendService,
		friend.NewApplyService,
		friend.NewHandler,
		wire.Bind(new(friend.RelationStore), new(*dbmysql.FriendStore)),
		wire.Bind(new(friend.ProfileStore), new(*dbmysql.ProfileStore)),
		wire.Bind(new(api.Codec), new(*api.JSONCodec)),
	)
	return &friend.Handler{} // dummy for compilation
}
