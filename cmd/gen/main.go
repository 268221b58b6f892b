// Command gen generates type-safe query helpers for the persistence models.
package main

import (
	"flag"

	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gen"
)

// UnreadQuerier describes the unread lookups run against the notifications table.
type UnreadQuerier interface {
	// SELECT * FROM @@table WHERE owner_id = @ownerID AND is_read = false ORDER BY created_at DESC, id DESC LIMIT @limit
	FindUnread(ownerID uuid.UUID, limit int) ([]*gen.T, error)

	// SELECT count(*) FROM @@table WHERE owner_id = @ownerID AND is_read = false
	CountUnread(ownerID uuid.UUID) (int64, error)
}

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.PushTokenModel{},
		model.PushDeliveryModel{},
		model.NotificationSettingModel{},
	)
	g.ApplyInterface(func(UnreadQuerier) {}, model.NotificationModel{})

	g.Execute()
}
