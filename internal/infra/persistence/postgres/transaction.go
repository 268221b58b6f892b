package postgres

import (
	"context"

	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPushDeliveryRepository() repository.PushDeliveryRepository {
	return NewPushDeliveryRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPushTokenRepository() repository.PushTokenRepository {
	return NewPushTokenRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. The transaction commits only if fn returns nil;
// a panic inside fn rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if rbErr := tx.Rollback().Error; rbErr != nil {
			err = errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}
	}()

	if err = fn(&gormRepositoryFactory{tx: tx}); err != nil {
		return err
	}

	err = tx.Commit().Error
	committed = true
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
