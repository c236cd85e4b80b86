package usecase

import (
	"context"
	"time"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type ToggleUserLockUseCase struct {
	api   port.UserAPIPort
	users port.OptimisticPort[domain.User]
}

func NewToggleUserLockUseCase(api port.UserAPIPort, users port.OptimisticPort[domain.User]) *ToggleUserLockUseCase {
	return &ToggleUserLockUseCase{api: api, users: users}
}

// Execute locks or unlocks an account. The cached collection is flipped
// optimistically; activity derives from LockoutEnd, so locking sets a far
// future lockout and unlocking clears it.
func (uc *ToggleUserLockUseCase) Execute(ctx context.Context, id string, locked bool) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ToggleUserLock",
		"user_id":  id,
		"locked":   locked,
	})

	err := applyOptimistic(uc.users,
		func(items []domain.User) []domain.User {
			for i := range items {
				if items[i].ID == id {
					if locked {
						until := time.Now().AddDate(100, 0, 0)
						items[i].LockoutEnd = &until
					} else {
						items[i].LockoutEnd = nil
					}
				}
			}
			return items
		},
		func() error {
			_, err := uc.api.ToggleLock(ctx, id, locked)
			return err
		},
	)
	if err != nil {
		logger.Error("User lock toggle failed", err, nil)
		return err
	}

	logger.Info("User lock toggled", nil)
	return nil
}
