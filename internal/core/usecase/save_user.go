package usecase

import (
	"context"
	"fmt"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SaveUserUseCase struct {
	api   port.UserAPIPort
	users port.Invalidator
}

func NewSaveUserUseCase(api port.UserAPIPort, users port.Invalidator) *SaveUserUseCase {
	return &SaveUserUseCase{api: api, users: users}
}

// Execute creates or updates an account. Passwords only travel on create;
// an existing account's password changes through ChangeUserPasswordUseCase.
func (uc *SaveUserUseCase) Execute(ctx context.Context, u domain.User, password string) (domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SaveUser",
		"username": u.Username,
	})

	if u.Role != domain.RoleAdmin && u.Role != domain.RoleUser {
		return domain.User{}, fmt.Errorf("unknown role %q", u.Role)
	}

	var (
		saved domain.User
		err   error
	)
	if u.ID == "" {
		if password == "" {
			return domain.User{}, fmt.Errorf("a new account needs a password")
		}
		saved, err = uc.api.Create(ctx, u, password)
	} else {
		saved, err = uc.api.Update(ctx, u)
	}
	if err != nil {
		logger.Error("User write failed", err, nil)
		return domain.User{}, err
	}

	uc.users.Invalidate()
	logger.Info("User saved", port.Fields{"user_id": saved.ID})
	return saved, nil
}

type ChangeUserPasswordUseCase struct {
	api port.UserAPIPort
}

func NewChangeUserPasswordUseCase(api port.UserAPIPort) *ChangeUserPasswordUseCase {
	return &ChangeUserPasswordUseCase{api: api}
}

func (uc *ChangeUserPasswordUseCase) Execute(ctx context.Context, id, newPassword string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ChangeUserPassword",
		"user_id":  id,
	})

	if newPassword == "" {
		return fmt.Errorf("new password must not be empty")
	}
	if err := uc.api.ChangePassword(ctx, id, newPassword); err != nil {
		logger.Error("Password change failed", err, nil)
		return err
	}
	logger.Info("Password changed", nil)
	return nil
}

type ChangeUserRoleUseCase struct {
	api   port.UserAPIPort
	users port.Invalidator
}

func NewChangeUserRoleUseCase(api port.UserAPIPort, users port.Invalidator) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{api: api, users: users}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, id, role string) (domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ChangeUserRole",
		"user_id":  id,
		"role":     role,
	})

	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.User{}, fmt.Errorf("unknown role %q", role)
	}
	saved, err := uc.api.ChangeRole(ctx, id, role)
	if err != nil {
		logger.Error("Role change failed", err, nil)
		return domain.User{}, err
	}

	uc.users.Invalidate()
	logger.Info("Role changed", nil)
	return saved, nil
}
