package backend

import (
	"context"
	"net/http"

	"github.com/olgudulger/emlakfe/internal/constants"
	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// UserClient implements port.UserAPIPort against the admin user endpoints.
type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

func (c *UserClient) List(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "UserClient",
		"method":    "List",
	})

	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointAdminUsers, nil)
	if err != nil {
		logger.Error("Failed to fetch users, returning empty collection", err, nil)
		return []domain.User{}, nil
	}

	dtos, err := decodeCollection[userDTO](body)
	if err != nil {
		logger.Error("Failed to decode users response, returning empty collection", err, nil)
		return []domain.User{}, nil
	}

	users := make([]domain.User, len(dtos))
	for i, dto := range dtos {
		users[i] = dto.toDomain()
	}
	logger.Debug("Users fetched", port.Fields{"count": len(users)})
	return users, nil
}

func (c *UserClient) Create(ctx context.Context, u domain.User, password string) (domain.User, error) {
	payload := map[string]string{
		"username":        u.Username,
		"email":           u.Email,
		"password":        password,
		"confirmPassword": password,
		"role":            u.Role,
	}

	body, err := c.client.do(ctx, http.MethodPost, constants.EndpointAdminUsers, payload)
	if err != nil {
		return domain.User{}, err
	}
	dto, err := decodeItem[userDTO](body)
	if err != nil {
		return domain.User{}, err
	}
	return dto.toDomain(), nil
}

// Update sends only the editable fields; the backend rejects full objects.
func (c *UserClient) Update(ctx context.Context, u domain.User) (domain.User, error) {
	payload := map[string]string{
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	}

	body, err := c.client.do(ctx, http.MethodPut, constants.AdminUserByID(u.ID), payload)
	if err != nil {
		return domain.User{}, err
	}
	dto, err := decodeItem[userDTO](body)
	if err != nil {
		return domain.User{}, err
	}
	return dto.toDomain(), nil
}

func (c *UserClient) ChangePassword(ctx context.Context, id, newPassword string) error {
	payload := map[string]string{
		"newPassword":     newPassword,
		"confirmPassword": newPassword,
	}
	_, err := c.client.do(ctx, http.MethodPut, constants.AdminUserPassword(id), payload)
	return err
}

func (c *UserClient) ChangeRole(ctx context.Context, id, role string) (domain.User, error) {
	body, err := c.client.do(ctx, http.MethodPut, constants.AdminUserRole(id), role)
	if err != nil {
		return domain.User{}, err
	}
	dto, err := decodeItem[userDTO](body)
	if err != nil {
		return domain.User{}, err
	}
	return dto.toDomain(), nil
}

// ToggleLock locks or unlocks the account; the backend expects a bare boolean
// body.
func (c *UserClient) ToggleLock(ctx context.Context, id string, locked bool) (domain.User, error) {
	body, err := c.client.do(ctx, http.MethodPut, constants.AdminUserLock(id), locked)
	if err != nil {
		return domain.User{}, err
	}
	dto, err := decodeItem[userDTO](body)
	if err != nil {
		return domain.User{}, err
	}
	return dto.toDomain(), nil
}

// OnlineUserIDs reports the server-tracked presence list; this is a transient
// fact and failures are not worth surfacing.
func (c *UserClient) OnlineUserIDs(ctx context.Context) ([]string, error) {
	body, err := c.client.do(ctx, http.MethodGet, constants.EndpointOnlineUsers, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollection[string](body)
}
