package usecase

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

type ListUsersUseCase struct {
	users port.CollectionPort[domain.User]
	api   port.UserAPIPort
}

func NewListUsersUseCase(users port.CollectionPort[domain.User], api port.UserAPIPort) *ListUsersUseCase {
	return &ListUsersUseCase{users: users, api: api}
}

// Execute pages through the cached user collection with the presence flag
// merged in. Presence is transient and always fetched fresh; a failure there
// just renders everyone offline.
func (uc *ListUsersUseCase) Execute(ctx context.Context, filters domain.UserFilters) (query.Result[domain.User], error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListUsers",
	})

	users, err := uc.users.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load user collection", err, nil)
		return query.Result[domain.User]{Data: []domain.User{}}, err
	}

	online := map[string]bool{}
	if ids, err := uc.api.OnlineUserIDs(ctx); err == nil {
		for _, id := range ids {
			online[id] = true
		}
	} else {
		logger.Warn("Failed to fetch online users, showing everyone offline", port.Fields{"error": err.Error()})
	}

	merged := make([]domain.User, len(users))
	for i, u := range users {
		u.IsOnline = online[u.ID]
		merged[i] = u
	}

	result := query.Run(merged, query.Spec[domain.User]{
		Match: userMatcher(filters),
		Page:  filters.Page,
		Limit: filters.Limit,
	})

	logger.Debug("Use case finished", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Data),
	})
	return result, nil
}

func userMatcher(filters domain.UserFilters) func(domain.User) bool {
	return func(u domain.User) bool {
		if filters.Search != "" {
			if !query.ContainsFold(u.Username, filters.Search) &&
				!query.ContainsFold(u.Email, filters.Search) {
				return false
			}
		}
		if filters.Role != nil && u.Role != *filters.Role {
			return false
		}
		if filters.IsActive != nil && u.IsActive() != *filters.IsActive {
			return false
		}
		return true
	}
}
