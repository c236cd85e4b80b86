package usecase

import (
	"context"
	"errors"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

// In-memory fakes for the backend and store ports.

type fakeCollection[T any] struct {
	items       []T
	err         error
	invalidated int
	replaced    [][]T
	loaded      bool
}

func (f *fakeCollection[T]) GetAll(ctx context.Context) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeCollection[T]) Invalidate() { f.invalidated++ }

func (f *fakeCollection[T]) Peek() ([]T, bool) { return f.items, f.loaded }

func (f *fakeCollection[T]) Replace(items []T) {
	f.items = items
	f.replaced = append(f.replaced, items)
}

type fakeSaleAPI struct {
	byID      map[int64]domain.Sale
	created   []domain.Sale
	updated   []domain.Sale
	deleted   []int64
	writeErr  error
	getErr    error
	canSell   bool
	nextID    int64
	byProp    map[int64][]domain.Sale
}

func (f *fakeSaleAPI) List(ctx context.Context) ([]domain.Sale, error) { return nil, nil }

func (f *fakeSaleAPI) GetByID(ctx context.Context, id int64) (domain.Sale, error) {
	if f.getErr != nil {
		return domain.Sale{}, f.getErr
	}
	s, ok := f.byID[id]
	if !ok {
		return domain.Sale{}, errors.New("sale not found")
	}
	return s, nil
}

func (f *fakeSaleAPI) Create(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	if f.writeErr != nil {
		return domain.Sale{}, f.writeErr
	}
	f.nextID++
	s.ID = f.nextID
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSaleAPI) Update(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	if f.writeErr != nil {
		return domain.Sale{}, f.writeErr
	}
	f.updated = append(f.updated, s)
	if f.byID == nil {
		f.byID = map[int64]domain.Sale{}
	}
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSaleAPI) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.writeErr
}

func (f *fakeSaleAPI) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Sale, error) {
	return f.byProp[propertyID], nil
}

func (f *fakeSaleAPI) CanSell(ctx context.Context, propertyID int64) (bool, error) {
	return f.canSell, nil
}

type statusChange struct {
	id     int64
	status domain.PropertyStatus
}

type fakePropertyAPI struct {
	byID          map[int64]domain.Property
	statusUpdates []statusChange
	statusErr     error
	getErr        error
}

func (f *fakePropertyAPI) List(ctx context.Context) ([]domain.Property, error) { return nil, nil }

func (f *fakePropertyAPI) GetByID(ctx context.Context, id int64) (domain.Property, error) {
	if f.getErr != nil {
		return domain.Property{}, f.getErr
	}
	p, ok := f.byID[id]
	if !ok {
		return domain.Property{}, errors.New("property not found")
	}
	return p, nil
}

func (f *fakePropertyAPI) Create(ctx context.Context, p domain.Property) (domain.Property, error) {
	p.ID = 1
	return p, nil
}

func (f *fakePropertyAPI) Update(ctx context.Context, p domain.Property) (domain.Property, error) {
	return p, nil
}

func (f *fakePropertyAPI) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakePropertyAPI) UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusUpdates = append(f.statusUpdates, statusChange{id: id, status: status})
	if p, ok := f.byID[id]; ok {
		p.Status = status
		f.byID[id] = p
	}
	return nil
}

func (f *fakePropertyAPI) PriceHistory(ctx context.Context, id int64) ([]domain.PriceHistoryEntry, error) {
	return nil, nil
}

type fakeUserAPI struct {
	online    []string
	onlineErr error
	lockErr   error
	locks     []string
}

func (f *fakeUserAPI) List(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (f *fakeUserAPI) Create(ctx context.Context, u domain.User, password string) (domain.User, error) {
	u.ID = "new"
	return u, nil
}

func (f *fakeUserAPI) Update(ctx context.Context, u domain.User) (domain.User, error) {
	return u, nil
}

func (f *fakeUserAPI) ChangePassword(ctx context.Context, id, newPassword string) error { return nil }

func (f *fakeUserAPI) ChangeRole(ctx context.Context, id, role string) (domain.User, error) {
	return domain.User{ID: id, Role: role}, nil
}

func (f *fakeUserAPI) ToggleLock(ctx context.Context, id string, locked bool) (domain.User, error) {
	if f.lockErr != nil {
		return domain.User{}, f.lockErr
	}
	f.locks = append(f.locks, id)
	return domain.User{ID: id}, nil
}

func (f *fakeUserAPI) OnlineUserIDs(ctx context.Context) ([]string, error) {
	return f.online, f.onlineErr
}
