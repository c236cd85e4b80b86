package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/port"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, fields port.Fields)             {}
func (noopLogger) Warn(msg string, fields port.Fields)             {}
func (noopLogger) Error(msg string, err error, fields port.Fields) {}
func (noopLogger) Debug(msg string, fields port.Fields)            {}
func (l noopLogger) WithFields(fields port.Fields) port.LoggerPort { return l }

func TestCollectionFetchesOncePerSession(t *testing.T) {
	calls := 0
	c := NewCollection("things", func(ctx context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}, noopLogger{})

	for i := 0; i < 3; i++ {
		items, err := c.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, items)
	}
	assert.Equal(t, 1, calls)
}

func TestCollectionInvalidateForcesRefetch(t *testing.T) {
	calls := 0
	c := NewCollection("things", func(ctx context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	}, noopLogger{})

	first, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, first)

	c.Invalidate()

	second, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, second)
	assert.Equal(t, 2, calls)
}

func TestCollectionFetchErrorIsNotCached(t *testing.T) {
	calls := 0
	c := NewCollection("things", func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("backend down")
		}
		return []int{7}, nil
	}, noopLogger{})

	_, err := c.GetAll(context.Background())
	require.Error(t, err)

	items, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{7}, items)
}

func TestCollectionPeekAndReplace(t *testing.T) {
	c := NewCollection("things", func(ctx context.Context) ([]int, error) {
		return nil, errors.New("should not fetch")
	}, noopLogger{})

	_, loaded := c.Peek()
	assert.False(t, loaded)

	c.Replace([]int{9})

	items, loaded := c.Peek()
	assert.True(t, loaded)
	assert.Equal(t, []int{9}, items)

	// Replace marks the collection loaded, so GetAll serves it without fetching
	got, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got)
}
