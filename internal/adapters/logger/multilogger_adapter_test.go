package logger_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/port"
)

type recordingLogger struct {
	infos  []string
	errors []string
	fields port.Fields
}

func (r *recordingLogger) Debug(msg string, fields port.Fields) {}
func (r *recordingLogger) Info(msg string, fields port.Fields)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(msg string, fields port.Fields)  {}
func (r *recordingLogger) Error(msg string, err error, fields port.Fields) {
	r.errors = append(r.errors, msg)
}
func (r *recordingLogger) WithFields(fields port.Fields) port.LoggerPort {
	r.fields = fields
	return r
}

func TestMultiloggerFansOutAndDropsNilSinks(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}

	multi, err := NewMultiloggerAdapter(first, nil, second)
	require.NoError(t, err)

	multi.Info("hello", nil)
	multi.Error("boom", nil, nil)

	assert.Equal(t, []string{"hello"}, first.infos)
	assert.Equal(t, []string{"hello"}, second.infos)
	assert.Equal(t, []string{"boom"}, first.errors)
	assert.Equal(t, []string{"boom"}, second.errors)
}

func TestMultiloggerRequiresAtLeastOneSink(t *testing.T) {
	_, err := NewMultiloggerAdapter(nil, nil)
	assert.Error(t, err)

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}

func TestMultiloggerWithFieldsReachesEverySink(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}

	multi, err := NewMultiloggerAdapter(first, second)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "store"}).Info("tagged", nil)

	assert.Equal(t, port.Fields{"component": "store"}, first.fields)
	assert.Equal(t, port.Fields{"component": "store"}, second.fields)
	assert.Equal(t, []string{"tagged"}, first.infos)
}
