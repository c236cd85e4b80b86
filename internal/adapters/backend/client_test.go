package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
)

func TestDecodeCollectionShapes(t *testing.T) {
	type item struct {
		ID int64 `json:"id"`
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2},
		{"envelope array", `{"success":true,"data":[{"id":1}]}`, 1},
		{"envelope single object", `{"success":true,"data":{"id":5}}`, 1},
		{"null body", `null`, 0},
		{"empty array", `[]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := decodeCollection[item]([]byte(tt.body))
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestDecodeCollectionEnvelopeWithoutData(t *testing.T) {
	_, err := decodeCollection[struct{}]([]byte(`{"success":false}`))
	assert.Error(t, err)
}

func TestDecodeItemShapes(t *testing.T) {
	type item struct {
		ID int64 `json:"id"`
	}

	bare, err := decodeItem[item]([]byte(`{"id":3}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), bare.ID)

	wrapped, err := decodeItem[item]([]byte(`{"success":true,"data":{"id":4}}`))
	require.NoError(t, err)
	assert.Equal(t, int64(4), wrapped.ID)

	_, err = decodeItem[item]([]byte(`null`))
	assert.Error(t, err)
}

func TestPropertyListRecoversToEmptyCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPropertyClient(NewClient(server.URL, ""))
	properties, err := client.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestPropertyListNormalizesMixedStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"title":"a","propertyType":0,"status":4,"typeSpecificProperties":{}},
			{"id":2,"title":"b","propertyType":0,"status":"Kiralık","typeSpecificProperties":{}},
			{"id":3,"title":"c","propertyType":0,"status":"Garip","typeSpecificProperties":{}}
		]}`))
	}))
	defer server.Close()

	client := NewPropertyClient(NewClient(server.URL, ""))
	properties, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.Equal(t, domain.StatusSold, properties[0].Status)
	assert.Equal(t, domain.StatusForRent, properties[1].Status)
	// unrecognized wire value falls back to the default listing state
	assert.Equal(t, domain.StatusForSale, properties[2].Status)
}

func TestRequestCarriesAuthAndTraceHeaders(t *testing.T) {
	var gotAuth, gotTrace string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTrace = r.Header.Get("X-Trace-ID")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	_, err := client.do(ctx, http.MethodGet, "/", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "trace-123", gotTrace)
}

func TestNonSuccessStatusCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad payload"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.do(context.Background(), http.MethodPost, "/", map[string]int{"x": 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "bad payload")
}
