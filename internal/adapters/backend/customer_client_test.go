package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerListTreatsNullBudgetAsZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"fullName":"Ayşe Kaya","budget":null,"interestType":0,"customerType":0},
			{"id":2,"fullName":"Mehmet Demir","budget":75000,"interestType":0,"customerType":1}
		]}`))
	}))
	defer server.Close()

	client := NewCustomerClient(NewClient(server.URL, ""))
	customers, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// a backend null budget reads as 0, so budget-range filters compare against 0
	assert.Equal(t, 0.0, customers[0].Budget)
	assert.Equal(t, 75_000.0, customers[1].Budget)
}
