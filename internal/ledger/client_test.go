package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/veecerts/veevault/internal/config"
)

func TestAccountBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/alice/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"balance": 42}`))
	}))
	defer srv.Close()

	client := NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: time.Second})

	balance, err := client.AccountBalance(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(42), balance)
}

func TestAccountBalanceEscapesAccount(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"balance": 0}`))
	}))
	defer srv.Close()

	client := NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.AccountBalance(context.Background(), "acct/with slash")
	require.NoError(t, err)
	require.Equal(t, "/accounts/acct%2Fwith%20slash/balance", gotPath)
}

func TestAccountBalanceNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(config.LedgerConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.AccountBalance(context.Background(), "ghost")
	require.Error(t, err)
}

func TestServiceBalanceUsesConfiguredAccount(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"balance": 7}`))
	}))
	defer srv.Close()

	client := NewClient(config.LedgerConfig{
		BaseURL:        srv.URL,
		ServiceAccount: "veevault-service",
		Timeout:        time.Second,
	})

	balance, err := client.ServiceBalance(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(7), balance)
	require.Equal(t, "/accounts/veevault-service/balance", gotPath)
}
