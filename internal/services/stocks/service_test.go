package stocks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/eodhd"
)

func quoteServer(t *testing.T, failSymbols map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/real-time/")
		if failSymbols[symbol] {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		fmt.Fprintf(w, `{"code":%q,"close":100.5,"change":1.25,"change_p":1.26}`, symbol)
	}))
}

func TestRefresh_BuildsSnapshotWithDisplaySymbols(t *testing.T) {
	srv := quoteServer(t, nil)
	defer srv.Close()

	client := eodhd.NewClient("k", eodhd.WithBaseURL(srv.URL))
	svc := NewService(client, []string{"AAPL.US", "MSFT.US"}, arbor.NewLogger())

	require.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "AAPL", snapshot["AAPL"].Symbol)
	assert.Equal(t, 100.5, snapshot["AAPL"].Price)
	assert.Equal(t, 1.25, snapshot["AAPL"].Change)
	assert.Equal(t, 1.26, snapshot["AAPL"].PercentChange)
}

func TestRefresh_FailedSymbolDroppedFromSnapshot(t *testing.T) {
	srv := quoteServer(t, map[string]bool{"MSFT.US": true})
	defer srv.Close()

	client := eodhd.NewClient("k", eodhd.WithBaseURL(srv.URL))
	svc := NewService(client, []string{"AAPL.US", "MSFT.US"}, arbor.NewLogger())

	require.NoError(t, svc.Refresh(context.Background()))

	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Contains(t, snapshot, "AAPL")
}

func TestRefresh_NilClientIsNoOp(t *testing.T) {
	svc := NewService(nil, []string{"AAPL.US"}, arbor.NewLogger())
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.Snapshot())
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	srv := quoteServer(t, nil)
	defer srv.Close()

	client := eodhd.NewClient("k", eodhd.WithBaseURL(srv.URL))
	svc := NewService(client, []string{"AAPL.US"}, arbor.NewLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	first := svc.Snapshot()
	delete(first, "AAPL")
	assert.Len(t, svc.Snapshot(), 1)
}

func TestDisplaySymbol(t *testing.T) {
	assert.Equal(t, "AAPL", displaySymbol("AAPL.US"))
	assert.Equal(t, "GNP", displaySymbol("GNP.AU"))
	assert.Equal(t, "BTC-USD", displaySymbol("BTC-USD"))
}
