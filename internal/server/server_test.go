package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer_RequiresAddressAndHandler(t *testing.T) {
	_, err := NewServer(okHandler, config.ClientWeb{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.ClientWeb{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(okHandler, config.ClientWeb{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.RunServer(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv, err := NewServer(okHandler, config.ClientWeb{HTTPAddress: busy.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}
