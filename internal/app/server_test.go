package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictionary-connector/internal/config"
)

func TestServe_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, logger, time.Second, srv) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenError(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	free := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	taken := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}

	err = serve(context.Background(), logger, time.Second, free, taken)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen "+busy.Addr().String())
}

func TestPublicAddr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0.0.0:3000", publicAddr(configServer("0.0.0.0", 3000)))
	assert.Equal(t, "[::1]:8080", publicAddr(configServer("::1", 8080)))
}

func configServer(host string, port int) config.ServerConfig {
	return config.ServerConfig{Host: host, Port: port}
}
