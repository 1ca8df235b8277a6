// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/handler"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig(address string) config.Server {
	return config.Server{
		HTTPAddress:       address,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, testServerConfig("127.0.0.1:0"), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_EmptyAddress(t *testing.T) {
	handlers, err := handler.NewHandlers(nil, testServerConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, testServerConfig(""), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), testServerConfig("127.0.0.1:0"), logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_Run_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), testServerConfig(occupied.Addr().String()), logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	assert.ErrorIs(t, err, errListen)
}

func TestHTTPServer_ServesRequests(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), testServerConfig("127.0.0.1:0"), logger.Nop())

	listener, err := h.listen()
	require.NoError(t, err)
	go h.serve(listener)
	defer h.Shutdown()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
