// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformredis "github.com/ianbriton/blogapi/internal/platform/redis"
)

/*
TestNewClient_Connects verifies URL parsing and the startup ping.
*/
func TestNewClient_Connects(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := platformredis.NewClient(context.Background(), "redis://"+server.Addr(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, platformredis.Ping(context.Background(), client))
}

/*
TestNewClient_InvalidURL fails before dialing.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	_, err := platformredis.NewClient(context.Background(), "not a url", slog.Default())
	assert.Error(t, err)
}

/*
TestPing_ServerDown surfaces connectivity loss.
*/
func TestPing_ServerDown(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := platformredis.NewClient(context.Background(), "redis://"+server.Addr(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	server.Close()
	assert.Error(t, platformredis.Ping(context.Background(), client))
}
