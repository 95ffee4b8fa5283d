// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianbriton/blogapi/pkg/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	parsed, err := googleuuid.Parse(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
}

func TestNewRandom_IsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := uuid.NewRandom()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
	assert.True(t, uuid.Valid(uuid.NewRandom()))
	assert.False(t, uuid.Valid("nope"))
}
