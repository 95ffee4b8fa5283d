// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianbriton/blogapi/internal/blog"
	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

func sampleInput(title string) blog.Input {
	return blog.Input{
		Title:           title,
		Author:          "alice",
		PublicationDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Body:            "Hello.",
	}
}

/*
TestService_CreateRejectsDuplicateTitle folds case and surrounding spaces before comparing.
*/
func TestService_CreateRejectsDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	service := blog.NewService(newFakeRepository())

	created, err := service.Create(ctx, sampleInput("Hello World"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	for _, title := range []string{"Hello World", "  hello world ", "HELLO WORLD"} {
		_, err := service.Create(ctx, sampleInput(title))
		require.Error(t, err, title)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 422, appErr.HTTPStatus)
		assert.Equal(t, blog.MsgTitleExists, appErr.Message)
	}

	_, err = service.Create(ctx, sampleInput("Hello, World"))
	assert.NoError(t, err)
}

/*
TestService_CreateDefaultsPublicationDate stamps posts that arrive without a date.
*/
func TestService_CreateDefaultsPublicationDate(t *testing.T) {
	input := sampleInput("Undated")
	input.PublicationDate = time.Time{}

	before := time.Now().UTC()
	created, err := blog.NewService(newFakeRepository()).Create(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, created.PublicationDate.Before(before.Truncate(time.Second)))
}

/*
TestService_CreateValidates reports missing fields.
*/
func TestService_CreateValidates(t *testing.T) {
	_, err := blog.NewService(newFakeRepository()).Create(context.Background(), blog.Input{})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Details, 3)
}

/*
TestService_Update covers the error precedence and a successful replace.
*/
func TestService_Update(t *testing.T) {
	ctx := context.Background()
	service := blog.NewService(newFakeRepository())

	first, err := service.Create(ctx, sampleInput("First"))
	require.NoError(t, err)
	_, err = service.Create(ctx, sampleInput("Second"))
	require.NoError(t, err)

	t.Run("id_mismatch", func(t *testing.T) {
		input := sampleInput("First")
		input.ID = first.ID + 1
		err := service.Update(ctx, first.ID, input)
		assert.True(t, apperr.IsCode(err, "BAD_REQUEST"))
		assert.Equal(t, blog.MsgIDMismatch, err.Error())
	})

	t.Run("missing", func(t *testing.T) {
		input := sampleInput("Ghost")
		input.ID = 99
		assert.True(t, apperr.IsCode(service.Update(ctx, 99, input), "NOT_FOUND"))
	})

	t.Run("mismatch_before_missing", func(t *testing.T) {
		input := sampleInput("Ghost")
		input.ID = 98
		assert.True(t, apperr.IsCode(service.Update(ctx, 99, input), "BAD_REQUEST"))
	})

	t.Run("title_taken", func(t *testing.T) {
		input := sampleInput(" second ")
		input.ID = first.ID
		assert.True(t, apperr.IsCode(service.Update(ctx, first.ID, input), "UNPROCESSABLE"))
	})

	t.Run("replaces_fields", func(t *testing.T) {
		input := sampleInput("First, revised")
		input.ID = first.ID
		input.Body = "Revised."
		require.NoError(t, service.Update(ctx, first.ID, input))

		post, err := service.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First, revised", post.Title)
		assert.Equal(t, "Revised.", post.Body)
	})

	t.Run("keeps_own_title", func(t *testing.T) {
		input := sampleInput("FIRST, REVISED")
		input.ID = first.ID
		assert.NoError(t, service.Update(ctx, first.ID, input))
	})
}

/*
TestService_Delete removes once and reports NOT_FOUND afterwards.
*/
func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	service := blog.NewService(newFakeRepository())

	created, err := service.Create(ctx, sampleInput("Short-lived"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, apperr.IsCode(service.Delete(ctx, created.ID), "NOT_FOUND"))

	_, err = service.Get(ctx, created.ID)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

/*
TestService_List pages in id order.
*/
func TestService_List(t *testing.T) {
	ctx := context.Background()
	service := blog.NewService(newFakeRepository())

	for _, title := range []string{"a", "b", "c"} {
		_, err := service.Create(ctx, sampleInput(title))
		require.NoError(t, err)
	}

	posts, total, err := service.List(ctx, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, posts, 1)
	assert.Equal(t, "c", posts[0].Title)
}
