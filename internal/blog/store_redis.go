// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ianbriton/blogapi/internal/platform/constants"
	"github.com/ianbriton/blogapi/internal/platform/ctxutil"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// for single-post lookups.
//
// Redis failures are logged and the call falls through to the wrapped
// repository. Writes invalidate the cached entry after the wrapped write succeeds.
type CachedRepository struct {
	Repository

	client redis.Cmdable
	ttl    time.Duration
}

// NewCachedRepository wraps next with a cache whose entries live for ttl.
func NewCachedRepository(next Repository, client redis.Cmdable, ttl time.Duration) *CachedRepository {
	if ttl <= 0 {
		ttl = constants.BlogCacheTTL
	}
	return &CachedRepository{Repository: next, client: client, ttl: ttl}
}

func cacheKey(id int64) string {
	return constants.RedisPrefixBlog + strconv.FormatInt(id, 10)
}

// GetBlog serves the post from Redis when present, otherwise loads and caches it.
func (repository *CachedRepository) GetBlog(ctx context.Context, id int64) (*Blog, error) {
	key := cacheKey(id)
	logger := ctxutil.GetLogger(ctx)

	raw, err := repository.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		post := &Blog{}
		if jsonErr := json.Unmarshal(raw, post); jsonErr == nil {
			return post, nil
		}
		logger.WarnContext(ctx, "blog_cache_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(ctx, "blog_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	post, err := repository.Repository.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(post); jsonErr == nil {
		if setErr := repository.client.Set(ctx, key, encoded, repository.ttl).Err(); setErr != nil {
			logger.WarnContext(ctx, "blog_cache_set_failed", slog.String("key", key), slog.Any("error", setErr))
		}
	}

	return post, nil
}

// Update writes through and drops the cached copy.
func (repository *CachedRepository) Update(ctx context.Context, post *Blog) error {
	if err := repository.Repository.Update(ctx, post); err != nil {
		return err
	}
	repository.invalidate(ctx, post.ID)
	return nil
}

// Delete removes the post and its cached copy.
func (repository *CachedRepository) Delete(ctx context.Context, id int64) error {
	if err := repository.Repository.Delete(ctx, id); err != nil {
		return err
	}
	repository.invalidate(ctx, id)
	return nil
}

func (repository *CachedRepository) invalidate(ctx context.Context, id int64) {
	if err := repository.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "blog_cache_invalidate_failed",
			slog.Int64("blog_id", id),
			slog.Any("error", err),
		)
	}
}
