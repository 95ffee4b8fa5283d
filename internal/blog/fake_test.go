// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"context"
	"sort"
	"sync"

	"github.com/ianbriton/blogapi/internal/blog"
	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

// fakeRepository is an in-memory [blog.Repository] that enforces the title key.
type fakeRepository struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]*blog.Blog
	gets   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[int64]*blog.Blog)}
}

func (f *fakeRepository) List(_ context.Context, params pagination.Params) ([]*blog.Blog, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]int64, 0, len(f.posts))
	for id := range f.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	page := make([]*blog.Blog, 0, params.Limit)
	for i := params.Offset(); i < len(ids) && len(page) < params.Limit; i++ {
		copied := *f.posts[ids[i]]
		page = append(page, &copied)
	}
	return page, len(ids), nil
}

func (f *fakeRepository) GetBlog(_ context.Context, id int64) (*blog.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gets++
	post, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	copied := *post
	return &copied, nil
}

func (f *fakeRepository) TitleExists(_ context.Context, titleKey string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.titleTaken(titleKey, 0), nil
}

func (f *fakeRepository) Create(_ context.Context, post *blog.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.titleTaken(blog.TitleKey(post.Title), 0) {
		return apperr.Conflict("Blog already exists")
	}
	f.nextID++
	post.ID = f.nextID
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeRepository) Update(_ context.Context, post *blog.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[post.ID]; !ok {
		return apperr.NotFound("Blog")
	}
	if f.titleTaken(blog.TitleKey(post.Title), post.ID) {
		return apperr.Conflict("Blog already exists")
	}
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Blog")
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepository) getCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeRepository) titleTaken(key string, except int64) bool {
	for id, post := range f.posts {
		if id != except && blog.TitleKey(post.Title) == key {
			return true
		}
	}
	return false
}
