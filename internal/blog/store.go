// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"

	"github.com/ianbriton/blogapi/pkg/pagination"
)

// # Blog Data Access

// Repository defines the data access contract for blog posts.
//
// Lookups and mutations of a missing post return apperr NOT_FOUND. Writes that
// collide on the title key return apperr CONFLICT.
type Repository interface {

	// List returns one page of posts ordered by id together with the total count.
	List(ctx context.Context, params pagination.Params) ([]*Blog, int, error)

	// GetBlog returns the post with the given id.
	GetBlog(ctx context.Context, id int64) (*Blog, error)

	// TitleExists reports whether a post already uses the given title key.
	TitleExists(ctx context.Context, titleKey string) (bool, error)

	// Create inserts the post and assigns its ID.
	Create(ctx context.Context, post *Blog) error

	// Update replaces every mutable field of the post.
	Update(ctx context.Context, post *Blog) error

	// Delete removes the post.
	Delete(ctx context.Context, id int64) error
}
