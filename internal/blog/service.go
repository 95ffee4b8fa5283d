// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/ctxutil"
	"github.com/ianbriton/blogapi/internal/platform/validate"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

// Service implements the blog use cases.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a new [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Input carries the writable fields of a post.
//
// ID is only consulted by [Service.Update], where it must match the path id.
type Input struct {
	ID              int64
	Title           string
	Author          string
	PublicationDate time.Time
	Body            string
}

func (input Input) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Required(FieldAuthor, input.Author).
		MaxLen(FieldAuthor, input.Author, MaxTitleLength).
		Required(FieldBody, input.Body)
	return validator.Err()
}

func (input Input) toBlog(id int64, fallbackDate time.Time) *Blog {
	published := input.PublicationDate
	if published.IsZero() {
		published = fallbackDate
	}
	return &Blog{
		ID:              id,
		Title:           input.Title,
		Author:          input.Author,
		PublicationDate: published.UTC(),
		Body:            input.Body,
	}
}

// # Queries

// List returns one page of posts and the total number of posts.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*Blog, int, error) {
	posts, total, err := service.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("blog_service_list_failed: %w", err)
	}
	return posts, total, nil
}

// Get returns a single post or NOT_FOUND.
func (service *Service) Get(ctx context.Context, id int64) (*Blog, error) {
	return service.repo.GetBlog(ctx, id)
}

// # Mutations

/*
Create stores a new post.

A title that matches an existing one after trimming and case folding fails
with UNPROCESSABLE, whether caught by the pre-check or by the unique
index on a concurrent insert. A missing publication date defaults to now.
*/
func (service *Service) Create(ctx context.Context, input Input) (*Blog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	exists, err := service.repo.TitleExists(ctx, TitleKey(input.Title))
	if err != nil {
		return nil, fmt.Errorf("blog_service_title_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Unprocessable(MsgTitleExists)
	}

	post := input.toBlog(0, service.now())
	if err := service.repo.Create(ctx, post); err != nil {
		if apperr.IsCode(err, apperr.CodeConflict) {
			return nil, apperr.Unprocessable(MsgTitleExists)
		}
		return nil, fmt.Errorf("blog_service_create_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "blog_created",
		slog.Int64("blog_id", post.ID),
	)
	return post, nil
}

/*
Update replaces the post at pathID.

Errors, in the order they are checked:
  - BAD_REQUEST "BlogId Mismatch" when the body id differs from pathID.
  - NOT_FOUND when no such post exists.
  - VALIDATION_ERROR for missing or oversized fields.
  - UNPROCESSABLE when the new title belongs to another post.
*/
func (service *Service) Update(ctx context.Context, pathID int64, input Input) error {
	if input.ID != pathID {
		return apperr.BadRequest(MsgIDMismatch)
	}

	current, err := service.repo.GetBlog(ctx, pathID)
	if err != nil {
		return err
	}

	if err := input.validate(); err != nil {
		return err
	}

	post := input.toBlog(pathID, current.PublicationDate)
	if err := service.repo.Update(ctx, post); err != nil {
		if apperr.IsCode(err, apperr.CodeConflict) {
			return apperr.Unprocessable(MsgTitleExists)
		}
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return err
		}
		return fmt.Errorf("blog_service_update_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "blog_updated", slog.Int64("blog_id", pathID))
	return nil
}

// Delete removes the post or fails with NOT_FOUND.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "blog_deleted", slog.Int64("blog_id", id))
	return nil
}
