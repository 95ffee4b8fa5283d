// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/database/schema"
	"github.com/ianbriton/blogapi/internal/platform/dberr"
	"github.com/ianbriton/blogapi/internal/platform/postgres"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

const resourceBlog = "Blog"

var tblBlog = schema.ContentBlog

var (
	blogColumns = strings.Join(tblBlog.Columns(), ", ")

	queryList = fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER()
		FROM %s
		ORDER BY %s
		LIMIT $1 OFFSET $2`,
		blogColumns, tblBlog.Table, tblBlog.ID,
	)

	queryCount = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tblBlog.Table)

	queryGet = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, blogColumns, tblBlog.Table, tblBlog.ID)

	queryTitleExists = fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, tblBlog.Table, tblBlog.TitleKey)

	queryInsert = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		tblBlog.Table,
		tblBlog.Title, tblBlog.TitleKey, tblBlog.Author, tblBlog.PublicationDate, tblBlog.Body,
		tblBlog.ID,
	)

	queryUpdate = fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1`,
		tblBlog.Table,
		tblBlog.Title, tblBlog.TitleKey, tblBlog.Author, tblBlog.PublicationDate, tblBlog.Body, tblBlog.UpdatedAt,
		tblBlog.ID,
	)

	queryDelete = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, tblBlog.Table, tblBlog.ID)
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List reads one page of posts. The total comes from a window count so a
// single round-trip serves both.
func (repository *PostgresRepository) List(ctx context.Context, params pagination.Params) ([]*Blog, int, error) {
	rows, err := repository.db.Query(ctx, queryList, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceBlog)
	}
	defer rows.Close()

	var (
		posts = make([]*Blog, 0, params.Limit)
		total int64
	)
	for rows.Next() {
		post := &Blog{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Author, &post.PublicationDate, &post.Body, &total); err != nil {
			return nil, 0, dberr.Wrap(err, resourceBlog)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceBlog)
	}

	// An out-of-range page has no rows to carry the window count.
	if len(posts) == 0 && params.Page > 1 {
		count, err := repository.count(ctx)
		if err != nil {
			return nil, 0, err
		}
		total = count
	}

	return posts, int(total), nil
}

func (repository *PostgresRepository) count(ctx context.Context) (int64, error) {
	var total int64
	if err := repository.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceBlog)
	}
	return total, nil
}

// GetBlog reads a single post.
func (repository *PostgresRepository) GetBlog(ctx context.Context, id int64) (*Blog, error) {
	post := &Blog{}
	err := repository.db.QueryRow(ctx, queryGet, id).Scan(
		&post.ID,
		&post.Title,
		&post.Author,
		&post.PublicationDate,
		&post.Body,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceBlog)
	}
	return post, nil
}

// TitleExists checks the unique title key.
func (repository *PostgresRepository) TitleExists(ctx context.Context, titleKey string) (bool, error) {
	var exists bool
	if err := repository.db.QueryRow(ctx, queryTitleExists, titleKey).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, resourceBlog)
	}
	return exists, nil
}

// Create inserts the post and stores the generated id on it.
func (repository *PostgresRepository) Create(ctx context.Context, post *Blog) error {
	err := repository.db.QueryRow(ctx, queryInsert,
		post.Title,
		TitleKey(post.Title),
		post.Author,
		post.PublicationDate,
		post.Body,
	).Scan(&post.ID)
	if err != nil {
		return dberr.Wrap(err, resourceBlog)
	}
	return nil
}

// Update overwrites the post identified by post.ID.
func (repository *PostgresRepository) Update(ctx context.Context, post *Blog) error {
	tag, err := repository.db.Exec(ctx, queryUpdate,
		post.ID,
		post.Title,
		TitleKey(post.Title),
		post.Author,
		post.PublicationDate,
		post.Body,
	)
	if err != nil {
		return dberr.Wrap(err, resourceBlog)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceBlog)
	}
	return nil
}

// Delete removes the post identified by id.
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := repository.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return dberr.Wrap(err, resourceBlog)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceBlog)
	}
	return nil
}
