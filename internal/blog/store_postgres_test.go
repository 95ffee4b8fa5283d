// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianbriton/blogapi/internal/blog"
	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

var blogRowColumns = []string{"id", "title", "author", "publicationdate", "body"}

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *blog.PostgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, blog.NewPostgresRepository(mock)
}

/*
TestPostgresRepository_List reads the page and its window count.
*/
func TestPostgresRepository_List(t *testing.T) {
	mock, repo := newMockRepository(t)
	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+, COUNT\(\*\) OVER\(\) FROM content\.blog ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 0).
		WillReturnRows(pgxmock.NewRows(append(blogRowColumns, "count")).
			AddRow(int64(1), "a", "alice", published, "x", int64(5)).
			AddRow(int64(2), "b", "alice", published, "y", int64(5)))

	posts, total, err := repo.List(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[1].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_ListPastEnd falls back to a plain count.
*/
func TestPostgresRepository_ListPastEnd(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(`FROM content\.blog ORDER BY id`).
		WithArgs(10, 90).
		WillReturnRows(pgxmock.NewRows(append(blogRowColumns, "count")))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM content\.blog`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	posts, total, err := repo.List(context.Background(), pagination.Params{Page: 10, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 3, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_GetBlog maps a missing row to NOT_FOUND.
*/
func TestPostgresRepository_GetBlog(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM content\.blog WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetBlog(context.Background(), 9)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Create stores the folded title key and maps a unique violation.
*/
func TestPostgresRepository_Create(t *testing.T) {
	mock, repo := newMockRepository(t)
	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO content\.blog .+ RETURNING id`).
		WithArgs(" Hello ", "hello", "alice", published, "x").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	mock.ExpectQuery(`INSERT INTO content\.blog`).
		WithArgs("HELLO", "hello", "alice", published, "x").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	post := &blog.Blog{Title: " Hello ", Author: "alice", PublicationDate: published, Body: "x"}
	require.NoError(t, repo.Create(context.Background(), post))
	assert.Equal(t, int64(11), post.ID)

	duplicate := &blog.Blog{Title: "HELLO", Author: "alice", PublicationDate: published, Body: "x"}
	err := repo.Create(context.Background(), duplicate)
	assert.True(t, apperr.IsCode(err, "CONFLICT"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_UpdateDelete report NOT_FOUND when no row changed.
*/
func TestPostgresRepository_UpdateDelete(t *testing.T) {
	mock, repo := newMockRepository(t)
	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE content\.blog SET .+ WHERE id = \$1`).
		WithArgs(int64(1), "t", "t", "a", published, "b").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE content\.blog`).
		WithArgs(int64(2), "t", "t", "a", published, "b").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(`DELETE FROM content\.blog WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM content\.blog`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ctx := context.Background()
	require.NoError(t, repo.Update(ctx, &blog.Blog{ID: 1, Title: "t", Author: "a", PublicationDate: published, Body: "b"}))
	assert.True(t, apperr.IsCode(repo.Update(ctx, &blog.Blog{ID: 2, Title: "t", Author: "a", PublicationDate: published, Body: "b"}), "NOT_FOUND"))
	require.NoError(t, repo.Delete(ctx, 1))
	assert.True(t, apperr.IsCode(repo.Delete(ctx, 1), "NOT_FOUND"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
