// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/middleware"
	requestutil "github.com/ianbriton/blogapi/internal/platform/request"
	"github.com/ianbriton/blogapi/internal/platform/respond"
	"github.com/ianbriton/blogapi/internal/platform/sec"
	"github.com/ianbriton/blogapi/pkg/pagination"
)

// # Definitions & Constructors

// PostService is the use-case surface the handler depends on.
type PostService interface {
	List(ctx context.Context, params pagination.Params) ([]*Blog, int, error)
	Get(ctx context.Context, id int64) (*Blog, error)
	Create(ctx context.Context, input Input) (*Blog, error)
	Update(ctx context.Context, pathID int64, input Input) error
	Delete(ctx context.Context, id int64) error
}

// Handler implements the /api/Blog endpoints.
type Handler struct {
	service PostService
}

// NewHandler constructs a new [Handler].
func NewHandler(service PostService) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving the blog endpoints.
//
// # Endpoints
//   - GET    /                 : Admin
//   - GET    /blogId/{blogId}  : Admin
//   - POST   /                 : User
//   - PUT    /blogId/{blogId}  : User
//   - DELETE /blogId/{blogId}  : Owner
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	admin := []sec.Role{sec.RoleAdmin}
	user := []sec.Role{sec.RoleUser}

	middleware.Mount(router, []middleware.Route{
		{Method: http.MethodGet, Pattern: "/", Roles: admin, Handler: handler.list},
		{Method: http.MethodGet, Pattern: "/blogId/{blogId}", Roles: admin, Handler: handler.get},
		{Method: http.MethodPost, Pattern: "/", Roles: user, Handler: handler.create},
		{Method: http.MethodPut, Pattern: "/blogId/{blogId}", Roles: user, Handler: handler.update},
		{Method: http.MethodDelete, Pattern: "/blogId/{blogId}", Roles: []sec.Role{sec.RoleOwner}, Handler: handler.delete},
	})

	return router
}

// # Request Payloads

type blogRequest struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublicationDate time.Time `json:"publicationDate"`
	Body            string    `json:"body"`
}

func (body blogRequest) input() Input {
	return Input{
		ID:              body.ID,
		Title:           body.Title,
		Author:          body.Author,
		PublicationDate: body.PublicationDate,
		Body:            body.Body,
	}
}

// blogID parses the {blogId} path segment.
func blogID(request *http.Request) (int64, error) {
	raw := requestutil.Param(request, "blogId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid blog id",
			apperr.FieldError{Field: "blogId", Message: "must be an integer"},
		)
	}
	return id, nil
}

/*
List returns a page of posts.

GET /api/Blog?page=&limit=

Response:
  - 200: []Blog with pagination meta
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Get returns a single post.

GET /api/Blog/blogId/{blogId}

Response:
  - 200: Blog
  - 404: not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
Create publishes a new post.

POST /api/Blog

Response:
  - 200: "Successfully created."
  - 422: duplicate title
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body blogRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.Create(request.Context(), body.input()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MsgCreated)
}

/*
Update replaces a post.

PUT /api/Blog/blogId/{blogId}

Response:
  - 204: updated
  - 400: "BlogId Mismatch" or invalid fields
  - 404: not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body blogRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), id, body.input()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Delete removes a post.

DELETE /api/Blog/blogId/{blogId}

Response:
  - 204: deleted
  - 404: not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
