// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/middleware"
	requestutil "github.com/ianbriton/blogapi/internal/platform/request"
	"github.com/ianbriton/blogapi/internal/platform/respond"
	"github.com/ianbriton/blogapi/internal/platform/sec"
	"github.com/ianbriton/blogapi/internal/platform/validate"
)

// # Definitions & Constructors

// SessionService is the use-case surface the handler depends on.
type SessionService interface {
	SeedRoles(ctx context.Context) (bool, error)
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, token string)
	GrantRole(ctx context.Context, username string, target sec.Role) error
}

// Handler implements the /api/Auth endpoints.
type Handler struct {
	service SessionService
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service SessionService) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving the session endpoints.
//
// # Endpoints
//   - POST /seed-roles : open
//   - POST /register   : open
//   - POST /login      : open
//   - POST /logout     : bearer header required, validity not checked
//   - POST /make-admin : Admin
//   - POST /make-owner : Owner
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	middleware.Mount(router, []middleware.Route{
		{Method: http.MethodPost, Pattern: "/seed-roles", Public: true, Handler: handler.seedRoles},
		{Method: http.MethodPost, Pattern: "/register", Public: true, Handler: handler.register},
		{Method: http.MethodPost, Pattern: "/login", Public: true, Handler: handler.login},
		{Method: http.MethodPost, Pattern: "/logout", Public: true, Handler: handler.logout},
		{Method: http.MethodPost, Pattern: "/make-admin", Roles: []sec.Role{sec.RoleAdmin}, Handler: handler.grant(sec.RoleAdmin, MsgNowAdmin)},
		{Method: http.MethodPost, Pattern: "/make-owner", Roles: []sec.Role{sec.RoleOwner}, Handler: handler.grant(sec.RoleOwner, MsgNowOwner)},
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePermissionRequest struct {
	Username string `json:"userName" validate:"required"`
}

/*
SeedRoles creates the fixed roles when missing.

POST /api/Auth/seed-roles

Response:
  - 200: "Role already exists" or "Role Seeding to the Database succeeded."
*/
func (handler *Handler) seedRoles(writer http.ResponseWriter, request *http.Request) {
	created, err := handler.service.SeedRoles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !created {
		respond.Message(writer, MsgRoleExists)
		return
	}
	respond.Message(writer, MsgRolesSeeded)
}

/*
Register handles the creation of a new account.

POST /api/Auth/register

Response:
  - 200: "User successfully created."
  - 400: "User already exists" or a password policy failure
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.service.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MsgUserCreated)
}

/*
Login authenticates a user and returns a session token.

POST /api/Auth/login

Response:
  - 200: Session: token and expiry
  - 401: "Invalid Credentials"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
Logout revokes the presented token.

POST /api/Auth/logout

Response:
  - 204: token revoked (whether or not it was valid)
  - 401: no bearer token in the request
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token, ok := requestutil.BearerToken(request)
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	handler.service.Logout(request.Context(), token)
	respond.NoContent(writer)
}

/*
grant builds the make-admin and make-owner handlers.

POST /api/Auth/make-admin, POST /api/Auth/make-owner

Response:
  - 200: "User is now an Admin" / "User is now an Owner"
  - 400: "Invalid User name"
*/
func (handler *Handler) grant(target sec.Role, message string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input updatePermissionRequest
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := validate.Struct(input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.service.GrantRole(request.Context(), input.Username, target); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Message(writer, message)
	}
}
