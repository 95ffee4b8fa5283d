// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blog implements CRUD over blog posts stored in content.blog.

Titles are unique ignoring surrounding whitespace and letter case. The
comparison key is derived with Unicode case folding and stored alongside the
title so that PostgreSQL enforces uniqueness as well.
*/
package blog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// # Domain Entities

// Blog is a published post.
type Blog struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublicationDate time.Time `json:"publicationDate"`
	Body            string    `json:"body"`
}

// TitleKey returns the normalized form used to detect duplicate titles.
func TitleKey(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// # Field Identifiers

const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldBody   = "body"
)

// # Messages

const (
	MsgTitleExists = "A Blog with this title already exists"
	MsgCreated     = "Successfully created."
	MsgIDMismatch  = "BlogId Mismatch"
)

// MaxTitleLength bounds titles and author names.
const MaxTitleLength = 200
