// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Upload is a file received in a multipart form.
type Upload struct {
	// Filename is the client-supplied name; only its extension is trusted.
	Filename string

	// Content streams the file body.
	Content io.Reader
}

// ApplicationForm is the public membership request form.
type ApplicationForm struct {
	Username string
	Password string
	Email    string
	Skill    string
	Level    string
	Goal     string
	Concerns string
}

// LoginForm carries the credentials posted to the login endpoints.
type LoginForm struct {
	Username string
	Password string
}

// EventForm is the admin form that adds an event.
type EventForm struct {
	Title       string
	Date        string
	Location    string
	Description string
	Tag         string
}

// VideoForm is the admin form that adds a gallery video.
type VideoForm struct {
	Title       string
	Tag         string
	Description string
	Layout      string
	VideoURL    string
	File        *Upload
}

// SubmissionForm is the member form that sends a progress video.
type SubmissionForm struct {
	Title       string
	Description string
	VideoURL    string
	File        *Upload
}

// CommentForm is the admin feedback form for a submission.
type CommentForm struct {
	SubmissionID string
	Text         string
}

// PlanUpdate is the admin plan editor form. Weeks holds the raw textarea
// content of each week, one day per line; empty entries leave the week
// untouched.
type PlanUpdate struct {
	Username string
	Title    string
	Weeks    [PlanWeeks]string
}

// SMTPForm is the admin mail settings form. Port is kept as text so that
// unparsable input can fall back to [DefaultSMTPPort].
type SMTPForm struct {
	Host       string
	Port       string
	Username   string
	Password   string
	FromName   string
	AdminEmail string
	Enabled    bool
	UseTLS     bool
}
