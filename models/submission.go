// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Submission is a progress video sent by a member. Either File (a stored
// upload) or VideoURL (an external link) references the media.
type Submission struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	File        string    `json:"file"`
	CreatedAt   int64     `json:"created_at"`
	Comments    []Comment `json:"comments"`
}

// Comment is admin feedback attached to a [Submission].
type Comment struct {
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
}
