// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the stored form of a password: the owner's username plus a
// base64-encoded random salt and a base64-encoded PBKDF2 derived key.
// The plain-text password is never persisted.
type Credential struct {
	// Username identifies the credential owner. For applications it is the
	// member login; for settings it is the admin login.
	Username string `json:"username"`

	// Salt is the base64 (standard encoding) form of the 16 random bytes
	// drawn when the credential was created.
	Salt string `json:"salt"`

	// Hash is the base64 (standard encoding) form of the derived key.
	Hash string `json:"hash"`
}

// Role is the fixed set of principals a session can belong to.
type Role string

const (
	// RoleAdmin is the single site administrator.
	RoleAdmin Role = "admin"

	// RoleUser is an approved member.
	RoleUser Role = "user"
)

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}
