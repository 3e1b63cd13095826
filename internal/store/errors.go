// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrWalletAlreadyExists is returned when registration fails because the
	// wallet address is already linked to another account.
	ErrWalletAlreadyExists = errors.New("wallet address already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDatasetNotFound is returned when a catalog lookup by ID or CID
	// matches no dataset row.
	ErrDatasetNotFound = errors.New("dataset was not found")

	// ErrCIDAlreadyExists is returned when an insert collides with the unique
	// constraint on the content identifier. CIDs bind a row to its pinned
	// payload and are immutable, so the collision is surfaced as-is.
	ErrCIDAlreadyExists = errors.New("content identifier already exists")

	// ErrRecordNotFound is returned when an encrypted-dataset lookup by
	// token ID or CID matches no record.
	ErrRecordNotFound = errors.New("encrypted dataset record was not found")

	// ErrTokenIDTaken is returned when attaching a token ID collides with the
	// unique constraint: another record already holds that on-chain token.
	ErrTokenIDTaken = errors.New("token id already attached to another record")
)
