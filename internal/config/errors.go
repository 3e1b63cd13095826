// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPinningConfigs indicates invalid pinning service settings
	// (for example, a missing API or gateway URL).
	ErrInvalidPinningConfigs = errors.New("invalid pinning configuration")
	// ErrInvalidChainConfigs indicates invalid chain settings
	// (for example, a missing RPC endpoint or contract address).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
)
