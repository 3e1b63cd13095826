// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by outbound clients. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageUpstream is returned when the pinning service or gateway
	// answers with a non-success HTTP status.
	ErrStorageUpstream = errors.New("pinning service returned an error status")

	// ErrStorageUnavailable is returned when the pinning service or
	// gateway cannot be reached at the transport level.
	ErrStorageUnavailable = errors.New("pinning service is unavailable")

	// ErrCallReverted is returned when a contract call fails inside the
	// EVM: the token does not exist, the getter reverted, or the node
	// rejected the call at the JSON-RPC level. For authorization
	// predicates this family means "not applicable", never a fatal error.
	ErrCallReverted = errors.New("contract call reverted")

	// ErrChainTransport is returned when the RPC endpoint cannot be
	// reached at all. Distinct from [ErrCallReverted]: a total transport
	// failure must surface as a hard error to the caller.
	ErrChainTransport = errors.New("chain endpoint unreachable")
)
