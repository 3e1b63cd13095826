// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN and the two external endpoints are required; token
// settings default at the service layer and timeouts default at the adapter
// layer, so they are not enforced here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Pinning.APIURL == "" || cfg.Pinning.GatewayURL == "" {
		return ErrInvalidPinningConfigs
	}

	if cfg.Chain.RPCURL == "" || cfg.Chain.ContractAddress == "" {
		return ErrInvalidChainConfigs
	}

	return nil
}
