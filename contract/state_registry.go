package contract

import (
	"strconv"
	"strings"

	"aidchain/sdk"
)

// -----------------------------------------------------------------------------
// Registry Configuration State
// -----------------------------------------------------------------------------

// isRegistryInitialized returns true if registry_init already ran.
func isRegistryInitialized() bool {
	ptr := sdk.StateGetObject(RegistryConfigKey)
	return ptr != nil && *ptr != ""
}

// loadRegistryConfig loads the registry configuration from state.
func loadRegistryConfig() *RegistryConfig {
	ptr := sdk.StateGetObject(RegistryConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeRegistryConfig(*ptr)
}

// saveRegistryConfig stores the registry configuration to state.
func saveRegistryConfig(cfg *RegistryConfig) {
	sdk.StateSetObject(RegistryConfigKey, encodeRegistryConfig(cfg))
}

// loadAuthorizationPolicy builds the policy every guarded call gets handed.
// Calls before registry_init revert not_found, nothing is authorized yet.
func loadAuthorizationPolicy() *AuthorizationPolicy {
	cfg := loadRegistryConfig()
	if cfg == nil {
		fail(errNotFound, "registry is not initialized")
	}
	return &AuthorizationPolicy{Admin: cfg.Admin}
}

// -----------------------------------------------------------------------------
// Registry Config Encoding
// -----------------------------------------------------------------------------

// encodeRegistryConfig serializes RegistryConfig to a pipe-delimited string.
// Format: admin|createdAtEpoch
func encodeRegistryConfig(cfg *RegistryConfig) string {
	return cfg.Admin.String() + "|" + strconv.FormatUint(cfg.CreatedAtEpoch, 10)
}

// decodeRegistryConfig deserializes a pipe-delimited string to RegistryConfig.
func decodeRegistryConfig(data string) *RegistryConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	epoch, _ := strconv.ParseUint(parts[1], 10, 64)
	return &RegistryConfig{
		Admin:          AddressFromString(parts[0]),
		CreatedAtEpoch: epoch,
	}
}

// -----------------------------------------------------------------------------
// Verifier Set
// -----------------------------------------------------------------------------

// isVerifier checks the per-address verifier flag.
func isVerifier(addr sdk.Address) bool {
	ptr := sdk.StateGetObject(verifierKey(addr))
	return ptr != nil && *ptr == "1"
}

// addVerifierFlag marks the address and bumps the verifier counter.
// The set is append-only, there is no removal path.
func addVerifierFlag(addr sdk.Address) {
	sdk.StateSetObject(verifierKey(addr), "1")
	setCount(VerifiersCount, getCount(VerifiersCount)+1)
}

// verifierCount reports how many verifier seats were ever granted.
func verifierCount() uint64 {
	return getCount(VerifiersCount)
}
