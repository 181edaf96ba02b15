package contract

// -----------------------------------------------------------------------------
// Registry Entrypoints
// -----------------------------------------------------------------------------

// RegistryInit seeds the registry with the caller as admin. One-shot: every
// later call reverts already_initialized no matter who sends it.
// Payload: none
func RegistryInit(payload *string) *string {
	_ = payload
	if isRegistryInitialized() {
		fail(errAlreadyInitialized, "registry already initialized")
	}
	cfg := RegistryConfig{
		Admin:          getSenderAddress(),
		CreatedAtEpoch: currentEpoch(),
	}
	saveRegistryConfig(&cfg)
	emitRegistryInitEvent(cfg.Admin.String())
	return strptr("registry initialized")
}

// RegistryAddVerifier grants a verifier seat. Admin only, append-only.
// Payload: {"address": "hive:bob"}
func RegistryAddVerifier(payload *string) *string {
	policy := loadAuthorizationPolicy()
	sender := getSenderAddress()
	if !policy.IsAdmin(sender) {
		fail(errUnauthorized, "only the registry admin can add verifiers")
	}

	args := &AddVerifierArgs{}
	decodePayload(payload, args, "add verifier")
	addr := AddressFromString(args.Address)
	if !addr.IsValid() {
		fail(errInvalidPayload, "verifier address %q is not valid", args.Address)
	}
	if policy.IsAdmin(addr) || isVerifier(addr) {
		fail(errAlreadyVerifier, "%s already holds a verifier seat", addr)
	}

	addVerifierFlag(addr)
	emitVerifierAddedEvent(addr.String(), sender.String())
	return strptr("verifier added")
}
