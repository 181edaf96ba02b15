//go:build wasm

package main

import "aidchain/contract"

// Thin wasm entrypoint wrappers. All semantics live in the contract package so
// tests can call the same functions without a wasm runtime.

//go:wasmexport registry_init
func RegistryInit(payload *string) *string {
	return contract.RegistryInit(payload)
}

//go:wasmexport registry_add_verifier
func RegistryAddVerifier(payload *string) *string {
	return contract.RegistryAddVerifier(payload)
}

//go:wasmexport recipient_register
func RecipientRegister(payload *string) *string {
	return contract.RecipientRegister(payload)
}

//go:wasmexport recipient_verify
func RecipientVerify(payload *string) *string {
	return contract.RecipientVerify(payload)
}

//go:wasmexport package_create
func PackageCreate(payload *string) *string {
	return contract.PackageCreate(payload)
}

//go:wasmexport package_assign_recipient
func PackageAssignRecipient(payload *string) *string {
	return contract.PackageAssignRecipient(payload)
}

//go:wasmexport package_approve_coordinator
func PackageApproveCoordinator(payload *string) *string {
	return contract.PackageApproveCoordinator(payload)
}

//go:wasmexport package_approve_recipient
func PackageApproveRecipient(payload *string) *string {
	return contract.PackageApproveRecipient(payload)
}

//go:wasmexport package_mark_in_transit
func PackageMarkInTransit(payload *string) *string {
	return contract.PackageMarkInTransit(payload)
}

//go:wasmexport package_mark_delivered
func PackageMarkDelivered(payload *string) *string {
	return contract.PackageMarkDelivered(payload)
}

//go:wasmexport package_get
func PackageGet(payload *string) *string {
	return contract.PackageGet(payload)
}

//go:wasmexport recipient_get
func RecipientGet(payload *string) *string {
	return contract.RecipientGet(payload)
}

//go:wasmexport packages_list
func PackagesList(payload *string) *string {
	return contract.PackagesList(payload)
}

//go:wasmexport recipients_list
func RecipientsList(payload *string) *string {
	return contract.RecipientsList(payload)
}

//go:wasmexport registry_stats
func RegistryStats(payload *string) *string {
	return contract.RegistryStats(payload)
}

//go:wasmexport registry_index
func RegistryIndex(payload *string) *string {
	return contract.RegistryIndex(payload)
}
