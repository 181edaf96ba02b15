package contract

import (
	"fmt"

	"aidchain/sdk"
)

// emitRegistryInitEvent writes a tiny "ri" log so watchers see who seeded the registry.
func emitRegistryInitEvent(admin string) {
	sdk.Log(fmt.Sprintf(
		"ri|by:%s",
		admin,
	))
}

// emitVerifierAddedEvent pings explorers about a new verifier seat.
func emitVerifierAddedEvent(addr string, by string) {
	sdk.Log(fmt.Sprintf(
		"va|addr:%s|by:%s",
		addr,
		by,
	))
}

// emitRecipientRegisteredEvent gives indexers a neat line without scanning storage diffs.
func emitRecipientRegisteredEvent(profileId uint64, owner string) {
	sdk.Log(fmt.Sprintf(
		"rr|id:%d|by:%s",
		profileId,
		owner,
	))
}

// emitRecipientVerifiedEvent marks the monotonic verified flip.
func emitRecipientVerifiedEvent(profileId uint64, verifier string) {
	sdk.Log(fmt.Sprintf(
		"rv|id:%d|by:%s",
		profileId,
		verifier,
	))
}

// emitPackageCreatedEvent logs the escrow lock with the display amount for quick scanning.
func emitPackageCreatedEvent(packageId uint64, donor string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"ac|id:%d|by:%s|am:%f",
		packageId,
		donor,
		AmountToFloat(amount),
	))
}

// emitRecipientAssignedEvent ties a package to a verified profile.
func emitRecipientAssignedEvent(packageId uint64, profileId uint64) {
	sdk.Log(fmt.Sprintf(
		"ar|id:%d|pr:%d",
		packageId,
		profileId,
	))
}

// emitApprovalEvent is the shared line for both approval seats, r flags the role.
func emitApprovalEvent(packageId uint64, approver string, role string) {
	sdk.Log(fmt.Sprintf(
		"ap|id:%d|by:%s|r:%s",
		packageId,
		approver,
		role,
	))
}

// emitStatusChangedEvent is the swiss army knife log entry for lifecycle flips.
func emitStatusChangedEvent(packageId uint64, status PackageStatus) {
	sdk.Log(fmt.Sprintf(
		"as|id:%d|s:%s",
		packageId,
		status.String(),
	))
}

// emitDeliveredEvent traces the escrow release in a single terse line.
func emitDeliveredEvent(packageId uint64, coordinator string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"ad|id:%d|to:%s|am:%f",
		packageId,
		coordinator,
		AmountToFloat(amount),
	))
}
