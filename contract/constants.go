package contract

import "aidchain/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// EscrowAsset is the single asset donations are escrowed in.
var EscrowAsset = sdk.AssetHive

// validAssets lists the asset tickers accepted inside transfer.allow intents.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier between display units and the
// int64 base units kept on chain.
const AmountScale = 1_000_000_000

// -----------------------------------------------------------------------------
// Epoch Clock
// -----------------------------------------------------------------------------

const (
	// EpochSeconds is the length of one ledger epoch.
	EpochSeconds = 86_400
	// MinDeliveryEpochs is how many epochs must pass between create and delivery.
	MinDeliveryEpochs = 1
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTextLength limits free-text fields (descriptions, names, notes).
	MaxTextLength = 500
	// MaxURLLength limits proof URLs.
	MaxURLLength = 500
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// PackagesCount holds an integer counter for aid packages (used for generating IDs).
	PackagesCount = "count:pkg"
	// ProfilesCount holds an integer counter for recipient profiles (used for generating IDs).
	ProfilesCount = "count:prof"
	// VerifiersCount holds an integer counter for registered verifiers.
	VerifiersCount = "count:vrf"
)

// -----------------------------------------------------------------------------
// Index Keys
// -----------------------------------------------------------------------------

const (
	// idxPackages holds every aid package id ever created (append-only).
	idxPackages = "reg:pkgs"
	// idxProfiles holds every recipient profile id ever registered (append-only).
	idxProfiles = "reg:profs"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

// RegistryConfigKey stores the pipe-encoded RegistryConfig.
const RegistryConfigKey = "reg:cfg"

const (
	// kPackageMeta stores encoded AidPackage records.
	kPackageMeta byte = 0x01
	// kProfileMeta stores encoded RecipientProfile records.
	kProfileMeta byte = 0x02
	// kProfileOwner maps an owner address to its profile id.
	kProfileOwner byte = 0x03
	// kVerifier flags a verifier address.
	kVerifier byte = 0x04
)

// -----------------------------------------------------------------------------
// Package Statuses
// -----------------------------------------------------------------------------

const (
	StatusCreated   PackageStatus = 0
	StatusInTransit PackageStatus = 1
	StatusDelivered PackageStatus = 2
)
