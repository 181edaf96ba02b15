package contract

import (
	"math"

	"aidchain/sdk"
)

type Amount int64

// FloatToAmount scales display floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for the transfer host calls.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// PackageStatus captures an aid package's delivery lifecycle.
// Transitions only ever move forward and Delivered is terminal.
type PackageStatus uint8

// String prints the status as lower-case text for events and wire views.
// Anything outside the known set renders as "unknown" instead of blowing up.
// Example payload: StatusDelivered.String()
func (s PackageStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusInTransit:
		return "in_transit"
	case StatusDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// RegistryConfig is written once by registry_init and never mutated after.
type RegistryConfig struct {
	Admin          sdk.Address
	CreatedAtEpoch uint64
}

// AuthorizationPolicy is loaded once per call and handed to the guard helpers,
// so every authorization decision names the policy it was made against.
type AuthorizationPolicy struct {
	Admin sdk.Address
}

// IsAdmin checks the registry admin seat.
func (p *AuthorizationPolicy) IsAdmin(addr sdk.Address) bool {
	return p.Admin == addr
}

// CanVerify allows the admin plus every registered verifier.
func (p *AuthorizationPolicy) CanVerify(addr sdk.Address) bool {
	return p.IsAdmin(addr) || isVerifier(addr)
}

// RecipientProfile is the stored verification record for an aid recipient.
// IsVerified only ever flips false -> true.
type RecipientProfile struct {
	ID                    uint64
	Owner                 sdk.Address
	Name                  string
	Location              string
	NeedCategory          string
	IsVerified            bool
	RegisteredAtEpoch     uint64
	ReceivedPackagesCount uint64
	Tx                    string
	Version               uint64
}

// AidPackage is the escrowed donation record. LockedDonation presence is the
// lock flag: funds sit in contract escrow exactly as long as it is non-nil.
// DonationAmount never changes after create so displays survive the release.
type AidPackage struct {
	ID                  uint64
	Donor               sdk.Address
	Coordinator         sdk.Address
	Recipient           *sdk.Address
	RecipientProfileID  *uint64
	Description         string
	Location            string
	Status              PackageStatus
	DonationAmount      Amount
	LockedDonation      *Amount
	CoordinatorApproved bool
	RecipientApproved   bool
	DeliveryNote        *string
	ProofURL            string
	CreatedAtEpoch      uint64
	UpdatedAtEpoch      uint64
	Tx                  string
	Version             uint64
}

// IsLocked reports whether the donation still sits in escrow.
func (p *AidPackage) IsLocked() bool {
	return p.LockedDonation != nil
}
