package contract

// Wire structs: call payloads going in, view DTOs going out. All of them get
// tinyjson codecs (wire_tinyjson.go) so the wasm build never drags reflection in.

//tinyjson:json
type RegisterRecipientArgs struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	NeedCategory string `json:"need_category"`
}

//tinyjson:json
type VerifyRecipientArgs struct {
	ProfileID     uint64 `json:"profile_id"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type AddVerifierArgs struct {
	Address string `json:"address"`
}

//tinyjson:json
type CreateAidPackageArgs struct {
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	Coordinator        string  `json:"coordinator"`
	RecipientProfileID *uint64 `json:"recipient_profile_id,omitempty"`
	Amount             int64   `json:"amount"`
}

//tinyjson:json
type AssignRecipientArgs struct {
	PackageID     uint64 `json:"package_id"`
	ProfileID     uint64 `json:"profile_id"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type ApproveCoordinatorArgs struct {
	PackageID     uint64 `json:"package_id"`
	Note          string `json:"note,omitempty"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type ApproveRecipientArgs struct {
	PackageID     uint64 `json:"package_id"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type MarkInTransitArgs struct {
	PackageID     uint64 `json:"package_id"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type MarkDeliveredArgs struct {
	PackageID     uint64 `json:"package_id"`
	ProofURL      string `json:"proof_url"`
	ExpectVersion uint64 `json:"expect_version,omitempty"`
}

//tinyjson:json
type AidPackageView struct {
	ID                  uint64  `json:"id"`
	Donor               string  `json:"donor"`
	Coordinator         string  `json:"coordinator"`
	Recipient           *string `json:"recipient,omitempty"`
	RecipientProfileID  *uint64 `json:"recipient_profile_id,omitempty"`
	Description         string  `json:"description"`
	Location            string  `json:"location"`
	Status              uint8   `json:"status"`
	StatusLabel         string  `json:"status_label"`
	DonationAmount      int64   `json:"donation_amount"`
	IsLocked            bool    `json:"is_locked"`
	CoordinatorApproved bool    `json:"coordinator_approved"`
	RecipientApproved   bool    `json:"recipient_approved"`
	DeliveryNote        *string `json:"delivery_note,omitempty"`
	ProofURL            string  `json:"proof_url,omitempty"`
	CreatedAtEpoch      uint64  `json:"created_at_epoch"`
	UpdatedAtEpoch      uint64  `json:"updated_at_epoch"`
	Version             uint64  `json:"version"`
}

//tinyjson:json
type RecipientProfileView struct {
	ID                    uint64 `json:"id"`
	Owner                 string `json:"owner"`
	Name                  string `json:"name"`
	Location              string `json:"location"`
	NeedCategory          string `json:"need_category"`
	IsVerified            bool   `json:"is_verified"`
	RegisteredAtEpoch     uint64 `json:"registered_at_epoch"`
	ReceivedPackagesCount uint64 `json:"received_packages_count"`
	Version               uint64 `json:"version"`
}

//tinyjson:json
type PackageListView struct {
	Packages []AidPackageView `json:"packages"`
}

//tinyjson:json
type RecipientListView struct {
	Recipients []RecipientProfileView `json:"recipients"`
}

//tinyjson:json
type RegistryStatsView struct {
	TotalRecipients    uint64 `json:"total_recipients"`
	VerifiedRecipients uint64 `json:"verified_recipients"`
	PendingRecipients  uint64 `json:"pending_recipients"`
	TotalPackages      uint64 `json:"total_packages"`
	DeliveredPackages  uint64 `json:"delivered_packages"`
	TotalDonations     int64  `json:"total_donations"`
	TotalVerifiers     uint64 `json:"total_verifiers"`
	SkippedRecords     uint64 `json:"skipped_records"`
}

//tinyjson:json
type RegistryIndexView struct {
	PackageIDs     []uint64 `json:"package_ids"`
	RecipientIDs   []uint64 `json:"recipient_ids"`
	TotalVerifiers uint64   `json:"total_verifiers"`
}

// packageView projects the stored record onto the wire shape. The donation
// amount stays in base units here, display scaling is a client concern.
func packageView(pkg *AidPackage) AidPackageView {
	view := AidPackageView{
		ID:                  pkg.ID,
		Donor:               pkg.Donor.String(),
		Coordinator:         pkg.Coordinator.String(),
		RecipientProfileID:  pkg.RecipientProfileID,
		Description:         pkg.Description,
		Location:            pkg.Location,
		Status:              uint8(pkg.Status),
		StatusLabel:         pkg.Status.String(),
		DonationAmount:      AmountToInt64(pkg.DonationAmount),
		IsLocked:            pkg.IsLocked(),
		CoordinatorApproved: pkg.CoordinatorApproved,
		RecipientApproved:   pkg.RecipientApproved,
		DeliveryNote:        pkg.DeliveryNote,
		ProofURL:            pkg.ProofURL,
		CreatedAtEpoch:      pkg.CreatedAtEpoch,
		UpdatedAtEpoch:      pkg.UpdatedAtEpoch,
		Version:             pkg.Version,
	}
	if pkg.Recipient != nil {
		view.Recipient = strptr(pkg.Recipient.String())
	}
	return view
}

// profileView projects the stored record onto the wire shape.
func profileView(p *RecipientProfile) RecipientProfileView {
	return RecipientProfileView{
		ID:                    p.ID,
		Owner:                 p.Owner.String(),
		Name:                  p.Name,
		Location:              p.Location,
		NeedCategory:          p.NeedCategory,
		IsVerified:            p.IsVerified,
		RegisteredAtEpoch:     p.RegisteredAtEpoch,
		ReceivedPackagesCount: p.ReceivedPackagesCount,
		Version:               p.Version,
	}
}
