package contract

import "aidchain/sdk"

// -----------------------------------------------------------------------------
// Aid Package Entrypoints
// -----------------------------------------------------------------------------

// PackageCreate escrows a donation into a fresh aid package. The donation is
// drawn from the caller within the transfer.allow intent, DonationAmount stays
// immutable afterwards and LockedDonation holds the escrow until delivery.
// Payload: {"description": "...", "location": "...", "coordinator": "hive:coord",
// "recipient_profile_id": 2, "amount": 100000000000}
func PackageCreate(payload *string) *string {
	loadAuthorizationPolicy()

	args := &CreateAidPackageArgs{}
	decodePayload(payload, args, "package create")
	description := requireText(args.Description, "description")
	location := requireText(args.Location, "location")
	coordinator := AddressFromString(args.Coordinator)
	if !coordinator.IsValid() {
		fail(errInvalidPayload, "coordinator address %q is not valid", args.Coordinator)
	}

	amount := Amount(args.Amount)
	if amount <= 0 {
		fail(errInvalidAmount, "donation amount must be positive")
	}
	allow := getFirstTransferAllow()
	if allow == nil {
		fail(errInvalidAmount, "donation requires a transfer.allow intent")
	}
	if allow.Token != EscrowAsset {
		fail(errInvalidPayload, "donations are escrowed in %s, intent allows %s", EscrowAsset, allow.Token)
	}
	if amount > FloatToAmount(allow.Limit) {
		fail(errInvalidAmount, "donation amount exceeds the allowed transfer limit")
	}

	donor := getSenderAddress()
	if sdk.GetBalance(donor, EscrowAsset) < AmountToInt64(amount) {
		fail(errInsufficientBalance, "donor balance below donation amount")
	}

	// optional direct binding, only verified profiles qualify
	var recipient *sdk.Address
	if args.RecipientProfileID != nil {
		profile := mustLoadProfile(*args.RecipientProfileID)
		if !profile.IsVerified {
			fail(errRecipientNotVerified, "recipient profile %d is not verified", profile.ID)
		}
		recipient = &profile.Owner
	}

	sdk.HiveDraw(AmountToInt64(amount), EscrowAsset)

	locked := amount
	now := currentEpoch()
	pkg := &AidPackage{
		ID:                 nextID(PackagesCount),
		Donor:              donor,
		Coordinator:        coordinator,
		Recipient:          recipient,
		RecipientProfileID: args.RecipientProfileID,
		Description:        description,
		Location:           location,
		Status:             StatusCreated,
		DonationAmount:     amount,
		LockedDonation:     &locked,
		CreatedAtEpoch:     now,
		UpdatedAtEpoch:     now,
		Tx:                 currentTxId(),
		Version:            1,
	}
	savePackage(pkg)
	emitPackageCreatedEvent(pkg.ID, donor.String(), amount)
	return strptr(sdkFormatID(pkg.ID))
}

// PackageAssignRecipient binds a verified profile to a package. Rebinding is
// rejected, the recipient seat is write-once.
// Payload: {"package_id": 1, "profile_id": 2, "expect_version": 1}
func PackageAssignRecipient(payload *string) *string {
	args := &AssignRecipientArgs{}
	decodePayload(payload, args, "assign recipient")

	pkg := mustLoadPackage(args.PackageID)
	requireVersion(args.ExpectVersion, pkg.Version)
	if pkg.Recipient != nil {
		fail(errAlreadyAssigned, "aid package %d already has a recipient", pkg.ID)
	}
	profile := mustLoadProfile(args.ProfileID)
	if !profile.IsVerified {
		fail(errRecipientNotVerified, "recipient profile %d is not verified", profile.ID)
	}

	pkg.Recipient = &profile.Owner
	pkg.RecipientProfileID = &profile.ID
	touchPackage(pkg)
	savePackage(pkg)
	emitRecipientAssignedEvent(pkg.ID, profile.ID)
	return strptr("recipient assigned")
}

// PackageApproveCoordinator records the coordinator's approval plus an optional
// delivery note. Each seat approves exactly once.
// Payload: {"package_id": 1, "note": "ready", "expect_version": 2}
func PackageApproveCoordinator(payload *string) *string {
	args := &ApproveCoordinatorArgs{}
	decodePayload(payload, args, "coordinator approval")

	pkg := mustLoadPackage(args.PackageID)
	requireVersion(args.ExpectVersion, pkg.Version)
	sender := getSenderAddress()
	if sender != pkg.Coordinator {
		fail(errUnauthorized, "only the coordinator can approve as coordinator")
	}
	if pkg.CoordinatorApproved {
		fail(errAlreadyApproved, "coordinator already approved aid package %d", pkg.ID)
	}

	pkg.CoordinatorApproved = true
	if note := optionalText(args.Note, "note"); note != "" {
		pkg.DeliveryNote = strptr(note)
	}
	touchPackage(pkg)
	savePackage(pkg)
	emitApprovalEvent(pkg.ID, sender.String(), "c")
	return strptr("coordinator approved")
}

// PackageApproveRecipient records the bound recipient's approval. Fails
// unauthorized when no recipient is bound yet.
// Payload: {"package_id": 1}
func PackageApproveRecipient(payload *string) *string {
	args := &ApproveRecipientArgs{}
	decodePayload(payload, args, "recipient approval")

	pkg := mustLoadPackage(args.PackageID)
	requireVersion(args.ExpectVersion, pkg.Version)
	sender := getSenderAddress()
	if pkg.Recipient == nil || sender != *pkg.Recipient {
		fail(errUnauthorized, "only the bound recipient can approve as recipient")
	}
	if pkg.RecipientApproved {
		fail(errAlreadyApproved, "recipient already approved aid package %d", pkg.ID)
	}

	pkg.RecipientApproved = true
	touchPackage(pkg)
	savePackage(pkg)
	emitApprovalEvent(pkg.ID, sender.String(), "r")
	return strptr("recipient approved")
}

// PackageMarkInTransit flags the dispatched leg. Coordinator only, reachable
// from Created alone, and skipping it entirely stays legal.
// Payload: {"package_id": 1}
func PackageMarkInTransit(payload *string) *string {
	args := &MarkInTransitArgs{}
	decodePayload(payload, args, "mark in transit")

	pkg := mustLoadPackage(args.PackageID)
	requireVersion(args.ExpectVersion, pkg.Version)
	sender := getSenderAddress()
	if sender != pkg.Coordinator {
		fail(errUnauthorized, "only the coordinator can mark in transit")
	}
	if pkg.Status != StatusCreated {
		fail(errNotReady, "aid package %d is %s, not created", pkg.ID, pkg.Status)
	}

	pkg.Status = StatusInTransit
	touchPackage(pkg)
	savePackage(pkg)
	emitStatusChangedEvent(pkg.ID, pkg.Status)
	return strptr("package in transit")
}

// PackageMarkDelivered finalizes delivery: gates on both approvals, a proof
// URL and the epoch delay, then releases the escrow to the coordinator, clears
// the lock and bumps the bound profile's delivery count in one transition.
// Payload: {"package_id": 1, "proof_url": "https://x"}
func PackageMarkDelivered(payload *string) *string {
	args := &MarkDeliveredArgs{}
	decodePayload(payload, args, "mark delivered")

	pkg := mustLoadPackage(args.PackageID)
	requireVersion(args.ExpectVersion, pkg.Version)
	sender := getSenderAddress()
	if sender != pkg.Coordinator {
		fail(errUnauthorized, "only the coordinator can mark delivered")
	}
	if pkg.Status != StatusCreated && pkg.Status != StatusInTransit {
		fail(errNotReady, "aid package %d is %s and cannot be delivered", pkg.ID, pkg.Status)
	}
	if !pkg.CoordinatorApproved || !pkg.RecipientApproved {
		fail(errNotReady, "aid package %d needs both approvals before delivery", pkg.ID)
	}
	proofURL := optionalText(args.ProofURL, "proof_url")
	if proofURL == "" {
		fail(errMissingProof, "delivery requires a proof url")
	}
	if len(proofURL) > MaxURLLength {
		fail(errInvalidPayload, "proof_url exceeds %d characters", MaxURLLength)
	}
	now := currentEpoch()
	if now < pkg.CreatedAtEpoch+MinDeliveryEpochs {
		fail(errTooEarly, "aid package %d can be delivered from epoch %d", pkg.ID, pkg.CreatedAtEpoch+MinDeliveryEpochs)
	}
	if pkg.LockedDonation == nil {
		fail(errNotReady, "aid package %d holds no escrowed donation", pkg.ID)
	}

	released := *pkg.LockedDonation
	sdk.HiveTransfer(pkg.Coordinator, AmountToInt64(released), EscrowAsset)

	pkg.LockedDonation = nil
	pkg.Status = StatusDelivered
	pkg.ProofURL = proofURL
	touchPackage(pkg)
	savePackage(pkg)

	// same transition bumps the profile delivery counter
	if pkg.RecipientProfileID != nil {
		if profile, found := loadProfile(*pkg.RecipientProfileID); found && profile != nil {
			profile.ReceivedPackagesCount++
			touchProfile(profile)
			saveProfile(profile)
		}
	}

	emitStatusChangedEvent(pkg.ID, pkg.Status)
	emitDeliveredEvent(pkg.ID, pkg.Coordinator.String(), released)
	return strptr("package delivered")
}

// PackageGet returns one package as JSON. Unknown ids revert not_found,
// undecodable records revert malformed_record.
// Payload: package id as bare digits
func PackageGet(payload *string) *string {
	id := decodeIDPayload(payload, "aid package")
	pkg := mustLoadPackage(id)
	return marshalView(packageView(pkg))
}

// PackagesList folds over the whole package index with skip-on-failure
// semantics, one bad record never hides the rest.
// Payload: none
func PackagesList(payload *string) *string {
	_ = payload
	view := PackageListView{Packages: []AidPackageView{}}
	for _, id := range GetIDsFromIndex(idxPackages) {
		pkg, found := loadPackage(id)
		if !found || pkg == nil {
			continue
		}
		view.Packages = append(view.Packages, packageView(pkg))
	}
	return marshalView(view)
}
