package contract

import tinyjson "github.com/CosmWasm/tinyjson"

// -----------------------------------------------------------------------------
// Recipient Profile Entrypoints
// -----------------------------------------------------------------------------

// RecipientRegister creates the caller's recipient profile. One profile per
// address; profiles start unverified and verification is a separate guarded step.
// Payload: {"name": "...", "location": "...", "need_category": "..."}
func RecipientRegister(payload *string) *string {
	// registry must exist before anyone can enroll
	loadAuthorizationPolicy()

	args := &RegisterRecipientArgs{}
	decodePayload(payload, args, "recipient registration")
	name := requireText(args.Name, "name")
	location := requireText(args.Location, "location")
	needCategory := requireText(args.NeedCategory, "need_category")

	owner := getSenderAddress()
	if _, exists := profileIDForOwner(owner); exists {
		fail(errAlreadyRegistered, "%s already has a recipient profile", owner)
	}

	profile := &RecipientProfile{
		ID:                nextID(ProfilesCount),
		Owner:             owner,
		Name:              name,
		Location:          location,
		NeedCategory:      needCategory,
		RegisteredAtEpoch: currentEpoch(),
		Tx:                currentTxId(),
		Version:           1,
	}
	saveProfile(profile)
	setProfileOwner(owner, profile.ID)
	emitRecipientRegisteredEvent(profile.ID, owner.String())
	return strptr(sdkFormatID(profile.ID))
}

// RecipientVerify flips a profile to verified. Verifier/admin only, and the
// flip is monotonic: repeats revert already_verified instead of no-op.
// Payload: {"profile_id": 3, "expect_version": 1}
func RecipientVerify(payload *string) *string {
	policy := loadAuthorizationPolicy()
	sender := getSenderAddress()
	if !policy.CanVerify(sender) {
		fail(errUnauthorized, "only verifiers can verify recipient profiles")
	}

	args := &VerifyRecipientArgs{}
	decodePayload(payload, args, "recipient verification")
	profile := mustLoadProfile(args.ProfileID)
	requireVersion(args.ExpectVersion, profile.Version)
	if profile.IsVerified {
		fail(errAlreadyVerified, "recipient profile %d is already verified", profile.ID)
	}

	profile.IsVerified = true
	touchProfile(profile)
	saveProfile(profile)
	emitRecipientVerifiedEvent(profile.ID, sender.String())
	return strptr("recipient verified")
}

// RecipientGet returns one profile as JSON. Unknown ids revert not_found,
// undecodable records revert malformed_record.
// Payload: profile id as bare digits
func RecipientGet(payload *string) *string {
	id := decodeIDPayload(payload, "recipient profile")
	profile := mustLoadProfile(id)
	return marshalView(profileView(profile))
}

// RecipientsList folds over the whole profile index, skipping records that
// fail to decode so one bad record never hides the rest.
// Payload: none
func RecipientsList(payload *string) *string {
	_ = payload
	view := RecipientListView{Recipients: []RecipientProfileView{}}
	for _, id := range GetIDsFromIndex(idxProfiles) {
		profile, found := loadProfile(id)
		if !found || profile == nil {
			continue
		}
		view.Recipients = append(view.Recipients, profileView(profile))
	}
	return marshalView(view)
}

// marshalView turns a wire DTO into the *string the host expects.
func marshalView(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		fail(errMalformedRecord, "cannot encode response: %v", err)
	}
	return strptr(string(b))
}

// sdkFormatID keeps entrypoint returns terse: just the fresh id as digits.
func sdkFormatID(id uint64) string {
	return "id:" + UInt64ToString(id)
}
