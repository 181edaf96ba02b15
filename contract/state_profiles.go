package contract

import (
	"strconv"

	"aidchain/sdk"
)

// saveProfile writes the encoded record and keeps the append-only id index current.
func saveProfile(p *RecipientProfile) {
	sdk.StateSetObject(profileKey(p.ID), string(EncodeRecipientProfile(p)))
	AddIDToIndex(idxProfiles, p.ID)
}

// loadProfile mirrors loadPackage: (nil, false) means absent, (nil, true) means
// present but undecodable.
func loadProfile(id uint64) (*RecipientProfile, bool) {
	ptr := sdk.StateGetObject(profileKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	p, err := DecodeRecipientProfile([]byte(*ptr))
	if err != nil {
		return nil, true
	}
	return p, true
}

// mustLoadProfile is the single-object read path with the strict error taxonomy.
func mustLoadProfile(id uint64) *RecipientProfile {
	p, found := loadProfile(id)
	if !found {
		fail(errNotFound, "recipient profile %d does not exist", id)
	}
	if p == nil {
		fail(errMalformedRecord, "recipient profile %d is not decodable", id)
	}
	return p
}

// touchProfile refreshes the bookkeeping fields every mutation shares.
func touchProfile(p *RecipientProfile) {
	p.Tx = currentTxId()
	p.Version++
}

// profileIDForOwner resolves the one-profile-per-address mapping.
func profileIDForOwner(addr sdk.Address) (uint64, bool) {
	ptr := sdk.StateGetObject(profileOwnerKey(addr))
	if ptr == nil || *ptr == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// setProfileOwner records the owner -> profile id mapping.
func setProfileOwner(addr sdk.Address, id uint64) {
	sdk.StateSetObject(profileOwnerKey(addr), strconv.FormatUint(id, 10))
}
