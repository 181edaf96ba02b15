package contract

import "aidchain/sdk"

// savePackage writes the encoded record and keeps the append-only id index current.
func savePackage(pkg *AidPackage) {
	sdk.StateSetObject(packageKey(pkg.ID), string(EncodeAidPackage(pkg)))
	AddIDToIndex(idxPackages, pkg.ID)
}

// loadPackage reads and strictly decodes one record. The bool reports presence,
// a present-but-undecodable record comes back as (nil, true) so callers can
// pick between skipping and surfacing malformed_record.
func loadPackage(id uint64) (*AidPackage, bool) {
	ptr := sdk.StateGetObject(packageKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	pkg, err := DecodeAidPackage([]byte(*ptr))
	if err != nil {
		return nil, true
	}
	return pkg, true
}

// mustLoadPackage is the single-object read path: unknown ids revert not_found,
// undecodable records revert malformed_record.
func mustLoadPackage(id uint64) *AidPackage {
	pkg, found := loadPackage(id)
	if !found {
		fail(errNotFound, "aid package %d does not exist", id)
	}
	if pkg == nil {
		fail(errMalformedRecord, "aid package %d is not decodable", id)
	}
	return pkg
}

// touchPackage refreshes the bookkeeping fields every mutation shares.
func touchPackage(pkg *AidPackage) {
	pkg.UpdatedAtEpoch = currentEpoch()
	pkg.Tx = currentTxId()
	pkg.Version++
}
