package contract

// -----------------------------------------------------------------------------
// Registry Query Entrypoints
// -----------------------------------------------------------------------------

// RegistryStats folds the whole registry into dashboard numbers. Records that
// fail to decode are counted as skipped and excluded from every aggregate, so
// the fold itself never fails. Donation totals stay in base units and count
// escrowed plus released donations alike via the immutable DonationAmount.
// Payload: none
func RegistryStats(payload *string) *string {
	_ = payload
	view := RegistryStatsView{TotalVerifiers: verifierCount()}

	for _, id := range GetIDsFromIndex(idxProfiles) {
		profile, found := loadProfile(id)
		if !found || profile == nil {
			view.SkippedRecords++
			continue
		}
		view.TotalRecipients++
		if profile.IsVerified {
			view.VerifiedRecipients++
		} else {
			view.PendingRecipients++
		}
	}

	for _, id := range GetIDsFromIndex(idxPackages) {
		pkg, found := loadPackage(id)
		if !found || pkg == nil {
			view.SkippedRecords++
			continue
		}
		view.TotalPackages++
		if pkg.Status == StatusDelivered {
			view.DeliveredPackages++
		}
		view.TotalDonations += AmountToInt64(pkg.DonationAmount)
	}

	return marshalView(view)
}

// RegistryIndex exposes the raw id lists so read-side services can fan out
// their own per-object fetches.
// Payload: none
func RegistryIndex(payload *string) *string {
	_ = payload
	view := RegistryIndexView{
		PackageIDs:     GetIDsFromIndex(idxPackages),
		RecipientIDs:   GetIDsFromIndex(idxProfiles),
		TotalVerifiers: verifierCount(),
	}
	return marshalView(view)
}
