package contract_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/contract"
	"aidchain/sdk"
)

const donation = int64(5_000_000_000) // 5.0 in display units

func getPackage(t *testing.T, id uint64) contract.AidPackageView {
	t.Helper()
	raw := contract.PackageGet(strptr(fmt.Sprintf("%d", id)))
	var view contract.AidPackageView
	require.NoError(t, json.Unmarshal([]byte(*raw), &view))
	return view
}

func TestPackageCreateEscrowsDonation(t *testing.T) {
	host := initRegistry(t)
	pkgID := createPackage(t, host, donation, nil)
	require.Equal(t, uint64(0), pkgID)

	require.Equal(t, int64(0), host.BalanceOf(donor, sdk.AssetHive))
	require.Equal(t, donation, host.BalanceOf("contract:aidtestcontract", sdk.AssetHive))

	view := getPackage(t, pkgID)
	require.Equal(t, donor, view.Donor)
	require.Equal(t, coordinator, view.Coordinator)
	require.Nil(t, view.Recipient)
	require.Equal(t, uint8(0), view.Status)
	require.Equal(t, "created", view.StatusLabel)
	require.Equal(t, donation, view.DonationAmount)
	require.True(t, view.IsLocked)
	require.False(t, view.CoordinatorApproved)
	require.False(t, view.RecipientApproved)
	require.Equal(t, uint64(1), view.Version)
}

func TestPackageCreateWithVerifiedProfile(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, profileID)

	pkgID := createPackage(t, host, donation, &profileID)
	view := getPackage(t, pkgID)
	require.NotNil(t, view.Recipient)
	require.Equal(t, recipient, *view.Recipient)
	require.NotNil(t, view.RecipientProfileID)
	require.Equal(t, profileID, *view.RecipientProfileID)
}

func TestPackageCreateValidation(t *testing.T) {
	host := initRegistry(t)
	host.SetSender(donor)

	payload := func(amount int64) *string {
		return strptr(fmt.Sprintf(`{"description":"blankets","location":"Sector 7","coordinator":%q,"amount":%d}`, coordinator, amount))
	}

	expectRevert(t, "invalid_payload", func() {
		contract.PackageCreate(strptr(`{"description":"","location":"x","coordinator":"hive:coord","amount":1}`))
	})
	expectRevert(t, "invalid_payload", func() {
		contract.PackageCreate(strptr(`{"description":"a","location":"x","coordinator":"nowhere","amount":1}`))
	})
	expectRevert(t, "invalid_amount", func() {
		contract.PackageCreate(payload(0))
	})
	expectRevert(t, "invalid_amount", func() {
		contract.PackageCreate(payload(-5))
	})

	// no transfer.allow intent attached
	expectRevert(t, "invalid_amount", func() {
		contract.PackageCreate(payload(donation))
	})

	host.AllowTransfer("5", sdk.AssetHbd)
	expectRevert(t, "invalid_payload", func() {
		contract.PackageCreate(payload(donation))
	})

	host.AllowTransfer("1", sdk.AssetHive)
	expectRevert(t, "invalid_amount", func() {
		contract.PackageCreate(payload(donation))
	})

	// limit fits but the donor never funded the account
	host.AllowTransfer("5", sdk.AssetHive)
	expectRevert(t, "insufficient_balance", func() {
		contract.PackageCreate(payload(donation))
	})
}

func TestPackageCreateRejectsUnverifiedProfile(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)

	host.Deposit(donor, donation, sdk.AssetHive)
	host.SetSender(donor)
	host.AllowTransfer("5", sdk.AssetHive)
	expectRevert(t, "recipient_not_verified", func() {
		contract.PackageCreate(strptr(fmt.Sprintf(
			`{"description":"blankets","location":"Sector 7","coordinator":%q,"recipient_profile_id":%d,"amount":%d}`,
			coordinator, profileID, donation)))
	})

	// the draw never happened
	require.Equal(t, donation, host.BalanceOf(donor, sdk.AssetHive))
}

func TestPackageAssignRecipient(t *testing.T) {
	host := initRegistry(t)
	pkgID := createPackage(t, host, donation, nil)
	profileID := registerRecipient(t, host, recipient)

	host.SetSender("hive:rando")
	expectRevert(t, "recipient_not_verified", func() {
		contract.PackageAssignRecipient(strptr(fmt.Sprintf(`{"package_id":%d,"profile_id":%d}`, pkgID, profileID)))
	})

	verifyRecipient(t, host, profileID)
	host.SetSender("hive:rando")
	result := contract.PackageAssignRecipient(strptr(fmt.Sprintf(`{"package_id":%d,"profile_id":%d}`, pkgID, profileID)))
	require.Equal(t, "recipient assigned", *result)

	view := getPackage(t, pkgID)
	require.NotNil(t, view.Recipient)
	require.Equal(t, recipient, *view.Recipient)
	require.Equal(t, uint64(2), view.Version)

	// the recipient seat is write-once
	host.NextTx()
	expectRevert(t, "already_assigned", func() {
		contract.PackageAssignRecipient(strptr(fmt.Sprintf(`{"package_id":%d,"profile_id":%d}`, pkgID, profileID)))
	})

	expectRevert(t, "not_found", func() {
		contract.PackageAssignRecipient(strptr(`{"package_id":99,"profile_id":0}`))
	})
}

func TestPackageApproveCoordinator(t *testing.T) {
	host := initRegistry(t)
	pkgID := createPackage(t, host, donation, nil)

	host.SetSender("hive:rando")
	expectRevert(t, "unauthorized", func() {
		contract.PackageApproveCoordinator(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})

	host.SetSender(coordinator)
	contract.PackageApproveCoordinator(strptr(fmt.Sprintf(`{"package_id":%d,"note":"handover at noon"}`, pkgID)))

	view := getPackage(t, pkgID)
	require.True(t, view.CoordinatorApproved)
	require.NotNil(t, view.DeliveryNote)
	require.Equal(t, "handover at noon", *view.DeliveryNote)

	host.NextTx()
	expectRevert(t, "already_approved", func() {
		contract.PackageApproveCoordinator(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})
}

func TestPackageApproveRecipient(t *testing.T) {
	host := initRegistry(t)
	pkgID := createPackage(t, host, donation, nil)

	// nobody is bound yet, even the coordinator cannot take the seat
	host.SetSender(coordinator)
	expectRevert(t, "unauthorized", func() {
		contract.PackageApproveRecipient(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})

	profileID := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, profileID)
	host.SetSender(recipient)
	contract.PackageAssignRecipient(strptr(fmt.Sprintf(`{"package_id":%d,"profile_id":%d}`, pkgID, profileID)))

	host.SetSender("hive:rando")
	expectRevert(t, "unauthorized", func() {
		contract.PackageApproveRecipient(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})

	host.SetSender(recipient)
	contract.PackageApproveRecipient(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))

	view := getPackage(t, pkgID)
	require.True(t, view.RecipientApproved)

	host.NextTx()
	expectRevert(t, "already_approved", func() {
		contract.PackageApproveRecipient(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})
}

func TestPackageMarkInTransit(t *testing.T) {
	host := initRegistry(t)
	pkgID := createPackage(t, host, donation, nil)

	host.SetSender("hive:rando")
	expectRevert(t, "unauthorized", func() {
		contract.PackageMarkInTransit(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})

	host.SetSender(coordinator)
	contract.PackageMarkInTransit(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))

	view := getPackage(t, pkgID)
	require.Equal(t, "in_transit", view.StatusLabel)
	require.True(t, view.IsLocked)

	host.NextTx()
	expectRevert(t, "not_ready", func() {
		contract.PackageMarkInTransit(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})
}

// approveBoth walks a bound package through both approvals.
func approveBoth(t *testing.T, host *sdk.MockHost, pkgID uint64) {
	t.Helper()
	host.SetSender(coordinator)
	contract.PackageApproveCoordinator(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	host.SetSender(recipient)
	contract.PackageApproveRecipient(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
}

func TestPackageMarkDeliveredHappyPath(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, profileID)
	pkgID := createPackage(t, host, donation, &profileID)

	approveBoth(t, host, pkgID)
	host.SetSender(coordinator)
	contract.PackageMarkInTransit(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))

	// one epoch later the escrow may be released
	host.SetTimestamp("2025-09-04T00:00:00")
	result := contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/1"}`, pkgID)))
	require.Equal(t, "package delivered", *result)

	require.Equal(t, donation, host.BalanceOf(coordinator, sdk.AssetHive))
	require.Equal(t, int64(0), host.BalanceOf("contract:aidtestcontract", sdk.AssetHive))

	view := getPackage(t, pkgID)
	require.Equal(t, "delivered", view.StatusLabel)
	require.False(t, view.IsLocked)
	require.Equal(t, donation, view.DonationAmount)
	require.Equal(t, "https://proof.example/1", view.ProofURL)

	// the bound profile's delivery counter moved in the same transition
	raw := contract.RecipientGet(strptr(fmt.Sprintf("%d", profileID)))
	var profile contract.RecipientProfileView
	require.NoError(t, json.Unmarshal([]byte(*raw), &profile))
	require.Equal(t, uint64(1), profile.ReceivedPackagesCount)

	// delivered is terminal
	host.NextTx()
	expectRevert(t, "not_ready", func() {
		contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/1"}`, pkgID)))
	})
	expectRevert(t, "not_ready", func() {
		contract.PackageMarkInTransit(strptr(fmt.Sprintf(`{"package_id":%d}`, pkgID)))
	})
}

func TestPackageMarkDeliveredSkippingTransit(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, profileID)
	pkgID := createPackage(t, host, donation, &profileID)
	approveBoth(t, host, pkgID)

	host.SetSender(coordinator)
	host.SetTimestamp("2025-09-04T00:00:00")
	contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/2"}`, pkgID)))
	require.Equal(t, "delivered", getPackage(t, pkgID).StatusLabel)
}

func TestPackageMarkDeliveredGates(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, profileID)
	pkgID := createPackage(t, host, donation, &profileID)

	deliver := func(proof string) {
		contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":%q}`, pkgID, proof)))
	}

	host.SetSender("hive:rando")
	expectRevert(t, "unauthorized", func() { deliver("https://proof.example/3") })

	// both approvals are required before anything else matters
	host.SetSender(coordinator)
	expectRevert(t, "not_ready", func() { deliver("https://proof.example/3") })

	approveBoth(t, host, pkgID)
	host.SetSender(coordinator)
	expectRevert(t, "missing_proof", func() { deliver("") })

	// still inside the creation epoch
	expectRevert(t, "too_early", func() { deliver("https://proof.example/3") })

	// nothing moved and the escrow is intact
	view := getPackage(t, pkgID)
	require.Equal(t, "created", view.StatusLabel)
	require.True(t, view.IsLocked)
	require.Equal(t, donation, host.BalanceOf("contract:aidtestcontract", sdk.AssetHive))
	require.Equal(t, int64(0), host.BalanceOf(coordinator, sdk.AssetHive))

	host.SetTimestamp("2025-09-04T00:00:00")
	expectRevert(t, "version_conflict", func() {
		contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/3","expect_version":1}`, pkgID)))
	})

	contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/3","expect_version":%d}`, pkgID, view.Version)))
	require.Equal(t, "delivered", getPackage(t, pkgID).StatusLabel)
}

func TestPackageGetNotFound(t *testing.T) {
	initRegistry(t)
	expectRevert(t, "not_found", func() {
		contract.PackageGet(strptr("123"))
	})
	expectRevert(t, "invalid_payload", func() {
		contract.PackageGet(nil)
	})
}

func TestPackagesList(t *testing.T) {
	host := initRegistry(t)
	createPackage(t, host, donation, nil)
	createPackage(t, host, 2_000_000_000, nil)

	raw := contract.PackagesList(nil)
	var list contract.PackageListView
	require.NoError(t, json.Unmarshal([]byte(*raw), &list))
	require.Len(t, list.Packages, 2)
	require.Equal(t, uint64(0), list.Packages[0].ID)
	require.Equal(t, uint64(1), list.Packages[1].ID)
	require.Equal(t, int64(2_000_000_000), list.Packages[1].DonationAmount)
}
