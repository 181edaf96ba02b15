package contract_test

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/contract"
)

// rawPackageKey rebuilds the storage key for an aid package record so tests
// can corrupt state the way a buggy migration would.
func rawPackageKey(id uint64) string {
	buf := make([]byte, 9)
	buf[0] = 0x01
	binary.LittleEndian.PutUint64(buf[1:], id)
	return string(buf)
}

func TestRegistryStats(t *testing.T) {
	host := initRegistry(t)

	host.SetSender(admin)
	contract.RegistryAddVerifier(strptr(`{"address":"hive:vera"}`))

	verified := registerRecipient(t, host, recipient)
	verifyRecipient(t, host, verified)
	registerRecipient(t, host, "hive:pending")

	pkgID := createPackage(t, host, donation, &verified)
	createPackage(t, host, 2_000_000_000, nil)

	approveBoth(t, host, pkgID)
	host.SetSender(coordinator)
	host.SetTimestamp("2025-09-04T00:00:00")
	contract.PackageMarkDelivered(strptr(fmt.Sprintf(`{"package_id":%d,"proof_url":"https://proof.example/1"}`, pkgID)))

	raw := contract.RegistryStats(nil)
	var stats contract.RegistryStatsView
	require.NoError(t, json.Unmarshal([]byte(*raw), &stats))

	require.Equal(t, uint64(2), stats.TotalRecipients)
	require.Equal(t, uint64(1), stats.VerifiedRecipients)
	require.Equal(t, uint64(1), stats.PendingRecipients)
	require.Equal(t, uint64(2), stats.TotalPackages)
	require.Equal(t, uint64(1), stats.DeliveredPackages)
	// donation totals include released escrows via the immutable amount
	require.Equal(t, donation+2_000_000_000, stats.TotalDonations)
	require.Equal(t, uint64(1), stats.TotalVerifiers)
	require.Equal(t, uint64(0), stats.SkippedRecords)
}

func TestRegistryStatsSkipsMalformedRecords(t *testing.T) {
	host := initRegistry(t)
	createPackage(t, host, donation, nil)
	badID := createPackage(t, host, 2_000_000_000, nil)

	host.State[rawPackageKey(badID)] = "garbage"

	raw := contract.RegistryStats(nil)
	var stats contract.RegistryStatsView
	require.NoError(t, json.Unmarshal([]byte(*raw), &stats))
	require.Equal(t, uint64(1), stats.TotalPackages)
	require.Equal(t, donation, stats.TotalDonations)
	require.Equal(t, uint64(1), stats.SkippedRecords)

	// the list fold hides the bad record instead of failing
	var list contract.PackageListView
	require.NoError(t, json.Unmarshal([]byte(*contract.PackagesList(nil)), &list))
	require.Len(t, list.Packages, 1)

	// the single-object read surfaces it loudly
	expectRevert(t, "malformed_record", func() {
		contract.PackageGet(strptr(fmt.Sprintf("%d", badID)))
	})
}

func TestRegistryIndex(t *testing.T) {
	host := initRegistry(t)
	registerRecipient(t, host, recipient)
	createPackage(t, host, donation, nil)
	createPackage(t, host, donation, nil)

	raw := contract.RegistryIndex(nil)
	var index contract.RegistryIndexView
	require.NoError(t, json.Unmarshal([]byte(*raw), &index))
	require.Equal(t, []uint64{0, 1}, index.PackageIDs)
	require.Equal(t, []uint64{0}, index.RecipientIDs)
	require.Equal(t, uint64(0), index.TotalVerifiers)
}
