package contract_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/contract"
	"aidchain/sdk"
)

const (
	admin       = "hive:admin"
	donor       = "hive:donor"
	coordinator = "hive:coord"
	recipient   = "hive:recipient"
)

// initRegistry spins up a fresh mock chain and initializes the registry with
// the admin seat, the baseline every other test builds on.
func initRegistry(t *testing.T) *sdk.MockHost {
	t.Helper()
	host := sdk.UseMock()
	host.SetSender(admin)
	contract.RegistryInit(nil)
	return host
}

// expectRevert runs fn and requires it to revert with the given symbol.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q, call succeeded", symbol)
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok, "expected *sdk.RevertError, got %v", r)
		require.Equal(t, symbol, revertErr.Symbol, "revert message: %s", revertErr.Msg)
	}()
	fn()
}

// parseID extracts the numeric id out of an "id:N" entrypoint result.
func parseID(t *testing.T, result *string) uint64 {
	t.Helper()
	require.NotNil(t, result)
	require.True(t, strings.HasPrefix(*result, "id:"), "unexpected result %q", *result)
	id, err := strconv.ParseUint(strings.TrimPrefix(*result, "id:"), 10, 64)
	require.NoError(t, err)
	return id
}

func strptr(s string) *string { return &s }

// registerRecipient enrolls owner with a throwaway profile and returns its id.
func registerRecipient(t *testing.T, host *sdk.MockHost, owner string) uint64 {
	t.Helper()
	host.SetSender(owner)
	payload := fmt.Sprintf(`{"name":"Profile of %s","location":"Sector 7","need_category":"food"}`, owner)
	return parseID(t, contract.RecipientRegister(strptr(payload)))
}

// verifyRecipient flips the profile to verified through the admin seat.
func verifyRecipient(t *testing.T, host *sdk.MockHost, profileID uint64) {
	t.Helper()
	host.SetSender(admin)
	contract.RecipientVerify(strptr(fmt.Sprintf(`{"profile_id":%d}`, profileID)))
}

// displayUnits renders a base-unit amount as the display string wallets put
// into transfer.allow intents.
func displayUnits(amount int64) string {
	return strconv.FormatFloat(float64(amount)/1_000_000_000, 'f', -1, 64)
}

// createPackage funds the donor, attaches a matching transfer.allow intent and
// escrows a fresh package. profileID binds a recipient directly when non-nil.
func createPackage(t *testing.T, host *sdk.MockHost, amount int64, profileID *uint64) uint64 {
	t.Helper()
	host.Deposit(donor, amount, sdk.AssetHive)
	host.SetSender(donor)
	host.AllowTransfer(displayUnits(amount), sdk.AssetHive)

	payload := fmt.Sprintf(`{"description":"blankets","location":"Sector 7","coordinator":%q,"amount":%d}`, coordinator, amount)
	if profileID != nil {
		payload = fmt.Sprintf(`{"description":"blankets","location":"Sector 7","coordinator":%q,"recipient_profile_id":%d,"amount":%d}`, coordinator, *profileID, amount)
	}
	id := parseID(t, contract.PackageCreate(strptr(payload)))
	host.ClearIntents()
	return id
}

func uint64ptr(v uint64) *uint64 { return &v }
