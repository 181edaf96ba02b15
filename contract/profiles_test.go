package contract_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/contract"
)

func TestRecipientRegisterAndGet(t *testing.T) {
	host := initRegistry(t)

	profileID := registerRecipient(t, host, recipient)
	require.Equal(t, uint64(0), profileID)

	raw := contract.RecipientGet(strptr("0"))
	var view contract.RecipientProfileView
	require.NoError(t, json.Unmarshal([]byte(*raw), &view))

	require.Equal(t, uint64(0), view.ID)
	require.Equal(t, recipient, view.Owner)
	require.Equal(t, "Profile of "+recipient, view.Name)
	require.Equal(t, "Sector 7", view.Location)
	require.Equal(t, "food", view.NeedCategory)
	require.False(t, view.IsVerified)
	require.Equal(t, uint64(0), view.ReceivedPackagesCount)
	require.Equal(t, uint64(1), view.Version)
}

func TestRecipientRegisterOnePerAddress(t *testing.T) {
	host := initRegistry(t)
	registerRecipient(t, host, recipient)

	host.NextTx()
	expectRevert(t, "already_registered", func() {
		contract.RecipientRegister(strptr(`{"name":"again","location":"x","need_category":"y"}`))
	})

	// other addresses still enroll and ids keep counting
	id := registerRecipient(t, host, "hive:neighbor")
	require.Equal(t, uint64(1), id)
}

func TestRecipientRegisterValidation(t *testing.T) {
	host := initRegistry(t)
	host.SetSender(recipient)

	expectRevert(t, "invalid_payload", func() {
		contract.RecipientRegister(nil)
	})
	expectRevert(t, "invalid_payload", func() {
		contract.RecipientRegister(strptr(`{not json`))
	})
	expectRevert(t, "invalid_payload", func() {
		contract.RecipientRegister(strptr(`{"name":"","location":"x","need_category":"y"}`))
	})
	expectRevert(t, "invalid_payload", func() {
		contract.RecipientRegister(strptr(`{"name":"a","location":"x","need_category":""}`))
	})
}

func TestRecipientVerify(t *testing.T) {
	host := initRegistry(t)
	profileID := registerRecipient(t, host, recipient)

	host.SetSender("hive:rando")
	expectRevert(t, "unauthorized", func() {
		contract.RecipientVerify(strptr(`{"profile_id":0}`))
	})

	verifyRecipient(t, host, profileID)

	raw := contract.RecipientGet(strptr("0"))
	var view contract.RecipientProfileView
	require.NoError(t, json.Unmarshal([]byte(*raw), &view))
	require.True(t, view.IsVerified)
	require.Equal(t, uint64(2), view.Version)

	// verification is monotonic, repeats revert instead of no-op
	host.NextTx()
	expectRevert(t, "already_verified", func() {
		contract.RecipientVerify(strptr(`{"profile_id":0}`))
	})
}

func TestRecipientVerifyVersionPrecondition(t *testing.T) {
	host := initRegistry(t)
	registerRecipient(t, host, recipient)

	host.SetSender(admin)
	expectRevert(t, "version_conflict", func() {
		contract.RecipientVerify(strptr(`{"profile_id":0,"expect_version":7}`))
	})

	// pinning the live version goes through
	contract.RecipientVerify(strptr(`{"profile_id":0,"expect_version":1}`))
}

func TestRecipientGetNotFound(t *testing.T) {
	initRegistry(t)
	expectRevert(t, "not_found", func() {
		contract.RecipientGet(strptr("42"))
	})
	expectRevert(t, "invalid_payload", func() {
		contract.RecipientGet(strptr("not-a-number"))
	})
}

func TestRecipientsList(t *testing.T) {
	host := initRegistry(t)
	registerRecipient(t, host, recipient)
	registerRecipient(t, host, "hive:neighbor")

	raw := contract.RecipientsList(nil)
	var list contract.RecipientListView
	require.NoError(t, json.Unmarshal([]byte(*raw), &list))
	require.Len(t, list.Recipients, 2)
	require.Equal(t, recipient, list.Recipients[0].Owner)
	require.Equal(t, "hive:neighbor", list.Recipients[1].Owner)
}
