package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/contract"
	"aidchain/sdk"
)

func TestAidPackageCodecRoundTrip(t *testing.T) {
	recipientAddr := sdk.Address("hive:recipient")
	profileID := uint64(7)
	locked := contract.Amount(5_000_000_000)
	note := "handover at noon"

	full := &contract.AidPackage{
		ID:                  3,
		Donor:               "hive:donor",
		Coordinator:         "hive:coord",
		Recipient:           &recipientAddr,
		RecipientProfileID:  &profileID,
		Description:         "blankets",
		Location:            "Sector 7",
		Status:              contract.StatusInTransit,
		DonationAmount:      locked,
		LockedDonation:      &locked,
		CoordinatorApproved: true,
		RecipientApproved:   true,
		DeliveryNote:        &note,
		ProofURL:            "https://proof.example/1",
		CreatedAtEpoch:      20334,
		UpdatedAtEpoch:      20335,
		Tx:                  "tx-abc",
		Version:             4,
	}
	decoded, err := contract.DecodeAidPackage(contract.EncodeAidPackage(full))
	require.NoError(t, err)
	require.Equal(t, full, decoded)
}

func TestAidPackageCodecNilOptionals(t *testing.T) {
	minimal := &contract.AidPackage{
		ID:             0,
		Donor:          "hive:donor",
		Coordinator:    "hive:coord",
		Description:    "water",
		Location:       "north camp",
		Status:         contract.StatusCreated,
		DonationAmount: contract.FloatToAmount(1.5),
		CreatedAtEpoch: 20334,
		UpdatedAtEpoch: 20334,
		Tx:             "tx-xyz",
		Version:        1,
	}
	decoded, err := contract.DecodeAidPackage(contract.EncodeAidPackage(minimal))
	require.NoError(t, err)
	require.Equal(t, minimal, decoded)
	require.Nil(t, decoded.Recipient)
	require.Nil(t, decoded.LockedDonation)
	require.False(t, decoded.IsLocked())
}

func TestRecipientProfileCodecRoundTrip(t *testing.T) {
	profile := &contract.RecipientProfile{
		ID:                    2,
		Owner:                 "hive:recipient",
		Name:                  "North Camp Clinic",
		Location:              "north camp",
		NeedCategory:          "medicine",
		IsVerified:            true,
		RegisteredAtEpoch:     20330,
		ReceivedPackagesCount: 3,
		Tx:                    "tx-abc",
		Version:               5,
	}
	decoded, err := contract.DecodeRecipientProfile(contract.EncodeRecipientProfile(profile))
	require.NoError(t, err)
	require.Equal(t, profile, decoded)
}

func TestCodecRejectsCorruptBytes(t *testing.T) {
	pkg := &contract.AidPackage{
		Donor:          "hive:donor",
		Coordinator:    "hive:coord",
		Description:    "water",
		Location:       "north camp",
		DonationAmount: 1,
		Tx:             "tx",
		Version:        1,
	}
	encoded := contract.EncodeAidPackage(pkg)

	_, err := contract.DecodeAidPackage(encoded[:len(encoded)/2])
	require.Error(t, err)

	_, err = contract.DecodeAidPackage(append(encoded, 0x00))
	require.Error(t, err)

	_, err = contract.DecodeAidPackage([]byte("garbage"))
	require.Error(t, err)

	_, err = contract.DecodeRecipientProfile(nil)
	require.Error(t, err)
}
