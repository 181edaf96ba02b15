package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aidchain/sdk"
)

func TestMockEnvRoundTrip(t *testing.T) {
	host := sdk.UseMock()
	host.SetSender("hive:alice")
	host.SetTimestamp("2025-09-03T00:00:00")

	env := sdk.GetEnv()
	require.Equal(t, sdk.Address("hive:alice"), env.Sender.Address)
	require.Equal(t, "2025-09-03T00:00:00", env.Timestamp)
	require.NotEmpty(t, env.TxId)

	host.NextTx()
	require.NotEqual(t, env.TxId, sdk.GetEnv().TxId)
}

func TestMockDrawAndTransfer(t *testing.T) {
	host := sdk.UseMock()
	host.SetSender("hive:alice")
	host.Deposit("hive:alice", 1000, sdk.AssetHive)

	sdk.HiveDraw(600, sdk.AssetHive)
	require.Equal(t, int64(400), host.BalanceOf("hive:alice", sdk.AssetHive))
	require.Equal(t, int64(600), host.BalanceOf("contract:aidtestcontract", sdk.AssetHive))

	sdk.HiveTransfer("hive:bob", 250, sdk.AssetHive)
	require.Equal(t, int64(350), host.BalanceOf("contract:aidtestcontract", sdk.AssetHive))
	require.Equal(t, int64(250), host.BalanceOf("hive:bob", sdk.AssetHive))
}

func TestMockDrawOverdraftAborts(t *testing.T) {
	host := sdk.UseMock()
	host.SetSender("hive:alice")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok)
		require.Equal(t, "abort", revertErr.Symbol)
	}()
	sdk.HiveDraw(1, sdk.AssetHive)
}

func TestRevertCarriesSymbol(t *testing.T) {
	sdk.UseMock()

	defer func() {
		r := recover()
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok)
		require.Equal(t, "not_found", revertErr.Symbol)
		require.Equal(t, "no such thing", revertErr.Msg)
	}()
	sdk.Revert("no such thing", "not_found")
}
