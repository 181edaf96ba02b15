package sdk

import (
	"encoding/json"
)

// Log writes a message to the chain console so we can trace contract steps.
// Example payload: sdk.Log("hello ledger")
func Log(s string) {
	active.Log(s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("bad intent")
func Abort(msg string) {
	active.Abort(msg)
	panic(&RevertError{Symbol: "abort", Msg: msg})
}

// Revert throws a named error back to the caller with a short symbol.
// Example payload: sdk.Revert("bad input", "invalid_payload")
func Revert(msg string, symbol string) {
	active.Revert(msg, symbol)
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	active.StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return active.StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	active.StateDelete(key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := active.EnvJSON()
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range raw {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range raw {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender := ""
	if raw, ok := envMap["msg.sender"].(string); ok {
		sender = raw
	}
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	return env
}

// GetEnvStr returns the raw JSON environment string without parsing.
// Example payload: sdk.GetEnvStr()
func GetEnvStr() string {
	return active.EnvJSON()
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return active.EnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	return active.Balance(address, asset)
}

// HiveDraw pulls tokens from the caller into the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	active.Draw(amount, asset)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) {
	active.Transfer(to, amount, asset)
}
