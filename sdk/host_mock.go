package sdk

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MockHost is the in-memory stand-in for the chain runtime. It keeps kv state,
// account balances and the call environment in plain maps so contract logic can
// run in-process. Reverts surface as a panic with *RevertError.
type MockHost struct {
	State    map[string]string
	Logs     []string
	balances map[string]int64

	contractID  string
	sender      string
	timestamp   string
	blockHeight uint64
	intents     []Intent
	txSeq       int
}

// NewMockHost seeds a fresh environment with sane defaults for tests.
func NewMockHost() *MockHost {
	return &MockHost{
		State:       map[string]string{},
		balances:    map[string]int64{},
		contractID:  "aidtestcontract",
		sender:      "hive:someone",
		timestamp:   "2025-09-03T00:00:00",
		blockHeight: 1,
	}
}

// UseMock installs a fresh mock host and hands it back for test control.
func UseMock() *MockHost {
	h := NewMockHost()
	active = h
	return h
}

// ContractAddress returns the account the contract escrows funds under.
func (h *MockHost) ContractAddress() Address {
	return Address("contract:" + h.contractID)
}

// SetSender switches the calling account and starts a new transaction.
func (h *MockHost) SetSender(addr string) {
	h.sender = addr
	h.txSeq++
}

// SetTimestamp moves the block clock, also starting a new transaction.
func (h *MockHost) SetTimestamp(ts string) {
	h.timestamp = ts
	h.txSeq++
}

// AllowTransfer attaches a transfer.allow intent for the next call. The limit
// is given in display units, matching what wallets put on the wire.
func (h *MockHost) AllowTransfer(limit string, token Asset) {
	h.intents = []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}}
	h.txSeq++
}

// ClearIntents drops any pending intents and bumps the transaction.
func (h *MockHost) ClearIntents() {
	h.intents = nil
	h.txSeq++
}

// NextTx forces a fresh tx.id without touching anything else.
func (h *MockHost) NextTx() {
	h.txSeq++
}

// Deposit credits an account so draw/transfer flows have funds to move.
func (h *MockHost) Deposit(addr string, amount int64, asset Asset) {
	h.balances[addr+"/"+asset.String()] += amount
}

// BalanceOf inspects any account balance, contract escrow included.
func (h *MockHost) BalanceOf(addr string, asset Asset) int64 {
	return h.balances[addr+"/"+asset.String()]
}

func (h *MockHost) Log(msg string) {
	h.Logs = append(h.Logs, msg)
}

func (h *MockHost) StateSet(key string, value string) {
	h.State[key] = value
}

func (h *MockHost) StateGet(key string) *string {
	v, ok := h.State[key]
	if !ok {
		return nil
	}
	return &v
}

func (h *MockHost) StateDelete(key string) {
	delete(h.State, key)
}

func (h *MockHost) EnvJSON() string {
	intents := h.intents
	if intents == nil {
		intents = []Intent{}
	}
	env := map[string]interface{}{
		"contract.id":                h.contractID,
		"tx.id":                      fmt.Sprintf("mock-tx-%d", h.txSeq),
		"block.height":               h.blockHeight,
		"block.timestamp":            h.timestamp,
		"intents":                    intents,
		"msg.sender":                 h.sender,
		"msg.required_auths":         []string{h.sender},
		"msg.required_posting_auths": []string{},
	}
	b, err := json.Marshal(env)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (h *MockHost) EnvKey(key string) *string {
	var v string
	switch key {
	case "contract.id":
		v = h.contractID
	case "tx.id":
		v = fmt.Sprintf("mock-tx-%d", h.txSeq)
	case "block.height":
		v = strconv.FormatUint(h.blockHeight, 10)
	case "block.timestamp":
		v = h.timestamp
	case "msg.sender":
		v = h.sender
	default:
		return nil
	}
	return &v
}

func (h *MockHost) Balance(address Address, asset Asset) int64 {
	return h.balances[address.String()+"/"+asset.String()]
}

func (h *MockHost) Draw(amount int64, asset Asset) {
	from := h.sender + "/" + asset.String()
	if h.balances[from] < amount {
		h.Abort("draw exceeds balance")
	}
	h.balances[from] -= amount
	h.balances[h.ContractAddress().String()+"/"+asset.String()] += amount
}

func (h *MockHost) Transfer(to Address, amount int64, asset Asset) {
	from := h.ContractAddress().String() + "/" + asset.String()
	if h.balances[from] < amount {
		h.Abort("transfer exceeds contract balance")
	}
	h.balances[from] -= amount
	h.balances[to.String()+"/"+asset.String()] += amount
}

func (h *MockHost) Abort(msg string) {
	panic(&RevertError{Symbol: "abort", Msg: msg})
}

func (h *MockHost) Revert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}
