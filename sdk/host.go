package sdk

// Host is the boundary towards the ledger runtime. Wasm builds bind it to the
// chain host imports; everything else runs against the in-memory mock so the
// contract can be exercised with plain `go test`.
type Host interface {
	Log(msg string)
	StateSet(key string, value string)
	StateGet(key string) *string
	StateDelete(key string)
	EnvJSON() string
	EnvKey(key string) *string
	Balance(address Address, asset Asset) int64
	Draw(amount int64, asset Asset)
	Transfer(to Address, amount int64, asset Asset)
	Abort(msg string)
	Revert(msg string, symbol string)
}

var active Host

// RevertError carries the short machine symbol next to the human message.
// The mock host surfaces reverts as a panic with this type so tests can
// assert on the symbol the chain would report.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}
