//go:build !wasm

package sdk

// Non-wasm builds (tests, local tooling) start out on the mock host.
func init() {
	active = NewMockHost()
}
