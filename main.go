////////////////////////////////////////////////////////////////////////////////
// Aidchain: escrowed disaster-aid donations with dual-approval delivery
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose; the contract is driven entirely through the
// exported entrypoints (see export_wasm.go).
func main() {

}
