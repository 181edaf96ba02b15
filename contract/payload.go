package contract

import (
	"strconv"
	"strings"

	tinyjson "github.com/CosmWasm/tinyjson"
)

// decodePayload unpacks a JSON call payload into its typed args struct.
// Anything undecodable reverts invalid_payload before state is touched.
func decodePayload(payload *string, out tinyjson.Unmarshaler, what string) {
	if payload == nil {
		fail(errInvalidPayload, "%s payload missing", what)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		fail(errInvalidPayload, "%s payload missing", what)
	}
	if err := tinyjson.Unmarshal([]byte(raw), out); err != nil {
		fail(errInvalidPayload, "cannot decode %s payload: %v", what, err)
	}
}

// decodeIDPayload reads the bare-digits payload the query entrypoints take.
// Wallets sometimes wrap it in quotes, so those get stripped first.
func decodeIDPayload(payload *string, what string) uint64 {
	if payload == nil {
		fail(errInvalidPayload, "%s payload missing", what)
	}
	raw := strings.TrimSpace(*payload)
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	if raw == "" {
		fail(errInvalidPayload, "%s payload missing", what)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fail(errInvalidPayload, "invalid %s id", what)
	}
	return id
}

// requireText enforces non-empty trimmed text within the field limit and
// returns the cleaned value.
func requireText(val string, field string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		fail(errInvalidPayload, "%s is required", field)
	}
	if len(val) > MaxTextLength {
		fail(errInvalidPayload, "%s exceeds %d characters", field, MaxTextLength)
	}
	return val
}

// optionalText trims and bounds a field that may stay empty.
func optionalText(val string, field string) string {
	val = strings.TrimSpace(val)
	if len(val) > MaxTextLength {
		fail(errInvalidPayload, "%s exceeds %d characters", field, MaxTextLength)
	}
	return val
}
