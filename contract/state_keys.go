package contract

import "aidchain/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packageKey builds the storage key string for an aid package by ID.
func packageKey(id uint64) string {
	var buf [9]byte
	buf[0] = kPackageMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// profileKey uses prefix 0x02 so profiles sit next to packages but not collide.
func profileKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProfileMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// profileOwnerKey maps an owner address to its profile id, one profile per address.
func profileOwnerKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kProfileOwner)
	buf = append(buf, addrStr...)
	return string(buf)
}

// verifierKey flags a verifier address in its own prefix.
func verifierKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kVerifier)
	buf = append(buf, addrStr...)
	return string(buf)
}
