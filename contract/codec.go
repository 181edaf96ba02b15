package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"

	"aidchain/sdk"
)

// Deterministic binary codec for stored records. Field order is the contract:
// every writer below has a mirror reader and both must stay in sync.

// AddressFromString normalizes address text coming from payloads or storage.
func AddressFromString(s string) sdk.Address {
	return sdk.Address(strings.TrimSpace(s))
}

// AddressToString canonicalizes the address for keys and encoded blobs.
func AddressToString(a sdk.Address) string {
	return a.String()
}

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeOptionalString writes a presence bit so decoders know if data follows.
func (w *binWriter) writeOptionalString(ptr *string) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeString(*ptr)
}

// writeOptionalUint64 does the same dance for optional ids.
func (w *binWriter) writeOptionalUint64(ptr *uint64) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeUint64(*ptr)
}

// writeOptionalAmount flags presence first so nil stays distinguishable from zero.
func (w *binWriter) writeOptionalAmount(ptr *Amount) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeAmount(*ptr)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeOptionalAddress mirrors writeOptionalString for unbound recipients.
func (w *binWriter) writeOptionalAddress(ptr *sdk.Address) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeAddress(*ptr)
}

// EncodeAidPackage serializes the entire AidPackage into deterministic bytes for storage.
// Example payload: EncodeAidPackage(&AidPackage{ID: 7, DonationAmount: FloatToAmount(2.5)})
func EncodeAidPackage(pkg *AidPackage) []byte {
	w := newWriter()
	w.writeUint64(pkg.ID)
	w.writeAddress(pkg.Donor)
	w.writeAddress(pkg.Coordinator)
	w.writeOptionalAddress(pkg.Recipient)
	w.writeOptionalUint64(pkg.RecipientProfileID)
	w.writeString(pkg.Description)
	w.writeString(pkg.Location)
	w.buf.WriteByte(byte(pkg.Status))
	w.writeAmount(pkg.DonationAmount)
	w.writeOptionalAmount(pkg.LockedDonation)
	w.writeBool(pkg.CoordinatorApproved)
	w.writeBool(pkg.RecipientApproved)
	w.writeOptionalString(pkg.DeliveryNote)
	w.writeString(pkg.ProofURL)
	w.writeUint64(pkg.CreatedAtEpoch)
	w.writeUint64(pkg.UpdatedAtEpoch)
	w.writeString(pkg.Tx)
	w.writeUint64(pkg.Version)
	return w.bytes()
}

// EncodeRecipientProfile packs a RecipientProfile into bytes so storage stays lean.
// Example payload: EncodeRecipientProfile(&RecipientProfile{ID: 3, Name: "family shelter"})
func EncodeRecipientProfile(p *RecipientProfile) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Owner)
	w.writeString(p.Name)
	w.writeString(p.Location)
	w.writeString(p.NeedCategory)
	w.writeBool(p.IsVerified)
	w.writeUint64(p.RegisteredAtEpoch)
	w.writeUint64(p.ReceivedPackagesCount)
	w.writeString(p.Tx)
	w.writeUint64(p.Version)
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount using the int64 path so scaling stays synced.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readOptionalString checks the presence byte, then returns pointer so callers know nil.
func (r *binReader) readOptionalString() (*string, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	str, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &str, nil
}

// readOptionalUint64 is used for optional profile bindings and similar numbers.
func (r *binReader) readOptionalUint64() (*uint64, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	val, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// readOptionalAmount mirrors readOptionalUint64 for escrow locks.
func (r *binReader) readOptionalAmount() (*Amount, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	val, err := r.readAmount()
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// readAddress rehydrates a stored address string.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return AddressFromString(s), nil
}

// readOptionalAddress mirrors readOptionalString for unbound recipients.
func (r *binReader) readOptionalAddress() (*sdk.Address, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	addr, err := r.readAddress()
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// DecodeAidPackage is the strict inverse of EncodeAidPackage; any trailing or
// missing bytes make it fail instead of guessing.
func DecodeAidPackage(data []byte) (*AidPackage, error) {
	r := newReader(data)
	pkg := &AidPackage{}
	var err error
	if pkg.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if pkg.Donor, err = r.readAddress(); err != nil {
		return nil, err
	}
	if pkg.Coordinator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if pkg.Recipient, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	if pkg.RecipientProfileID, err = r.readOptionalUint64(); err != nil {
		return nil, err
	}
	if pkg.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if pkg.Location, err = r.readString(); err != nil {
		return nil, err
	}
	statusByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	pkg.Status = PackageStatus(statusByte)
	if pkg.DonationAmount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if pkg.LockedDonation, err = r.readOptionalAmount(); err != nil {
		return nil, err
	}
	if pkg.CoordinatorApproved, err = r.readBool(); err != nil {
		return nil, err
	}
	if pkg.RecipientApproved, err = r.readBool(); err != nil {
		return nil, err
	}
	if pkg.DeliveryNote, err = r.readOptionalString(); err != nil {
		return nil, err
	}
	if pkg.ProofURL, err = r.readString(); err != nil {
		return nil, err
	}
	if pkg.CreatedAtEpoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if pkg.UpdatedAtEpoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if pkg.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	if pkg.Version, err = r.readUint64(); err != nil {
		return nil, err
	}
	if r.pos != len(r.data) {
		return nil, errors.New("trailing bytes")
	}
	return pkg, nil
}

// DecodeRecipientProfile is the strict inverse of EncodeRecipientProfile.
func DecodeRecipientProfile(data []byte) (*RecipientProfile, error) {
	r := newReader(data)
	p := &RecipientProfile{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Location, err = r.readString(); err != nil {
		return nil, err
	}
	if p.NeedCategory, err = r.readString(); err != nil {
		return nil, err
	}
	if p.IsVerified, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.RegisteredAtEpoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ReceivedPackagesCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Version, err = r.readUint64(); err != nil {
		return nil, err
	}
	if r.pos != len(r.data) {
		return nil, errors.New("trailing bytes")
	}
	return p, nil
}
