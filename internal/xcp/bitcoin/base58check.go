package bitcoin

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	checksumLen    = 4
	hash160Len     = 20
)

// EncodeBase58Check encodes version || payload || checksum, where checksum is the first
// four bytes of the double SHA-256 of version || payload. Leading zero bytes become
// leading '1' digits.
func EncodeBase58Check(payload []byte, version byte) string {
	return base58.CheckEncode(payload, version)
}

// DecodeBase58Check reverses EncodeBase58Check. The checksum is verified before the
// version byte, so corrupted input reports ErrChecksumMismatch while a valid string of
// another network reports ErrVersionMismatch.
func DecodeBase58Check(s string, expectedVersion byte) ([]byte, byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(base58Alphabet, s[i]) < 0 {
			return nil, 0, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}
	}

	decoded := base58.Decode(s)
	if len(decoded) < 1+checksumLen {
		return nil, 0, fmt.Errorf("%w: %d decoded bytes", ErrInvalidFormat, len(decoded))
	}

	body, sum := decoded[:len(decoded)-checksumLen], decoded[len(decoded)-checksumLen:]
	if want := chainhash.DoubleHashB(body)[:checksumLen]; !bytes.Equal(sum, want) {
		return nil, 0, fmt.Errorf("%w: got %x, want %x", ErrChecksumMismatch, sum, want)
	}

	version := body[0]
	if version != expectedVersion {
		return nil, version, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrVersionMismatch, version, expectedVersion)
	}
	payload := make([]byte, len(body)-1)
	copy(payload, body[1:])
	return payload, version, nil
}

// DecodeAddress returns the 20-byte pubkey hash of a pay-to-pubkey-hash address of the
// given network.
func DecodeAddress(address string, params *chaincfg.Params) ([]byte, error) {
	hash, _, err := DecodeBase58Check(address, params.PubKeyHashAddrID)
	if err != nil {
		return nil, err
	}
	if len(hash) != hash160Len {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidFormat, len(hash), hash160Len)
	}
	return hash, nil
}
