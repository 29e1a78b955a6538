package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ParsePubKey parses a hex encoded secp256k1 public key and returns its compressed form.
func ParsePubKey(hexKey string) ([]byte, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPubKey, err)
	}
	key, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPubKey, err)
	}
	return key.SerializeCompressed(), nil
}

// PubKeyFromWIF derives the public key of a wallet import format private key, keeping
// the compression flag of the key.
func PubKeyFromWIF(wif string, params *chaincfg.Params) ([]byte, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wif: %w", ErrInvalidPubKey, err)
	}
	if !decoded.IsForNet(params) {
		return nil, fmt.Errorf("%w: private key is not for %s", ErrInvalidPubKey, params.Name)
	}
	return decoded.SerializePubKey(), nil
}
