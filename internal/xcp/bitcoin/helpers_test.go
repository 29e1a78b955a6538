package bitcoin

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
)

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func testAddress(t *testing.T, fill byte, params *chaincfg.Params) string {
	t.Helper()
	return EncodeBase58Check(bytes.Repeat([]byte{fill}, 20), params.PubKeyHashAddrID)
}

func testPubKey(t *testing.T) []byte {
	t.Helper()
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey() error = %v", err)
	}
	return priv.PubKey().SerializeCompressed()
}

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}
