package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

const (
	compressedPubKeyLen   = 33
	uncompressedPubKeyLen = 65
)

// PayToPubKeyHashScript returns OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHashScript(hash []byte) ([]byte, error) {
	if len(hash) != hash160Len {
		return nil, fmt.Errorf("%w: pubkey hash is %d bytes", ErrMalformedInput, len(hash))
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// NullDataScript returns OP_RETURN <push len> <chunk>.
func NullDataScript(chunk []byte) []byte {
	push := PushLength(len(chunk))
	script := make([]byte, 0, 1+len(push)+len(chunk))
	script = append(script, txscript.OP_RETURN)
	script = append(script, push...)
	return append(script, chunk...)
}

// FakePubKey packs a chunk into a compressed-key sized slot: a length byte, the chunk
// and trailing zero padding.
func FakePubKey(chunk []byte) ([]byte, error) {
	if len(chunk) > MultisigChunkSize {
		return nil, fmt.Errorf("%w: chunk is %d bytes, max %d", ErrPayloadTooLarge, len(chunk), MultisigChunkSize)
	}
	key := make([]byte, compressedPubKeyLen)
	key[0] = byte(len(chunk))
	copy(key[1:], chunk)
	return key, nil
}

// DisguisedMultisigScript returns a 1-of-2 multisig script whose second key carries
// the chunk. Only sourcePubKey can redeem the output.
func DisguisedMultisigScript(sourcePubKey, chunk []byte) ([]byte, error) {
	if l := len(sourcePubKey); l != compressedPubKeyLen && l != uncompressedPubKeyLen {
		return nil, fmt.Errorf("%w: source key is %d bytes", ErrInvalidPubKey, l)
	}
	fake, err := FakePubKey(chunk)
	if err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_1).
		AddData(sourcePubKey).
		AddData(fake).
		AddOp(txscript.OP_2).
		AddOp(txscript.OP_CHECKMULTISIG).
		Script()
}
