package bitcoin

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// VarInt encodes n with the chain's compact size rules: one byte below 0xfd,
// otherwise a 0xfd/0xfe/0xff marker followed by 2/4/8 little-endian bytes.
func VarInt(n uint64) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = wire.WriteVarInt(&buf, 0, n)
	return buf.Bytes()
}

// PushLength returns the script prefix that pushes n bytes of data.
//
// txscript.ScriptBuilder is avoided here because it rewrites short pushes into
// small-integer opcodes, which would change the bytes of one-byte data chunks.
func PushLength(n int) []byte {
	switch {
	case n < txscript.OP_PUSHDATA1:
		return []byte{byte(n)}
	case n <= math.MaxUint8:
		return []byte{txscript.OP_PUSHDATA1, byte(n)}
	case n <= math.MaxUint16:
		buf := make([]byte, 3)
		buf[0] = txscript.OP_PUSHDATA2
		binary.LittleEndian.PutUint16(buf[1:], uint16(n))
		return buf
	default:
		buf := make([]byte, 5)
		buf[0] = txscript.OP_PUSHDATA4
		binary.LittleEndian.PutUint32(buf[1:], uint32(n))
		return buf
	}
}
