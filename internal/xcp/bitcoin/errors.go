package bitcoin

import "errors"

var (
	// ErrInvalidCharacter reports a character outside the base58 alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrInvalidFormat reports a decoded string too short, or with a payload of the wrong size.
	ErrInvalidFormat = errors.New("invalid base58check format")
	// ErrChecksumMismatch reports a trailing checksum that does not match the decoded body.
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
	// ErrVersionMismatch reports a well-formed address of another network or kind.
	ErrVersionMismatch = errors.New("address version mismatch")

	// ErrPayloadTooLarge reports a payload that does not fit the chosen embedding mode.
	ErrPayloadTooLarge = errors.New("payload too large for embedding")
	// ErrDustOutput reports an output value below the configured dust target.
	ErrDustOutput = errors.New("output is below the dust target value")
	// ErrUnsupportedEmbedding reports an embedding mode the builder does not know.
	ErrUnsupportedEmbedding = errors.New("unsupported embedding mode")
	// ErrInvalidPubKey reports a source public key that is not a valid compressed or
	// uncompressed secp256k1 point.
	ErrInvalidPubKey = errors.New("invalid public key")

	// ErrMalformedInput marks byte lengths or encodings that callers must never pass to the serializer.
	ErrMalformedInput = errors.New("malformed transaction input")
)
