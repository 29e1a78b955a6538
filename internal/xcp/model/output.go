package model

// OutputKind tags the role an output plays in a crafted transaction.
type OutputKind string

var (
	// OutputDestination pays the destination address.
	OutputDestination OutputKind = "destination"
	// OutputData carries one payload chunk.
	OutputData OutputKind = "data"
	// OutputChange returns leftover input value to the change address.
	OutputChange OutputKind = "change"
)

// Output is a single transaction output. Address is set for destination and change
// outputs, Chunk for data outputs.
type Output struct {
	Kind    OutputKind
	Address string
	Amount  uint64
	Chunk   []byte
	Script  []byte
}
