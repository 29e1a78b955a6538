package bitcoin

import "github.com/btcsuite/btcd/btcutil"

const (
	halvingInterval = 210_000
	initialSubsidy  = 50 * btcutil.SatoshiPerBitcoin
)

// Supply returns the number of satoshis issued by block subsidies over blockCount blocks.
func Supply(blockCount int64) uint64 {
	var total uint64
	subsidy := uint64(initialSubsidy)
	for remaining := blockCount; remaining > 0 && subsidy > 0; subsidy /= 2 {
		blocks := remaining
		if blocks > halvingInterval {
			blocks = halvingInterval
		}
		total += uint64(blocks) * subsidy
		remaining -= blocks
	}
	return total
}
