package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/pkg/safe"
	"github.com/goodnatureofminers/xcp-crafter/pkg/workerpool"
)

const defaultBuildWorkers = 4

var (
	// ErrInvalidAddress wraps the codec error of a source, destination or change address.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrUnexpectedAmount reports an amount given without a destination.
	ErrUnexpectedAmount = errors.New("amount given without destination")
	// ErrAmountOverflow reports a fee and amount whose total does not fit in uint64.
	ErrAmountOverflow = errors.New("transaction total overflows")
)

// BuildResult pairs a built transaction with its error, for batch builds.
type BuildResult struct {
	Tx  *model.RawTransaction
	Err error
}

// Assembler turns build requests into unsigned raw transactions.
type Assembler struct {
	params   *chaincfg.Params
	policy   bitcoin.DustPolicy
	outputs  *bitcoin.OutputBuilder
	selector *Selector
	keys     KeyDumper
	metrics  BuildMetrics
	workers  int
}

// NewAssembler constructs an Assembler for one network. keys is only used to derive
// the source public key of multisig transactions when the request carries none.
func NewAssembler(
	params *chaincfg.Params,
	policy bitcoin.DustPolicy,
	selector *Selector,
	keys KeyDumper,
	metrics BuildMetrics,
	workers int,
) *Assembler {
	if workers <= 0 {
		workers = defaultBuildWorkers
	}
	return &Assembler{
		params:   params,
		policy:   policy,
		outputs:  bitcoin.NewOutputBuilder(params),
		selector: selector,
		keys:     keys,
		metrics:  metrics,
		workers:  workers,
	}
}

// Build validates req, funds it from the source address and serializes the result.
// Every check that needs no node access runs before the first RPC.
func (a *Assembler) Build(ctx context.Context, req model.BuildRequest) (tx *model.RawTransaction, err error) {
	started := time.Now()
	defer func() {
		mode := req.Mode.Kind
		if mode == "" {
			mode = model.NullData
		}
		a.metrics.Observe(string(mode), err, started)
	}()

	changeAddress := req.ChangeAddress
	if changeAddress == "" {
		changeAddress = req.Source
	}
	if err := a.validateAddresses(req.Source, req.Destination, changeAddress); err != nil {
		return nil, err
	}

	emb, err := a.policy.Resolve(req.Mode)
	if err != nil {
		return nil, err
	}

	var (
		outputs []model.Output
		amount  = req.Amount
	)
	if req.Destination != "" {
		if amount == 0 {
			amount = emb.DustFloor
		}
		dest, err := a.outputs.Destination(req.Destination, amount, emb)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, dest)
	} else if amount > 0 {
		return nil, fmt.Errorf("%w: %d satoshis", ErrUnexpectedAmount, amount)
	}

	chunks, err := bitcoin.Chunk(req.Payload, emb)
	if err != nil {
		return nil, err
	}
	required, err := requiredTotal(req.Fee, amount, len(chunks), emb.DataValue)
	if err != nil {
		return nil, err
	}

	coins, totalIn, err := a.selector.Select(ctx, req.Source, required)
	if err != nil {
		return nil, err
	}

	sourceKey := emb.PubKey
	if emb.NeedsSourceKey(len(chunks)) {
		if sourceKey, err = a.sourcePubKey(ctx, req.Source); err != nil {
			return nil, err
		}
	}
	data, err := a.outputs.Data(chunks, emb, sourceKey)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, data...)

	change := totalIn - required
	if change > 0 {
		out, err := a.outputs.Change(changeAddress, change, emb)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	raw, err := bitcoin.Serialize(coins, outputs)
	if err != nil {
		return nil, err
	}
	return &model.RawTransaction{
		Version:       bitcoin.TxVersion,
		LockTime:      bitcoin.TxLockTime,
		Inputs:        coins,
		Outputs:       outputs,
		TotalIn:       totalIn,
		TotalRequired: required,
		Change:        change,
		Bytes:         raw,
	}, nil
}

// BuildBatch builds reqs concurrently. Results are in request order.
func (a *Assembler) BuildBatch(ctx context.Context, reqs []model.BuildRequest) []BuildResult {
	txs, errs := workerpool.Map(ctx, a.workers, reqs, a.Build)

	results := make([]BuildResult, len(reqs))
	for i := range reqs {
		results[i] = BuildResult{Tx: txs[i], Err: errs[i]}
	}
	return results
}

// requiredTotal is fee + amount + chunks*dataValue, rejecting any wrap.
func requiredTotal(fee, amount uint64, chunks int, dataValue uint64) (uint64, error) {
	data, err := safe.Mul(uint64(chunks), dataValue)
	if err != nil {
		return 0, fmt.Errorf("%w: data outputs: %w", ErrAmountOverflow, err)
	}
	total, err := safe.Add(fee, amount)
	if err != nil {
		return 0, fmt.Errorf("%w: fee plus amount: %w", ErrAmountOverflow, err)
	}
	if total, err = safe.Add(total, data); err != nil {
		return 0, fmt.Errorf("%w: with data outputs: %w", ErrAmountOverflow, err)
	}
	return total, nil
}

func (a *Assembler) validateAddresses(source, destination, change string) error {
	checks := []struct {
		role    string
		address string
	}{
		{role: "source", address: source},
		{role: "destination", address: destination},
		{role: "change", address: change},
	}
	for _, c := range checks {
		if c.address == "" && c.role == "destination" {
			continue
		}
		if _, err := bitcoin.DecodeAddress(c.address, a.params); err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidAddress, c.role, c.address, err)
		}
	}
	return nil
}

func (a *Assembler) sourcePubKey(ctx context.Context, source string) ([]byte, error) {
	wif, err := a.keys.DumpPrivKey(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("dump private key of %s: %w", source, err)
	}
	return bitcoin.PubKeyFromWIF(wif, a.params)
}
