package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/xcp-crafter/internal/app"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

var errJournalDisabled = errors.New("broadcast journal disabled, set --clickhouse-dsn")

func newParser(opts *app.Options, sess *session, out io.Writer, in *os.File) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"build", "Build an unsigned transaction", "Selects coins and prints the unsigned transaction hex.", &buildCommand{sess: sess, out: out}},
		{"send", "Build, sign and broadcast a transaction", "Builds the transaction, signs it with the node wallet and broadcasts it.", &sendCommand{sess: sess, out: out}},
		{"check", "Check that the node follows the network", "Fails when the best block is older than two hours.", &checkCommand{sess: sess, out: out}},
		{"unlock", "Unlock the node wallet", "Unlocks the wallet for 60 seconds when it is locked.", &unlockCommand{sess: sess, out: out, in: in}},
		{"supply", "Print the issued BTC supply", "Sums block subsidies up to the node's current height.", &supplyCommand{sess: sess, out: out}},
		{"balance", "Print an address balance", "Asks the Insight indexer when configured, otherwise sums the node wallet's unspent coins.", &balanceCommand{sess: sess, out: out}},
		{"decode", "Decode a raw transaction", "Prints the node's decoding of a raw transaction hex.", &decodeCommand{sess: sess, out: out}},
		{"history", "List journaled broadcasts", "Reads recent broadcasts from the ClickHouse journal.", &historyCommand{sess: sess, out: out}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(fmt.Sprintf("register %s command: %v", c.name, err))
		}
	}
	return parser
}

type txOptions struct {
	Source        string `long:"source" description:"address funding the transaction" required:"true"`
	Destination   string `long:"destination" description:"address receiving --amount"`
	Amount        uint64 `long:"amount" description:"satoshis sent to the destination, 0 for the dust floor"`
	Fee           uint64 `long:"fee" description:"fee in satoshis" default:"10000"`
	PayloadHex    string `long:"payload-hex" description:"hex encoded payload" required:"true"`
	Mode          string `long:"mode" description:"payload embedding" choice:"nulldata" choice:"multisig" default:"nulldata"`
	PubKey        string `long:"pubkey" description:"hex source public key for multisig, dumped from the wallet when empty"`
	ChangeAddress string `long:"change-address" description:"change address, defaults to the source"`
}

func (o txOptions) request() (model.BuildRequest, error) {
	payload, err := hex.DecodeString(o.PayloadHex)
	if err != nil {
		return model.BuildRequest{}, fmt.Errorf("decode payload: %w", err)
	}
	return model.BuildRequest{
		Source:        o.Source,
		Destination:   o.Destination,
		Amount:        o.Amount,
		Fee:           o.Fee,
		Payload:       payload,
		Mode:          model.EmbeddingMode{Kind: model.EmbeddingKind(o.Mode), PubKey: o.PubKey},
		ChangeAddress: o.ChangeAddress,
	}, nil
}

type txSummary struct {
	TxID          string `json:"txid,omitempty"`
	UnsignedHex   string `json:"unsigned_hex"`
	Inputs        int    `json:"inputs"`
	Outputs       int    `json:"outputs"`
	TotalIn       uint64 `json:"total_in"`
	TotalRequired uint64 `json:"total_required"`
	Change        uint64 `json:"change"`
	Decoded       any    `json:"decoded,omitempty"`
}

func summarize(tx *model.RawTransaction) txSummary {
	return txSummary{
		UnsignedHex:   tx.Hex(),
		Inputs:        len(tx.Inputs),
		Outputs:       len(tx.Outputs),
		TotalIn:       tx.TotalIn,
		TotalRequired: tx.TotalRequired,
		Change:        tx.Change,
	}
}

type buildCommand struct {
	txOptions
	Decode bool `long:"decode" description:"append the node's decoding of the transaction"`

	sess *session
	out  io.Writer
}

func (c *buildCommand) Execute(_ []string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	tx, err := a.Assembler.Build(c.sess.ctx, req)
	if err != nil {
		return err
	}
	summary := summarize(tx)
	if c.Decode {
		decoded, err := a.RPC.DecodeRawTransaction(c.sess.ctx, summary.UnsignedHex)
		if err != nil {
			return err
		}
		summary.Decoded = decoded
	}
	return printJSON(c.out, summary)
}

type sendCommand struct {
	txOptions

	sess *session
	out  io.Writer
}

func (c *sendCommand) Execute(_ []string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	txid, tx, err := a.Sender.Send(c.sess.ctx, req)
	if err != nil {
		return err
	}
	summary := summarize(tx)
	summary.TxID = txid
	return printJSON(c.out, summary)
}

type checkCommand struct {
	sess *session
	out  io.Writer
}

func (c *checkCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	st, err := a.Checker.Check(c.sess.ctx)
	if st.Height > 0 {
		fmt.Fprintf(c.out, "height %d hash %s tip %s age %s\n", st.Height, st.Hash, st.TipTime.UTC().Format(time.RFC3339), st.Age.Truncate(time.Second))
	}
	return err
}

type unlockCommand struct {
	Passphrase string `long:"passphrase" env:"XCP_WALLET_PASSPHRASE" description:"wallet passphrase, prompted for when empty"`

	sess *session
	out  io.Writer
	in   *os.File
}

func (c *unlockCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	locked, err := a.Unlocker.Locked(c.sess.ctx)
	if err != nil {
		return err
	}
	if !locked {
		fmt.Fprintln(c.out, "wallet is not locked")
		return nil
	}

	passphrase := c.Passphrase
	if passphrase == "" {
		if passphrase, err = c.prompt(); err != nil {
			return err
		}
	}
	if _, err := a.Unlocker.Unlock(c.sess.ctx, passphrase); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "wallet unlocked")
	return nil
}

func (c *unlockCommand) prompt() (string, error) {
	fd := int(c.in.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no passphrase given and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Wallet passphrase: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

type supplyCommand struct {
	sess *session
	out  io.Writer
}

func (c *supplyCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	sat, err := a.Checker.Supply(c.sess.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%d satoshis (%s)\n", sat, btcutil.Amount(sat))
	return nil
}

type balanceCommand struct {
	Address string `long:"address" required:"yes" description:"address to report"`

	sess *session
	out  io.Writer
}

func (c *balanceCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	sat, err := a.Balances.Balance(c.sess.ctx, c.Address)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%d satoshis (%s)\n", sat, btcutil.Amount(sat))
	return nil
}

type decodeCommand struct {
	Args struct {
		Hex string `positional-arg-name:"hex" description:"raw transaction hex"`
	} `positional-args:"yes" required:"yes"`

	sess *session
	out  io.Writer
}

func (c *decodeCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	decoded, err := a.RPC.DecodeRawTransaction(c.sess.ctx, c.Args.Hex)
	if err != nil {
		return err
	}
	return printJSON(c.out, decoded)
}

type historyCommand struct {
	Limit uint32 `long:"limit" description:"number of broadcasts to list" default:"20"`

	sess *session
	out  io.Writer
}

func (c *historyCommand) Execute(_ []string) error {
	a, err := c.sess.open()
	if err != nil {
		return err
	}
	if a.Repository == nil {
		return errJournalDisabled
	}
	broadcasts, err := a.Repository.RecentBroadcasts(c.sess.ctx, c.sess.opts.Coin, c.sess.opts.Network, c.Limit)
	if err != nil {
		return err
	}
	return printJSON(c.out, broadcasts)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
