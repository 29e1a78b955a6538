package rpc

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrNodeUnreachable reports that the node could not be reached, either after the
	// connection retry budget was spent or after a transport failure that was unsafe
	// to retry.
	ErrNodeUnreachable = errors.New("node unreachable")
	// ErrAddressIndexing reports that the node has not indexed the queried address.
	ErrAddressIndexing = errors.New("address is not indexed by the node")
	// ErrWalletLocked reports a wallet call refused because the wallet needs unlocking.
	ErrWalletLocked = errors.New("wallet is locked")
	// ErrAddressNotOwned reports a wallet call on an address the node wallet does not hold.
	ErrAddressNotOwned = errors.New("address is not owned by the node wallet")
)

// HTTPError is returned for responses whose status code is neither 200 nor 500.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("node responded with http status %d (%s)", e.StatusCode, e.Status)
}

// NodeError carries an RPC error object the client does not classify further.
type NodeError struct {
	Code    btcjson.RPCErrorCode
	Message string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}
