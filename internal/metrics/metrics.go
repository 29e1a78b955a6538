// Package metrics holds the Prometheus collectors of the crafter components.
package metrics

import "github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"

const namespace = "xcp_crafter"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func chainLabels(coin model.Coin, network model.Network) (string, string) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return string(coin), string(network)
}
