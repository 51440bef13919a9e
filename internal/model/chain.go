package model

import "fmt"

type Chain string
type Network string

var (
	ETH Chain = "ETH"
	BTC Chain = "BTC"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// UnmarshalFlag lets go-flags accept case-insensitive chain names.
func (c *Chain) UnmarshalFlag(value string) error {
	switch value {
	case "eth", "ETH":
		*c = ETH
	case "btc", "BTC":
		*c = BTC
	default:
		return fmt.Errorf("unsupported chain %q", value)
	}
	return nil
}

// UnmarshalFlag lets go-flags validate network names.
func (n *Network) UnmarshalFlag(value string) error {
	switch Network(value) {
	case Mainnet, Testnet:
		*n = Network(value)
	default:
		return fmt.Errorf("unsupported network %q", value)
	}
	return nil
}
