// Package keygen generates secp256k1 keypairs and derives chain addresses from them.
package keygen

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// Scheme derives, formats and parses addresses for one chain.
type Scheme interface {
	Chain() model.Chain
	Derive(pub *btcec.PublicKey) model.Address
	ParseAddress(s string) (model.Address, error)
	FormatAddress(addr model.Address) string
	FormatSecret(secret [model.SecretLen]byte) string
}

// NewScheme returns the address scheme for a chain and network.
func NewScheme(chain model.Chain, network model.Network) (Scheme, error) {
	switch chain {
	case model.ETH:
		return Ethereum{}, nil
	case model.BTC:
		params, err := bitcoinParams(network)
		if err != nil {
			return nil, err
		}
		return NewBitcoin(params), nil
	default:
		return nil, fmt.Errorf("unsupported chain %q", chain)
	}
}

func bitcoinParams(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet, "":
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
