package keygen

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// Bitcoin derives pay-to-pubkey-hash addresses from compressed public keys.
type Bitcoin struct {
	params *chaincfg.Params
}

// NewBitcoin builds a P2PKH scheme for the given network parameters.
func NewBitcoin(params *chaincfg.Params) Bitcoin {
	return Bitcoin{params: params}
}

func (Bitcoin) Chain() model.Chain {
	return model.BTC
}

func (Bitcoin) Derive(pub *btcec.PublicKey) model.Address {
	var addr model.Address
	copy(addr[:], btcutil.Hash160(pub.SerializeCompressed()))
	return addr
}

// ParseAddress decodes a base58check P2PKH address for the configured network.
func (b Bitcoin) ParseAddress(s string) (model.Address, error) {
	var addr model.Address

	decoded, err := btcutil.DecodeAddress(strings.TrimSpace(s), b.params)
	if err != nil {
		return addr, fmt.Errorf("decode bitcoin address: %w", err)
	}
	pkh, ok := decoded.(*btcutil.AddressPubKeyHash)
	if !ok {
		return addr, fmt.Errorf("unsupported bitcoin address type %T", decoded)
	}
	if !pkh.IsForNet(b.params) {
		return addr, fmt.Errorf("address %s is not for %s", s, b.params.Name)
	}
	copy(addr[:], pkh.Hash160()[:])
	return addr, nil
}

// FormatAddress returns the base58check encoding, which is canonical per hash.
func (b Bitcoin) FormatAddress(addr model.Address) string {
	pkh, err := btcutil.NewAddressPubKeyHash(addr[:], b.params)
	if err != nil {
		return addr.Hex()
	}
	return pkh.EncodeAddress()
}

// FormatSecret returns the compressed WIF encoding of the key.
func (b Bitcoin) FormatSecret(secret [model.SecretLen]byte) string {
	priv, _ := btcec.PrivKeyFromBytes(secret[:])
	wif, err := btcutil.NewWIF(priv, b.params, true)
	if err != nil {
		return ""
	}
	return wif.String()
}
