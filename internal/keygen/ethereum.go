package keygen

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"golang.org/x/crypto/sha3"
)

const ethPrefix = "0x"

// Ethereum derives account addresses as the last 20 bytes of the keccak-256 hash
// of the uncompressed public key.
type Ethereum struct{}

func (Ethereum) Chain() model.Chain {
	return model.ETH
}

func (Ethereum) Derive(pub *btcec.PublicKey) model.Address {
	raw := pub.SerializeUncompressed()

	h := sha3.NewLegacyKeccak256()
	h.Write(raw[1:])
	var sum [32]byte
	h.Sum(sum[:0])

	var addr model.Address
	copy(addr[:], sum[32-model.AddressLen:])
	return addr
}

// ParseAddress accepts addresses with or without the 0x prefix in any letter case.
func (Ethereum) ParseAddress(s string) (model.Address, error) {
	var addr model.Address

	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if len(s) != hex.EncodedLen(model.AddressLen) {
		return addr, fmt.Errorf("invalid ethereum address length %d", len(s))
	}
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return addr, fmt.Errorf("decode ethereum address: %w", err)
	}
	return addr, nil
}

// FormatAddress returns the normalized 0x-prefixed lowercase form.
func (Ethereum) FormatAddress(addr model.Address) string {
	return ethPrefix + addr.Hex()
}

func (Ethereum) FormatSecret(secret [model.SecretLen]byte) string {
	return ethPrefix + hex.EncodeToString(secret[:])
}
