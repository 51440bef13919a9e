// Package model defines domain models for the address matching engine.
package model

import "encoding/hex"

// AddressLen is the size of a canonical binary address.
const AddressLen = 20

// Address is the canonical binary form of a target address: the keccak-derived
// account address on Ethereum, the hash160 on Bitcoin P2PKH.
type Address [AddressLen]byte

// Hex returns the lowercase hex encoding without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// TargetAddress is one row of the bulk target source.
type TargetAddress struct {
	Chain   Chain
	Address string
}
