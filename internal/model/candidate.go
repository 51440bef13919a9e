package model

// SecretLen is the size of a generated secp256k1 private key.
const SecretLen = 32

// Candidate is a generated secret together with its derived address.
type Candidate struct {
	Secret  [SecretLen]byte
	Address Address
}

// MembershipResult is the outcome of testing an address against the target set.
type MembershipResult uint8

const (
	NoMatch MembershipResult = iota
	Match
)

func (r MembershipResult) String() string {
	if r == Match {
		return "match"
	}
	return "no_match"
}
