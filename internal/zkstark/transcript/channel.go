// Package transcript implements the Fiat-Shamir channel shared by the FRI
// and Prover/Verifier layers: a running hash state that absorbs prover
// commitments and yields verifier challenges, turning the interactive
// protocol into a non-interactive one.
package transcript

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
)

// Channel absorbs committed data via Send and releases deterministic,
// Fiat-Shamir-derived values via Draw*. Every draw call mixes in and then
// advances the state, so no challenge is ever produced before the
// commitment it depends on has been absorbed — the fundamental soundness
// requirement of the transform.
type Channel struct {
	state    []byte
	hashName string
}

// NewChannel starts a channel with empty state. hashName selects the
// channel's own bookkeeping hash ("sha256", the default, or "sha3"); it
// never affects the protocol's SHA-256-mandated commitments (Merkle
// leaves, FRI query indices, the statement hash, grinding), which always
// use crypto/sha256 directly regardless of this setting.
func NewChannel(hashName string) *Channel {
	if hashName == "" {
		hashName = "sha256"
	}
	return &Channel{state: []byte{}, hashName: hashName}
}

// Send absorbs data into the running state: state = hash(state || data).
func (c *Channel) Send(data []byte) {
	buf := make([]byte, 0, len(c.state)+len(data))
	buf = append(buf, c.state...)
	buf = append(buf, data...)
	c.state = c.hash(buf)
}

// State returns a copy of the current running hash.
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

// DrawFieldElement returns int(state) mod p as a field element, with no
// additional hash step beyond the state already absorbed by prior Send
// calls — so the very first draw, right after the initial commitment,
// equals SHA-256(commitment) mod p exactly.
func (c *Channel) DrawFieldElement(field *core.Field) *core.FieldElement {
	value := new(big.Int).SetBytes(c.state)
	elem := field.NewElement(value)
	c.state = c.hash(c.state)
	return elem
}

// DrawIndex returns a deterministic index in [0, upperBound) and advances
// the state, for use where the protocol does not specify the literal
// SHA-256(...)-mod-N derivation (see QueryIndex for that case).
func (c *Channel) DrawIndex(upperBound int) int {
	value := new(big.Int).SetBytes(c.state)
	mod := new(big.Int).Mod(value, big.NewInt(int64(upperBound)))
	c.state = c.hash(c.state)
	return int(mod.Int64())
}

func (c *Channel) hash(data []byte) []byte {
	switch c.hashName {
	case "sha3":
		h := sha3.Sum256(data)
		return h[:]
	default:
		h := sha256.Sum256(data)
		return h[:]
	}
}

// MixNonce folds a grinding nonce into a root to produce the seed FRI query
// indices are derived from, so that a configured grinding round actually
// changes which indices get checked rather than being cosmetic.
func MixNonce(root [32]byte, nonce uint64) [32]byte {
	buf := make([]byte, 32+8)
	copy(buf, root[:])
	buf[32] = byte(nonce >> 56)
	buf[33] = byte(nonce >> 48)
	buf[34] = byte(nonce >> 40)
	buf[35] = byte(nonce >> 32)
	buf[36] = byte(nonce >> 24)
	buf[37] = byte(nonce >> 16)
	buf[38] = byte(nonce >> 8)
	buf[39] = byte(nonce)
	return sha256.Sum256(buf)
}

// QueryIndex derives a FRI query index deterministically from the trace
// root and query number: idx = SHA-256(root || "queries" || i) mod domainSize.
// This is independent of the channel's running state, matching the
// protocol's literal per-index derivation.
func QueryIndex(root [32]byte, i, domainSize int) int {
	buf := append([]byte{}, root[:]...)
	buf = append(buf, []byte("queries")...)
	buf = append(buf, byte(i>>24), byte(i>>16), byte(i>>8), byte(i))
	digest := sha256.Sum256(buf)
	value := new(big.Int).SetBytes(digest[:])
	mod := new(big.Int).Mod(value, big.NewInt(int64(domainSize)))
	return int(mod.Int64())
}
