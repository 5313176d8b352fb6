package stark

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"

	"github.com/vybium/zk-stark-engine/internal/zkstark/transcript"
)

// Grind searches for a nonce such that SHA-256(transcriptState || nonce)
// has at least bits leading zero bits, then folds it into ch via FoldNonce
// so it affects every subsequent Fiat-Shamir challenge. bits == 0 is a
// no-op returning nonce 0: grinding is optional per the configuration's
// GrindingBits.
func Grind(ch *transcript.Channel, bits_ int) uint64 {
	if bits_ <= 0 {
		return 0
	}
	state := ch.State()
	var nonce uint64
	for !meetsDifficulty(state, nonce, bits_) {
		nonce++
	}
	FoldNonce(ch, nonce)
	return nonce
}

// VerifyGrind checks that nonce actually satisfies the bits difficulty
// against ch's current state, then folds it in exactly as Grind did on the
// prover side. bits <= 0 always succeeds and folds nothing, matching Grind.
func VerifyGrind(ch *transcript.Channel, nonce uint64, bits_ int) bool {
	if bits_ <= 0 {
		return true
	}
	if !meetsDifficulty(ch.State(), nonce, bits_) {
		return false
	}
	FoldNonce(ch, nonce)
	return true
}

// FoldNonce absorbs a grinding nonce into the channel's running state.
func FoldNonce(ch *transcript.Channel, nonce uint64) {
	nonceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBytes, nonce)
	ch.Send(nonceBytes)
}

func meetsDifficulty(state []byte, nonce uint64, bits_ int) bool {
	buf := make([]byte, len(state)+8)
	copy(buf, state)
	binary.BigEndian.PutUint64(buf[len(state):], nonce)
	digest := sha256.Sum256(buf)
	return leadingZeroBits(digest[:]) >= bits_
}

func leadingZeroBits(data []byte) int {
	total := 0
	for _, b := range data {
		if b == 0 {
			total += 8
			continue
		}
		total += bits.LeadingZeros8(b)
		break
	}
	return total
}
