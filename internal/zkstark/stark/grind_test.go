package stark

import (
	"testing"

	"github.com/vybium/zk-stark-engine/internal/zkstark/transcript"
)

func TestGrindSatisfiesDifficulty(t *testing.T) {
	ch := transcript.NewChannel("sha256")
	ch.Send([]byte("some commitment"))
	nonce := Grind(ch, 8)

	replay := transcript.NewChannel("sha256")
	replay.Send([]byte("some commitment"))
	if !VerifyGrind(replay, nonce, 8) {
		t.Fatal("VerifyGrind rejected the nonce Grind produced")
	}
}

func TestVerifyGrindRejectsWrongNonce(t *testing.T) {
	ch := transcript.NewChannel("sha256")
	ch.Send([]byte("some commitment"))
	if VerifyGrind(ch, 0, 24) {
		t.Fatal("VerifyGrind accepted an arbitrary nonce against a high difficulty")
	}
}

func TestGrindNoOpAtZeroBits(t *testing.T) {
	ch := transcript.NewChannel("sha256")
	before := ch.State()
	nonce := Grind(ch, 0)
	if nonce != 0 {
		t.Fatal("zero-bit grinding should return nonce 0")
	}
	if string(ch.State()) != string(before) {
		t.Fatal("zero-bit grinding should not change channel state")
	}
}
