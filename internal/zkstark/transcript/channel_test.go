package transcript

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
)

func TestChannelDeterminism(t *testing.T) {
	f := core.NewGoldilocksField()
	c1 := NewChannel("sha256")
	c2 := NewChannel("sha256")
	c1.Send([]byte("commitment"))
	c2.Send([]byte("commitment"))
	if !c1.DrawFieldElement(f).Equal(c2.DrawFieldElement(f)) {
		t.Fatal("identical send sequences produced different challenges")
	}
}

func TestChannelFirstDrawMatchesLiteralFormula(t *testing.T) {
	f := core.NewGoldilocksField()
	c := NewChannel("sha256")
	commitment := []byte("root-bytes")
	c.Send(commitment)
	got := c.DrawFieldElement(f)

	digest := sha256.Sum256(commitment)
	want := f.NewElement(new(big.Int).SetBytes(digest[:]))
	if !got.Equal(want) {
		t.Fatalf("first draw after one Send does not equal SHA-256(data) mod p: got %s, want %s", got, want)
	}
}

func TestChannelSendChangesState(t *testing.T) {
	c := NewChannel("sha256")
	before := c.State()
	c.Send([]byte("x"))
	after := c.State()
	if string(before) == string(after) {
		t.Fatal("Send did not change the running state")
	}
}

func TestQueryIndexDeterministicAndBounded(t *testing.T) {
	var root [32]byte
	copy(root[:], []byte("some-trace-root-bytes-padded-xx!"))
	idx1 := QueryIndex(root, 3, 64)
	idx2 := QueryIndex(root, 3, 64)
	if idx1 != idx2 {
		t.Fatal("QueryIndex is not deterministic")
	}
	if idx1 < 0 || idx1 >= 64 {
		t.Fatalf("QueryIndex out of bounds: %d", idx1)
	}
	if QueryIndex(root, 3, 64) == QueryIndex(root, 4, 64) {
		t.Log("query indices for different i happened to collide; not itself a failure")
	}
}

func TestMixNonceChangesSeed(t *testing.T) {
	var root [32]byte
	copy(root[:], []byte("another-trace-root-bytes-pad-xx!"))
	a := MixNonce(root, 0)
	b := MixNonce(root, 1)
	if a == b {
		t.Fatal("different nonces produced the same mixed seed")
	}
}
