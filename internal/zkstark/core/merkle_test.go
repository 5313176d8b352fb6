package core

import "testing"

func leafData(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte{byte(i), byte(i >> 8)}
	}
	return out
}

func TestMerkleTreeInclusionRoundTrip(t *testing.T) {
	data := leafData(13) // odd count at some level: exercises self-duplication
	tree := NewMerkleTree(data)
	root := tree.Root()

	for i := range data {
		proof, err := tree.Prove(i)
		if err != nil {
			t.Fatalf("Prove(%d): %v", i, err)
		}
		if !VerifyProof(root, data[i], i, proof) {
			t.Fatalf("VerifyProof failed for leaf %d", i)
		}
	}
}

func TestMerkleTreeTamperDetection(t *testing.T) {
	data := leafData(8)
	tree := NewMerkleTree(data)
	root := tree.Root()

	proof, err := tree.Prove(3)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if VerifyProof(root, []byte("not the real leaf"), 3, proof) {
		t.Fatal("tampered leaf unexpectedly verified")
	}
}

func TestMerkleTreeEmptySentinel(t *testing.T) {
	tree := NewMerkleTree(nil)
	if tree.Root() != emptyTreeRoot {
		t.Fatal("empty tree did not produce the sentinel root")
	}
}

func TestMerkleTreeOddLevelSelfDuplication(t *testing.T) {
	// 3 leaves: level 0 has an odd count, forcing self-duplication when
	// building level 1. The proof must still reconstruct the same root.
	data := leafData(3)
	tree := NewMerkleTree(data)
	root := tree.Root()
	for i := range data {
		proof, err := tree.Prove(i)
		if err != nil {
			t.Fatalf("Prove(%d): %v", i, err)
		}
		if !VerifyProof(root, data[i], i, proof) {
			t.Fatalf("odd-level proof failed to reconstruct the root for leaf %d", i)
		}
	}
}
