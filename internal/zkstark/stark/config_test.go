package stark

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidateRejectsNonPowerOfTwoTraceLength(t *testing.T) {
	c := DefaultConfig().WithTraceLength(100)
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a non-power-of-two trace length")
	}
}

func TestConfigValidateRejectsBadHashFunction(t *testing.T) {
	c := DefaultConfig().WithHashFunction("md5")
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported hash function")
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.TraceLength = 1024
	if c.TraceLength == clone.TraceLength {
		t.Fatal("Clone shares state with the original")
	}
}
