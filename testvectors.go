package blakeout

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector represents a single Blakeout test case.
// These vectors pin digests produced by the reference construction.
type TestVector struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	InputHex string `json:"input_hex,omitempty"` // Alternative hex-encoded input
	Updates  int    `json:"updates,omitempty"`   // Times Input is fed to one hasher, default 1
	Expected string `json:"expected"`            // Hex-encoded expected digest
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetInput returns the decoded input bytes for a test vector.
// If InputHex is set, it decodes from hex, otherwise uses Input as UTF-8.
func (tv *TestVector) GetInput() ([]byte, error) {
	if tv.InputHex != "" {
		input, err := hex.DecodeString(tv.InputHex)
		if err != nil {
			return nil, fmt.Errorf("invalid input hex: %w", err)
		}
		return input, nil
	}
	return []byte(tv.Input), nil
}

// GetExpected returns the decoded expected digest bytes.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected hash: %w", err)
	}
	if len(expected) != Size {
		return nil, fmt.Errorf("expected hash must be %d bytes, got %d", Size, len(expected))
	}
	return expected, nil
}

// GetUpdates returns how many times the input is fed to one hasher.
func (tv *TestVector) GetUpdates() int {
	if tv.Updates < 1 {
		return 1
	}
	return tv.Updates
}

// Run feeds the vector's input to h the configured number of times and
// returns the resulting digest.
func (tv *TestVector) Run(h *Hasher) ([]byte, error) {
	input, err := tv.GetInput()
	if err != nil {
		return nil, err
	}
	for i := 0; i < tv.GetUpdates(); i++ {
		h.Update(input)
	}
	return h.Result(), nil
}
