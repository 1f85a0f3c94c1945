package blakeout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadTestVectors verifies test vector loading functionality.
func TestLoadTestVectors(t *testing.T) {
	suite, err := LoadTestVectors("testdata/blakeout_vectors.json")
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	if suite.Version == "" {
		t.Error("suite.Version should not be empty")
	}

	if len(suite.Vectors) == 0 {
		t.Fatal("suite.Vectors should not be empty")
	}

	t.Logf("Loaded %d test vectors from version %s", len(suite.Vectors), suite.Version)
}

// TestLoadTestVectors_FileNotFound verifies error handling for missing files.
func TestLoadTestVectors_FileNotFound(t *testing.T) {
	_, err := LoadTestVectors("nonexistent.json")
	if err == nil {
		t.Error("LoadTestVectors() should return error for nonexistent file")
	}
}

// TestLoadTestVectors_InvalidJSON verifies error handling for invalid JSON.
func TestLoadTestVectors_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.json")

	err := os.WriteFile(tmpFile, []byte("{invalid json}"), 0644)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	_, err = LoadTestVectors(tmpFile)
	if err == nil {
		t.Error("LoadTestVectors() should return error for invalid JSON")
	}
}

// TestTestVector_GetInput verifies input extraction from test vectors.
func TestTestVector_GetInput(t *testing.T) {
	tests := []struct {
		name    string
		tv      TestVector
		want    []byte
		wantErr bool
	}{
		{
			name: "string_input",
			tv:   TestVector{Input: "test"},
			want: []byte("test"),
		},
		{
			name: "hex_input",
			tv:   TestVector{InputHex: "deadbeef"},
			want: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name:    "invalid_hex",
			tv:      TestVector{InputHex: "xyz"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tv.GetInput()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Errorf("GetInput() = %x, want %x", got, tt.want)
			}
		})
	}
}

// TestTestVector_GetExpected verifies expected digest decoding.
func TestTestVector_GetExpected(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		wantErr  bool
	}{
		{"valid", "4be892daff5d5432b43bf05c9d2ea4769daf2dd1ec482c23839ce5d6950e9e62", false},
		{"short", "4be892da", true},
		{"not_hex", "zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := TestVector{Expected: tt.expected}
			_, err := tv.GetExpected()
			if (err != nil) != tt.wantErr {
				t.Errorf("GetExpected() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTestVector_GetUpdates(t *testing.T) {
	if got := (&TestVector{}).GetUpdates(); got != 1 {
		t.Errorf("GetUpdates() default = %d, want 1", got)
	}
	if got := (&TestVector{Updates: 3}).GetUpdates(); got != 3 {
		t.Errorf("GetUpdates() = %d, want 3", got)
	}
}

// TestOfficialVectors runs every vector in the suite against a fresh hasher.
func TestOfficialVectors(t *testing.T) {
	suite, err := LoadTestVectors("testdata/blakeout_vectors.json")
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	for _, tv := range suite.Vectors {
		tv := tv
		t.Run(tv.Name, func(t *testing.T) {
			expected, err := tv.GetExpected()
			if err != nil {
				t.Fatalf("GetExpected() error = %v", err)
			}

			got, err := tv.Run(newTestHasher(t))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if !bytes.Equal(got, expected) {
				t.Errorf("digest mismatch\n  got:  %x\n  want: %x", got, expected)
			}
		})
	}
}
