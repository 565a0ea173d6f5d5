package command

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yndnr/otpowner/internal/core/domain"
)

func TestEncode(t *testing.T) {
	out, _, err := runApp(t, "", "-o", "json", "encode", "ubnu01234567", "ubnu98765432xyz")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got []conversion
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := []conversion{
		{Input: "ubnu01234567", Output: "ubnucbdefghi"},
		{Input: "ubnu98765432xyz", Output: "ubnukjihgfed"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d conversions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("conversion[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEncode_Reverse(t *testing.T) {
	out, _, err := runApp(t, "", "encode", "--reverse", "ubnucbdefghi")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "ubnu01234567") {
		t.Errorf("output = %q, want decoded token", out)
	}
}

func TestEncode_NoTableNeeded(t *testing.T) {
	_, _, err := runApp(t, "", "--table", "/nonexistent/log.csv", "encode", "ubnu00000000")
	if err != nil {
		t.Errorf("encode should not load the table: %v", err)
	}
}

func TestEncode_Invalid(t *testing.T) {
	tests := [][]string{
		{"encode", "ubnu1234"},
		{"encode", "--reverse", "ubnu12345678"},
	}

	for _, args := range tests {
		_, _, err := runApp(t, "", args...)
		if !errors.Is(err, domain.ErrInvalidOTPShape) {
			t.Errorf("%v: error = %v, want ErrInvalidOTPShape", args, err)
		}
		if ExitCode(err) != ExitUsage {
			t.Errorf("%v: ExitCode() = %d, want %d", args, ExitCode(err), ExitUsage)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "", "-o", "json", "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"version", "commit", "build_time", "go_version", "platform"} {
		if info[key] == "" {
			t.Errorf("version output missing %q", key)
		}
	}
}

func TestVersion_Table(t *testing.T) {
	out, _, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "go_version") {
		t.Errorf("output = %q", out)
	}
}
