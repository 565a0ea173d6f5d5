package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTable = "date,site,serial,token,user\n" +
	"2024-01-02,HQ,1001,ubnucbdefghi,alice\n" +
	"2024-01-03,HQ,1002,ubnukkkkkkkk,bob\n" +
	"2024-01-04,Lab,1003,ubnucccccccc,Alice\n"

// isolate points HOME at an empty directory and clears OTPOWNER_*
// variables so the developer's own configuration does not leak in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "OTPOWNER_") {
			key := strings.SplitN(kv, "=", 2)[0]
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return home
}

// writeTable writes content to a temporary table file.
func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// runApp runs the application with stdin and returns stdout, stderr and
// the error returned by Run.
func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)

	app := App()
	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"otpowner"}, args...))
	return out.String(), errOut.String(), err
}
