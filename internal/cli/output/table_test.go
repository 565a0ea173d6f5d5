package output

import (
	"bytes"
	"strings"
	"testing"
)

type ownerRow struct {
	owner, token string
}

func (r ownerRow) Table() *Table {
	t := NewTable("OWNER", "TOKEN")
	t.AddRow(r.owner, r.token)
	return t
}

func TestTable_Render(t *testing.T) {
	table := NewTable("RAW", "ENCODED", "OWNER")
	table.AddRow("ubnu12345678", "ubnubdefghij", "alice")
	table.AddRow("ubnu00000001", "ubnucccccccb", "")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "RAW           ENCODED       OWNER\n" +
		"ubnu12345678  ubnubdefghij  alice\n" +
		"ubnu00000001  ubnucccccccb  -\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		data      any
		noHeaders bool
		want      []string
		notWant   []string
	}{
		{
			name: "table pointer",
			data: &Table{Headers: []string{"NAME"}, Rows: [][]string{{"key1"}}},
			want: []string{"NAME", "key1"},
		},
		{
			name: "table value",
			data: Table{Headers: []string{"COL"}, Rows: [][]string{{"data"}}},
			want: []string{"COL", "data"},
		},
		{
			name: "tabular",
			data: ownerRow{owner: "bob", token: "ubnukkkkkkkk"},
			want: []string{"OWNER", "bob", "ubnukkkkkkkk"},
		},
		{
			name:      "no headers",
			data:      ownerRow{owner: "bob", token: "ubnukkkkkkkk"},
			noHeaders: true,
			want:      []string{"bob"},
			notWant:   []string{"OWNER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &TableFormatter{NoHeaders: tt.noHeaders}
			if err := f.Format(&buf, tt.data); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("Format() missing %q in %q", s, buf.String())
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(buf.String(), s) {
					t.Errorf("Format() should not contain %q", s)
				}
			}
		})
	}
}

func TestTableFormatter_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q", buf.String())
	}
}
