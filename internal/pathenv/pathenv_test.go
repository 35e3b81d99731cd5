package pathenv

import (
	"os"
	"reflect"
	"testing"
)

func TestEntries(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "/usr/bin", []string{"/usr/bin"}},
		{"ordered", "/usr/local/bin" + sep + "/usr/bin" + sep + "/bin", []string{"/usr/local/bin", "/usr/bin", "/bin"}},
		{"empty segments dropped", sep + "/usr/bin" + sep + sep + "/bin" + sep, []string{"/usr/bin", "/bin"}},
		{"whitespace trimmed", "  /usr/bin " + sep + "   " + sep + "/bin", []string{"/usr/bin", "/bin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entries(tt.raw)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
