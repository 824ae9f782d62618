package logfields

import (
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"ParseID", KeyParseID, "abc", ParseID("abc")},
		{"Path", KeyPath, "/tmp/x.txt", Path("/tmp/x.txt")},
		{"Size", KeySize, "1.2 kB", Size("1.2 kB")},
		{"Encoding", KeyEncoding, "latin1", Encoding("latin1")},
		{"Outcome", KeyOutcome, "partial", Outcome("partial")},
		{"Construct", KeyConstruct, "<div>", Construct("<div>")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
		{"Listen", KeyListen, ":9090", Listen(":9090")},
		{"ConfigFile", KeyConfigFile, "markup.yaml", ConfigFile("markup.yaml")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Bytes(5); v.Key != KeyBytes || v.Value.Int64() != 5 {
		t.Fatalf("Bytes mismatch: %v", v)
	}
	if v := Offset(7); v.Key != KeyOffset {
		t.Fatalf("Offset key mismatch: %s", v.Key)
	}
	if v := Line(2); v.Key != KeyLine {
		t.Fatalf("Line key mismatch: %s", v.Key)
	}
	if v := Column(3); v.Key != KeyColumn {
		t.Fatalf("Column key mismatch: %s", v.Key)
	}
	if v := Nodes(9); v.Key != KeyNodes {
		t.Fatalf("Nodes key mismatch: %s", v.Key)
	}
	if v := Depth(200); v.Key != KeyDepth {
		t.Fatalf("Depth key mismatch: %s", v.Key)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
	if v := Complete(true); v.Key != KeyComplete || !v.Value.Bool() {
		t.Fatalf("Complete mismatch: %v", v)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
