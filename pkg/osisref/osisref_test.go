package osisref

import "testing"

func TestParseSingle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Ref
		wantErr bool
	}{
		{name: "ordinary verse", in: "Gen.1.1", want: Ref{"Gen", 1, 1}},
		{name: "verse zero", in: "Ps.3.0", want: Ref{"Ps", 3, 0}},
		{name: "missing part", in: "Gen.1", wantErr: true},
		{name: "empty book", in: ".1.1", wantErr: true},
		{name: "non-numeric chapter", in: "Gen.a.1", wantErr: true},
		{name: "negative verse", in: "Gen.1.-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSingle(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSingle(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSingle(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSingle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	start, end, isRange, err := ParseRange("Gen.1.1-Gen.1.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isRange {
		t.Fatalf("expected isRange = true")
	}
	if start != (Ref{"Gen", 1, 1}) || end != (Ref{"Gen", 1, 3}) {
		t.Errorf("got start=%v end=%v", start, end)
	}

	start, end, isRange, err = ParseRange("Gen.1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isRange {
		t.Fatalf("expected isRange = false")
	}
	if start != end {
		t.Errorf("single ref should return start == end, got %v / %v", start, end)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(Ref{"Gen", 1, 1}); got != "Gen.1.1" {
		t.Errorf("Format = %q, want Gen.1.1", got)
	}
	if got := FormatRange(Ref{"Gen", 1, 1}, Ref{"Gen", 1, 1}); got != "Gen.1.1" {
		t.Errorf("FormatRange (equal) = %q, want Gen.1.1", got)
	}
	if got := FormatRange(Ref{"Gen", 1, 1}, Ref{"Gen", 1, 3}); got != "Gen.1.1-Gen.1.3" {
		t.Errorf("FormatRange = %q, want Gen.1.1-Gen.1.3", got)
	}
}
