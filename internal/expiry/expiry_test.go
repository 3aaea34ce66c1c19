package expiry

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Month
	}{
		{"01/2030", Month{2030, time.January}},
		{"122030", Month{2030, time.December}},
		{"06/30", Month{2030, time.June}},
		{"0630", Month{2030, time.June}},
		{"06/0030", Month{2030, time.June}},
		{"12/9999", Month{9999, time.December}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) got %v want %v", c.in, got, c.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{
		"", "/", "05.2030", "05-2030", "1/2030", "06/1", "-/-", "13/2030", "00/2030",
		"06/999", "06/20255123142312343212234234234234234", "061231245131242131231231212412312/2025",
		"06//2030", " 06/2030", "06/2030\n",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrFormat) {
			t.Fatalf("Parse(%q) expected ErrFormat, got %v", in, err)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	// 2030-02 (non-leap): 28th 23:59:59.999999999
	m := Month{2030, time.February}
	if got, want := m.Start(nil), time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("Start got %v want %v", got, want)
	}
	if got, want := m.End(nil), time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC); !got.Equal(want) {
		t.Fatalf("End got %v want %v", got, want)
	}

	// December rolls over into the next year.
	m = Month{2029, time.December}
	if got, want := m.End(time.UTC), time.Date(2029, time.December, 31, 23, 59, 59, 999999999, time.UTC); !got.Equal(want) {
		t.Fatalf("End got %v want %v", got, want)
	}
}

func TestIsExpired(t *testing.T) {
	m := Month{2030, time.February}
	end := m.End(time.UTC)

	if IsExpired(m, m.Start(time.UTC), time.UTC) {
		t.Fatalf("expected not expired at start of month")
	}
	if IsExpired(m, end, time.UTC) {
		t.Fatalf("expected not expired at end instant")
	}
	if !IsExpired(m, end.Add(time.Nanosecond), time.UTC) {
		t.Fatalf("expected expired after %v", end)
	}
}

func TestFormats(t *testing.T) {
	m := Month{2030, time.October}
	if got := CardFace(m); got != "10/30" {
		t.Fatalf("CardFace got %s want %s", got, "10/30")
	}
	if got := m.String(); got != "10/2030" {
		t.Fatalf("String got %s want %s", got, "10/2030")
	}
}
