package format

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{0, "0µs"},
		{15 * time.Millisecond, "15ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2*time.Minute + 3*time.Second, "2m3s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncateDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		in           string
		limit, edges int
		want         string
	}{
		{"short", "12345", 10, 2, "12345"},
		{"at limit", "1234567890", 10, 2, "1234567890"},
		{"long", "123456789012", 10, 3, "123...012"},
		{"negative", "-123456789012", 10, 3, "-123...012"},
		{"edges cover", "123456", 4, 3, "123456"},
		{"empty", "", 4, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateDigits(tt.in, tt.limit, tt.edges); got != tt.want {
				t.Errorf("TruncateDigits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	t.Parallel()
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
		-12:      "-12",
	}
	for in, want := range tests {
		if got := GroupThousands(in); got != want {
			t.Errorf("GroupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := map[uint64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KiB",
		1536:            "1.5 KiB",
		64 * 1024 * 1024: "64.0 MiB",
		3 << 30:         "3.0 GiB",
	}
	for in, want := range tests {
		if got := FormatBytes(in); got != want {
			t.Errorf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		width    int
		filled   int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{1, 10, 10},
		{1.7, 10, 10},
		{-0.3, 10, 0},
	}
	for _, tt := range tests {
		bar := FormatProgressBar(tt.progress, tt.width)
		if n := utf8.RuneCountInString(bar); n != tt.width {
			t.Errorf("bar width for %v = %d, want %d", tt.progress, n, tt.width)
		}
		filled := 0
		for _, r := range bar {
			if r == '█' {
				filled++
			}
		}
		if filled != tt.filled {
			t.Errorf("filled cells for %v = %d, want %d", tt.progress, filled, tt.filled)
		}
	}
	if FormatProgressBar(0.5, 0) != "" {
		t.Error("zero width should render empty")
	}
}
