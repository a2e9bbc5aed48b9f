package commands

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "integer", raw: "150", want: 150},
		{name: "decimal point", raw: "99.50", want: 99.5},
		{name: "decimal comma", raw: "99,50", want: 99.5},
		{name: "surrounding spaces", raw: " 12,5 ", want: 12.5},
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "negative rejected", raw: "-10", wantErr: true},
		{name: "not a number", raw: "сто", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "infinity rejected", raw: "Inf", wantErr: true},
		{name: "nan rejected", raw: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAmount(%q) = %v, expected error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.raw, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseChannelID(t *testing.T) {
	if got := ParseChannelID("123456789012345678"); got != 123456789012345678 {
		t.Errorf("ParseChannelID() = %v", got)
	}
	if got := ParseChannelID("not-a-snowflake"); got != 0 {
		t.Errorf("ParseChannelID() = %v, want 0 on garbage", got)
	}
}
