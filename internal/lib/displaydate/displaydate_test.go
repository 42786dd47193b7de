package displaydate

import (
	"errors"
	"testing"
	"time"
)

func TestParse_TableTests(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "regular date",
			input: "01/01/2022",
			want:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "end of year",
			input: "31/12/2022",
			want:  time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "29/02/2024",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "month out of range",
			input:   "31/13/2022",
			wantErr: true,
		},
		{
			name:    "day overflows month",
			input:   "30/02/2022",
			wantErr: true,
		},
		{
			name:    "leap day in non-leap year",
			input:   "29/02/2023",
			wantErr: true,
		},
		{
			name:    "iso format",
			input:   "2022-01-01",
			wantErr: true,
		},
		{
			name:    "two components",
			input:   "01/2022",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			input:   "aa/01/2022",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"01/01/2022",
		"15/12/2022",
		"29/02/2024",
		"09/07/1999",
		"31/01/2030",
	}
	for _, input := range inputs {
		date, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", input, err)
		}
		if got := Format(date); got != input {
			t.Errorf("Format(Parse(%q)) = %q, want the same string back", input, got)
		}
	}
}
