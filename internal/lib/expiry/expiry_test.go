package expiry

import (
	"errors"
	"testing"
	"time"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/displaydate"
)

func TestExpirationDate_TableTests(t *testing.T) {
	tests := []struct {
		name    string
		period  string
		start   string
		want    string
		wantErr bool
	}{
		{
			name:   "mensal adds 30 days",
			period: Mensal,
			start:  "01/01/2022",
			want:   "31/01/2022",
		},
		{
			name:   "anual adds 365 days",
			period: Anual,
			start:  "01/01/2022",
			want:   "01/01/2023",
		},
		{
			name:   "trimestral adds 90 days",
			period: Trimestral,
			start:  "01/01/2022",
			want:   "01/04/2022",
		},
		{
			name:   "semestral adds 180 days",
			period: Semestral,
			start:  "01/01/2022",
			want:   "30/06/2022",
		},
		{
			name:   "mensal rolls over month and year",
			period: Mensal,
			start:  "15/12/2022",
			want:   "14/01/2023",
		},
		{
			name:   "mensal over february in leap year",
			period: Mensal,
			start:  "15/02/2024",
			want:   "16/03/2024",
		},
		{
			name:    "unknown period label",
			period:  "Quinzenal",
			start:   "01/01/2022",
			wantErr: true,
		},
		{
			name:    "empty period label",
			period:  "",
			start:   "01/01/2022",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := displaydate.Parse(tt.start)
			if err != nil {
				t.Fatalf("bad test fixture %q: %v", tt.start, err)
			}
			got, err := ExpirationDate(tt.period, start)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPeriod) {
					t.Errorf("ExpirationDate(%q) error = %v, want ErrUnknownPeriod", tt.period, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpirationDate(%q, %q) unexpected error: %v", tt.period, tt.start, err)
			}
			if formatted := displaydate.Format(got); formatted != tt.want {
				t.Errorf("ExpirationDate(%q, %q) = %q, want %q", tt.period, tt.start, formatted, tt.want)
			}
		})
	}
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		finish time.Time
		want   int
	}{
		{name: "expires in ten days", finish: now.AddDate(0, 0, 10), want: 10},
		{name: "expires today", finish: now, want: 0},
		{name: "already expired", finish: now.AddDate(0, 0, -3), want: -3},
		{name: "expires exactly at threshold", finish: now.AddDate(0, 0, 7), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysLeft(tt.finish, now); got != tt.want {
				t.Errorf("DaysLeft(%v, %v) = %d, want %d", tt.finish, now, got, tt.want)
			}
		})
	}
}

func TestShouldNotify_FlipsExactlyAtThreshold(t *testing.T) {
	tests := []struct {
		daysLeft int
		want     bool
	}{
		{daysLeft: -1, want: true},
		{daysLeft: 0, want: true},
		{daysLeft: 6, want: true},
		{daysLeft: 7, want: false},
		{daysLeft: 8, want: false},
		{daysLeft: 365, want: false},
	}
	for _, tt := range tests {
		if got := ShouldNotify(tt.daysLeft); got != tt.want {
			t.Errorf("ShouldNotify(%d) = %v, want %v", tt.daysLeft, got, tt.want)
		}
	}
}
