package usecase

import (
	"errors"
	"testing"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "two decimal places", amount: 29.99, want: 2999},
		{name: "tenth", amount: 0.1, want: 10},
		{name: "whole amount", amount: 10, want: 1000},
		{name: "single cent", amount: 0.01, want: 1},
		{name: "half cent rounds up", amount: 1.005, want: 101},
		{name: "large amount", amount: 199999.99, want: 19999999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MinorUnits(tc.amount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("zero amount", func(t *testing.T) {
		if _, err := MinorUnits(0); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		if _, err := MinorUnits(-10.50); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("float artifacts do not leak", func(t *testing.T) {
		// 0.29*100 is 28.999... in binary floating point.
		got, err := MinorUnits(0.29)
		if err != nil || got != 29 {
			t.Fatalf("expected 29, got %d err=%v", got, err)
		}
	})
}
