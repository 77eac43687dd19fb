package layout

import (
	"errors"
	"testing"
)

func TestLength_Resolve(t *testing.T) {
	type tc struct {
		length  Length
		density Density
		want    Px
	}

	tests := map[string]tc{
		"dp at density 1": {
			length:  Dp(12),
			density: DefaultDensity,
			want:    12,
		},
		"dp scaled and rounded": {
			length:  Dp(10),
			density: Density{Density: 1.55, FontScale: 1},
			want:    16,
		},
		"px ignores density": {
			length:  PxLength(7),
			density: Density{Density: 3, FontScale: 1},
			want:    7,
		},
		"infinite dp": {
			length:  InfiniteDp,
			density: Density{Density: 2, FontScale: 1},
			want:    Infinity,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.length.Resolve(tt.density); got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLength_UnitMismatch(t *testing.T) {
	dp, px := Dp(4), PxLength(4)

	if _, err := dp.Add(px); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("Add() error = %v, want ErrUnitMismatch", err)
	}
	if _, err := dp.Sub(px); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("Sub() error = %v, want ErrUnitMismatch", err)
	}
	if _, err := dp.Compare(px); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("Compare() error = %v, want ErrUnitMismatch", err)
	}
	if _, err := MaxLength(dp, px); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("MaxLength() error = %v, want ErrUnitMismatch", err)
	}
}

func TestLength_Arithmetic(t *testing.T) {
	sum, err := Dp(3).Add(Dp(4.5))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if sum != Dp(7.5) {
		t.Errorf("Add() = %v, want 7.5dp", sum)
	}

	c, err := Dp(1).Compare(Dp(2))
	if err != nil || c != -1 {
		t.Errorf("Compare() = %d, %v, want -1, nil", c, err)
	}

	smaller, err := MinLength(PxLength(9), PxLength(3))
	if err != nil || smaller != PxLength(3) {
		t.Errorf("MinLength() = %v, %v, want 3px, nil", smaller, err)
	}

	if got := Dp(2).Scale(1.5); got != Dp(3) {
		t.Errorf("Scale() = %v, want 3dp", got)
	}
}

func TestDensity_Validate(t *testing.T) {
	if err := DefaultDensity.Validate(); err != nil {
		t.Errorf("DefaultDensity.Validate() = %v, want nil", err)
	}
	if err := (Density{Density: 0, FontScale: 1}).Validate(); err == nil {
		t.Error("Validate() with zero density = nil, want error")
	}
	if got := (Density{Density: 2, FontScale: 1}).ToDp(30); got != Dp(15) {
		t.Errorf("ToDp(30) = %v, want 15dp", got)
	}
}
