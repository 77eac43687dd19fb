package layout

import "testing"

func TestPx_Arithmetic(t *testing.T) {
	type tc struct {
		got  Px
		want Px
	}

	tests := map[string]tc{
		"add finite":            {got: Px(3).Add(4), want: 7},
		"add infinity":          {got: Infinity.Add(5), want: Infinity},
		"infinity plus n":       {got: Px(5).Add(Infinity), want: Infinity},
		"sub keeps infinity":    {got: Infinity.Sub(100), want: Infinity},
		"sub finite":            {got: Px(3).Sub(10), want: -7},
		"finite minus infinity": {got: Px(5).Sub(Infinity), want: -Infinity},
		"scale rounds":          {got: Px(5).Scale(0.5), want: 3},
		"scale infinity":        {got: Infinity.Scale(0.1), want: Infinity},
		"div":                   {got: Px(60).Div(2), want: 30},
		"clamp high":            {got: Px(50).Clamp(0, 40), want: 40},
		"clamp low wins":        {got: Px(50).Clamp(60, 40), want: 60},
		"clamp into unbounded":  {got: Px(50).Clamp(0, Infinity), want: 50},
		"coerce at least":       {got: Px(-3).CoerceAtLeast(0), want: 0},
		"min with infinity":     {got: MinPx(Infinity, 12), want: 12},
		"max with infinity":     {got: MaxPx(Infinity, 12), want: Infinity},
		"saturating large adds": {got: (Infinity - 1).Add(Infinity - 1), want: Infinity},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestPx_String(t *testing.T) {
	if got := Px(12).String(); got != "12px" {
		t.Errorf("String() = %q, want %q", got, "12px")
	}
	if got := Infinity.String(); got != "inf" {
		t.Errorf("String() = %q, want %q", got, "inf")
	}
}
