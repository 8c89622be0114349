package fonts

import (
	"math"
	"testing"
)

func TestMeasureString(t *testing.T) {
	cases := []struct {
		text string
		size float64
		want float64
	}{
		{"", 12, 0},
		{"0", 10, 5.56},                     // digit width 556
		{"j100", 2.5, (278 + 3*556) * 2.5 / 1000},
		{"M", 1000, 833},
		{"é", 4, 556 * 4.0 / 1000},     // unknown rune falls back to 556
	}
	for _, c := range cases {
		got := MeasureString(c.text, c.size)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("MeasureString(%q, %v) = %v, want %v", c.text, c.size, got, c.want)
		}
	}
}

func TestMeasureStringScalesLinearly(t *testing.T) {
	small := MeasureString("CISCO", 1)
	big := MeasureString("CISCO", 10)
	if math.Abs(big-10*small) > 1e-9 {
		t.Errorf("width at size 10 = %v, want %v", big, 10*small)
	}
}
