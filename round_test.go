package softfloat16

import "testing"

func TestRoundTiesEven(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint16
	}{
		{"already integral", 0x4200, 0x4200}, // 3.0
		{"round down", 0x3D90, 0x3C00},       // ~1.39 -> 1.0
		{"round up", 0x4199, 0x4200},         // 2.8 -> 3.0
		{"0x47ff", 0x47ff, 0x4800},
		{"small fraction to zero", 0x1400, 0x0000},
		{"negative small fraction", 0x9400, 0x8000},
		{"NaN passthrough", uint16(NaN), uint16(NaN)},
		{"+inf passthrough", uint16(PosInf), uint16(PosInf)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTiesEven(FromBits(tt.in))
			if ToBits(got) != tt.want {
				t.Errorf("RoundTiesEven(%#04x) = %#04x, want %#04x", tt.in, ToBits(got), tt.want)
			}
		})
	}
}

func TestRoundTiesEvenToEven(t *testing.T) {
	// 0.5 rounds to 0 (even); 1.5 rounds to 2 (even); 2.5 rounds to 2 (even).
	half := FromBits(0x3800)
	if got := RoundTiesEven(half); got != PosZero {
		t.Errorf("RoundTiesEven(0.5) = %#04x, want +0", ToBits(got))
	}
	onePointFive := FromBits(0x3E00)
	if got := RoundTiesEven(onePointFive); got != FromBits(0x4000) {
		t.Errorf("RoundTiesEven(1.5) = %#04x, want 2.0", ToBits(got))
	}
	twoPointFive := FromBits(0x4100)
	if got := RoundTiesEven(twoPointFive); got != FromBits(0x4000) {
		t.Errorf("RoundTiesEven(2.5) = %#04x, want 2.0", ToBits(got))
	}
}
