package softfloat16

import "testing"

func TestNeg(t *testing.T) {
	if got := Neg(FromBits(0x3C00)); got != FromBits(0xBC00) {
		t.Errorf("Neg(1.0) = %#04x, want -1.0", ToBits(got))
	}
	if got := Neg(PosZero); got != NegZero {
		t.Errorf("Neg(+0) = %#04x, want -0", ToBits(got))
	}
	if got := Neg(NaN); got != NaN {
		t.Errorf("Neg(NaN) = %#04x, want NaN", ToBits(got))
	}
	if got := Neg(PosInf); got != NegInf {
		t.Errorf("Neg(+Inf) = %#04x, want -Inf", ToBits(got))
	}
}

func TestEq(t *testing.T) {
	tests := []struct {
		name string
		a, b Float16
		want bool
	}{
		{"equal values", FromBits(0x3C00), FromBits(0x3C00), true},
		{"signed zeros", PosZero, NegZero, true},
		{"nan unequal to itself", NaN, NaN, false},
		{"nan unequal to anything", NaN, FromBits(0x3C00), false},
		{"different values", FromBits(0x3C00), FromBits(0x4000), false},
	}
	for _, tt := range tests {
		if got := Eq(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Eq = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Float16
		wantOrder Ordering
		wantOK    bool
	}{
		{"equal", FromBits(0x3C00), FromBits(0x3C00), Equal, true},
		{"signed zeros equal", PosZero, NegZero, Equal, true},
		{"less", FromBits(0x3C00), FromBits(0x4000), Less, true},
		{"greater", FromBits(0x4000), FromBits(0x3C00), Greater, true},
		{"positive beats negative", FromBits(0x3C00), FromBits(0xBC00), Greater, true},
		{"more negative is less", FromBits(0xC000), FromBits(0xBC00), Less, true},
		{"nan unordered", NaN, FromBits(0x3C00), 0, false},
	}
	for _, tt := range tests {
		order, ok := Cmp(tt.a, tt.b)
		if ok != tt.wantOK {
			t.Errorf("%s: Cmp ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && order != tt.wantOrder {
			t.Errorf("%s: Cmp order = %v, want %v", tt.name, order, tt.wantOrder)
		}
	}
}

func TestOrderingPredicates(t *testing.T) {
	one, two := FromBits(0x3C00), FromBits(0x4000)
	if !Lt(one, two) || Lt(two, one) {
		t.Errorf("Lt disagrees with 1.0 < 2.0")
	}
	if !Le(one, one) || !Gt(two, one) || !Ge(one, one) {
		t.Errorf("Le/Gt/Ge disagree with expected relations")
	}
	if Lt(NaN, one) || Le(NaN, one) || Gt(NaN, one) || Ge(NaN, one) {
		t.Errorf("NaN comparisons should all be false")
	}
}
