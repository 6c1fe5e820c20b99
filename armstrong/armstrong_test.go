package armstrong

import "testing"

func TestCheck(t *testing.T) {
	tests := map[uint64]bool{
		0:      true,
		1:      true,
		9:      true,
		10:     false,
		153:    true,
		154:    false,
		370:    true,
		371:    true,
		407:    true,
		9474:   true,
		9475:   false,
		548834: true,
	}

	for n, expected := range tests {
		r := Check(n)
		if r.IsArmstrong != expected {
			t.Fatalf("%d should have been %t, sum was %d", n, expected, r.Sum)
		}
	}
}

func TestExplain(t *testing.T) {
	r := Check(153)
	if got, want := r.Explain(), "1^3 + 5^3 + 3^3 = 1 + 125 + 27 = 153"; got != want {
		t.Fatalf("expected %q got %q", want, got)
	}

	r = Check(12)
	if got, want := r.Explain(), "1^2 + 2^2 = 1 + 4 = 5 (≠ 12)"; got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestCheckTwentyDigits(t *testing.T) {
	r := Check(17999999999999999999)
	if r.IsArmstrong {
		t.Fatal("17999999999999999999 is not an Armstrong number")
	}

	if got, want := r.Sum.String(), "218917770529322330420"; got != want {
		t.Fatalf("expected sum %s, got %s", want, got)
	}

	if got, want := r.Powers[1].String(), "12157665459056928801"; got != want {
		t.Fatalf("expected 9^20 = %s, got %s", want, got)
	}
}

func TestParse(t *testing.T) {
	if n, err := Parse("9474"); err != nil || n != 9474 {
		t.Fatalf("expected 9474, got %d, %v", n, err)
	}

	for _, s := range []string{"", "-1", "+5", "1.5", " 12", "abc"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected an error for %q", s)
		}
	}
}
