package algebra

import "testing"

func TestAnd(t *testing.T) {
	cases := []struct {
		l, r Fulfilled
		want Fulfilled
	}{
		{TRUE, TRUE, TRUE},
		{TRUE, FALSE, FALSE},
		{FALSE, FALSE, FALSE},
		{TRUE, UNKNOWN, UNKNOWN},
		{FALSE, UNKNOWN, FALSE},
		{UNKNOWN, UNKNOWN, UNKNOWN},
		{TRUE, NEUTRAL, TRUE},
		{NEUTRAL, FALSE, FALSE},
		{NEUTRAL, UNKNOWN, UNKNOWN},
		{NEUTRAL, NEUTRAL, NEUTRAL},
	}
	for _, c := range cases {
		if got := And(c.l, c.r); got != c.want {
			t.Errorf("And(%s, %s) = %s, want %s", c.l, c.r, got, c.want)
		}
		if got := And(c.r, c.l); got != c.want {
			t.Errorf("And(%s, %s) = %s, want %s (commuted)", c.r, c.l, got, c.want)
		}
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		l, r Fulfilled
		want Fulfilled
	}{
		{TRUE, TRUE, TRUE},
		{TRUE, FALSE, TRUE},
		{FALSE, FALSE, FALSE},
		{FALSE, UNKNOWN, UNKNOWN},
		{TRUE, UNKNOWN, TRUE},
		{UNKNOWN, UNKNOWN, UNKNOWN},
	}
	for _, c := range cases {
		got, err := Or(c.l, c.r)
		if err != nil {
			t.Fatalf("Or(%s, %s) returned unexpected error: %v", c.l, c.r, err)
		}
		if got != c.want {
			t.Errorf("Or(%s, %s) = %s, want %s", c.l, c.r, got, c.want)
		}
	}
}

func TestOrNeutralIsError(t *testing.T) {
	for _, other := range []Fulfilled{TRUE, FALSE, UNKNOWN, NEUTRAL} {
		if _, err := Or(NEUTRAL, other); err == nil {
			t.Errorf("Or(NEUTRAL, %s) should have returned an error", other)
		}
		if _, err := Or(other, NEUTRAL); err == nil {
			t.Errorf("Or(%s, NEUTRAL) should have returned an error", other)
		}
	}
}

func TestXor(t *testing.T) {
	cases := []struct {
		l, r Fulfilled
		want Fulfilled
	}{
		{TRUE, TRUE, FALSE},
		{TRUE, FALSE, TRUE},
		{FALSE, FALSE, FALSE},
		{UNKNOWN, TRUE, UNKNOWN},
		{UNKNOWN, UNKNOWN, UNKNOWN},
	}
	for _, c := range cases {
		got, err := Xor(c.l, c.r)
		if err != nil {
			t.Fatalf("Xor(%s, %s) returned unexpected error: %v", c.l, c.r, err)
		}
		if got != c.want {
			t.Errorf("Xor(%s, %s) = %s, want %s", c.l, c.r, got, c.want)
		}
	}
}

func TestXorNeutralIsError(t *testing.T) {
	if _, err := Xor(NEUTRAL, TRUE); err == nil {
		t.Error("Xor(NEUTRAL, TRUE) should have returned an error")
	}
}

func TestBool(t *testing.T) {
	if !TRUE.Bool() {
		t.Error("TRUE.Bool() should be true")
	}
	for _, f := range []Fulfilled{FALSE, UNKNOWN, NEUTRAL} {
		if f.Bool() {
			t.Errorf("%s.Bool() should be false", f)
		}
	}
}
