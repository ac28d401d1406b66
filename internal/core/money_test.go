package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // half-up on third decimal
		{"12.344", 1234, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", -500, true},
		{"-0.5", -50, true},
		{".5", 50, true},
		{"125.50", 12550, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseDecimal(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDecimal(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("ParseDecimal(%q): expected error", tc.in)
			}
			continue
		}
		if m.Cents != tc.cents {
			t.Fatalf("ParseDecimal(%q) = %d cents, want %d", tc.in, m.Cents, tc.cents)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{12550, "125.50"},
		{4500, "45.00"},
		{8999, "89.99"},
		{5, "0.05"},
		{0, "0.00"},
		{-405, "-4.05"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 12550})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "125.50" {
		t.Fatalf("marshal = %s, want 125.50", b)
	}

	var m Money
	if err := json.Unmarshal([]byte("45.005"), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if m.Cents != 4501 {
		t.Fatalf("unmarshal number = %d cents, want 4501", m.Cents)
	}
	if err := json.Unmarshal([]byte(`"89.99"`), &m); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if m.Cents != 8999 {
		t.Fatalf("unmarshal string = %d cents, want 8999", m.Cents)
	}
}
