package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain", "75.25", 7525, false},
		{"integer", "1000", 100000, false},
		{"one fractional digit", "12.3", 1230, false},
		{"negative allowed", "-5.00", -500, false},
		{"whitespace trimmed", " 12.34 ", 1234, false},
		{"three fractional digits rejected", "12.345", 0, true},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"double dot", "1.2.3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got.Cents != tt.want {
				t.Errorf("ParseAmount(%q) = %d cents, want %d", tt.input, got.Cents, tt.want)
			}
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	if _, err := ParsePositiveAmount("0"); err == nil {
		t.Error("zero should be rejected")
	}
	if _, err := ParsePositiveAmount("-1.50"); err == nil {
		t.Error("negative should be rejected")
	}
	if m, err := ParsePositiveAmount("0.01"); err != nil || m.Cents != 1 {
		t.Errorf("ParsePositiveAmount(0.01) = %v, %v", m, err)
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{7525, "75.25"},
		{-7525, "-75.25"},
		{0, "0.00"},
		{5, "0.05"},
		{100000, "1000.00"},
	}
	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Amount Money `json:"amount"`
	}

	data, err := json.Marshal(wrapper{Amount: Money{Cents: 342475}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"amount":3424.75}` {
		t.Errorf("marshal = %s, want {\"amount\":3424.75}", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"amount":"75.25"}`), &w); err != nil {
		t.Fatalf("unmarshal quoted: %v", err)
	}
	if w.Amount.Cents != 7525 {
		t.Errorf("unmarshal quoted = %d cents, want 7525", w.Amount.Cents)
	}

	if err := json.Unmarshal([]byte(`{"amount":75.25}`), &w); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if w.Amount.Cents != 7525 {
		t.Errorf("unmarshal number = %d cents, want 7525", w.Amount.Cents)
	}
}
