//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
	if f1.UUID() != f2.UUID() {
		t.Error("Same seed produced different UUIDs")
	}
	if f1.Name() != f2.Name() {
		t.Error("Same seed produced different names")
	}
}

func TestFakerName(t *testing.T) {
	f := NewFaker()
	if f.Name() == "" {
		t.Error("Name returned empty string")
	}
}

func TestFakerEmail(t *testing.T) {
	f := NewFaker()
	email := f.Email()
	if email == "" {
		t.Error("Email returned empty string")
	}
	if len(email) < 5 {
		t.Error("Email too short")
	}
}

func TestFakerCity(t *testing.T) {
	f := NewFaker()
	if f.City() == "" {
		t.Error("City returned empty string")
	}
}

func TestFakerCountryCode(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 20; i++ {
		code := f.CountryCode()
		if len(code) != 2 {
			t.Errorf("CountryCode should be 2 chars, got %q", code)
		}
	}
}

func TestFakerCurrencyCode(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 20; i++ {
		code := f.CurrencyCode()
		if len(code) != 3 {
			t.Errorf("CurrencyCode should be 3 chars, got %q", code)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Int(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("Int %d not in range [5, 10]", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		v := f.Float64(1.5, 3.5)
		if v < 1.5 || v > 3.5 {
			t.Errorf("Float64 %f not in range [1.5, 3.5]", v)
		}
	}
}

func TestFakerDecimal(t *testing.T) {
	f := NewFaker()
	lo := decimal.NewFromFloat(-10)
	hi := decimal.NewFromFloat(20)

	for i := 0; i < 500; i++ {
		d := f.Decimal(-10, 20, 2)
		if d.LessThan(lo) || d.GreaterThan(hi) {
			t.Fatalf("Decimal %s not in range [-10, 20]", d)
		}
		if d.Exponent() < -2 {
			t.Fatalf("Decimal %s has more than 2 decimal places", d)
		}
	}
}

func TestFakerDecimalNarrowRange(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 100; i++ {
		d := f.Decimal(0.5, 0.5, 2)
		if !d.Equal(decimal.NewFromFloat(0.5)) {
			t.Fatalf("Decimal over a point range should be 0.5, got %s", d)
		}
	}
}

func TestFakerDateRange(t *testing.T) {
	f := NewFaker()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	d := f.DateRange(start, end)
	if d.Before(start) || d.After(end) {
		t.Errorf("DateRange %v not in range [%v, %v]", d, start, end)
	}
}

func TestFakerDateBetween(t *testing.T) {
	f := NewFaker()
	start := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	lo := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		d := f.DateBetween(start, end)
		if d.Before(lo) || d.After(hi) {
			t.Fatalf("DateBetween %v not in range [%v, %v]", d, lo, hi)
		}
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Fatalf("DateBetween should return midnight, got %v", d)
		}
	}
}

func TestFakerDateBetweenSameDay(t *testing.T) {
	f := NewFaker()
	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := f.DateBetween(day, day); !got.Equal(want) {
		t.Errorf("DateBetween same day = %v, want %v", got, want)
	}
}

func TestFakerUUID(t *testing.T) {
	f := NewFaker()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := f.UUID()
		if id.Version() != 4 {
			t.Fatalf("UUID version should be 4, got %d", id.Version())
		}
		s := id.String()
		if len(s) != 36 {
			t.Fatalf("UUID length should be 36, got %d", len(s))
		}
		if seen[s] {
			t.Fatalf("duplicate UUID %s", s)
		}
		seen[s] = true
	}
}

func TestFakerRead(t *testing.T) {
	f := NewFakerWithSeed(7)
	buf := make([]byte, 64)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Read returned %d, want %d", n, len(buf))
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 100; i++ {
		chosen := Choose(f, items)
		found := false
		for _, item := range items {
			if item == chosen {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Choose returned item not in slice: %s", chosen)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker()
	var items []string

	chosen := Choose(f, items)
	if chosen != "" {
		t.Errorf("Choose on empty slice should return zero value, got: %s", chosen)
	}
}

// Benchmarks
func BenchmarkFakerInt(b *testing.B) {
	f := NewFaker()
	for i := 0; i < b.N; i++ {
		f.Int(0, 1000)
	}
}

func BenchmarkFakerUUID(b *testing.B) {
	f := NewFaker()
	for i := 0; i < b.N; i++ {
		f.UUID()
	}
}

func BenchmarkFakerDecimal(b *testing.B) {
	f := NewFaker()
	for i := 0; i < b.N; i++ {
		f.Decimal(10, 10000, 2)
	}
}
