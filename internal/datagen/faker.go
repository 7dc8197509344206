//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Faker provides fake data generation using gofakeit. Every random draw of
// a generation run goes through one Faker, so a seeded Faker reproduces the
// whole run. A Faker is not safe for concurrent use.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// CountryCode generates a random ISO 3166 alpha-2 country code.
func (f *Faker) CountryCode() string {
	return f.faker.CountryAbr()
}

// CurrencyCode generates a random ISO 4217 currency code.
func (f *Faker) CurrencyCode() string {
	return f.faker.CurrencyShort()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Decimal generates a decimal in [min, max] rounded to the given number of
// places. Rounding never pushes the value outside the range.
func (f *Faker) Decimal(min, max float64, places int32) decimal.Decimal {
	lo := decimal.NewFromFloat(min)
	hi := decimal.NewFromFloat(max)

	d := decimal.NewFromFloat(f.Float64(min, max)).Round(places)
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// DateRange generates a random time within a range.
func (f *Faker) DateRange(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// DateBetween generates a random calendar date in [start, end], truncated
// to midnight UTC.
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	lo := truncateDay(start)
	hi := truncateDay(end)
	if !hi.After(lo) {
		return lo
	}
	days := int(hi.Sub(lo).Hours() / 24)
	return lo.AddDate(0, 0, f.Int(0, days))
}

// UUID generates a random version 4 UUID drawn from this Faker.
func (f *Faker) UUID() uuid.UUID {
	// Read never fails, so neither does NewRandomFromReader.
	id, _ := uuid.NewRandomFromReader(f)
	return id
}

// Read fills p with random bytes, making Faker an io.Reader.
func (f *Faker) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.faker.Uint8()
	}
	return len(p), nil
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
