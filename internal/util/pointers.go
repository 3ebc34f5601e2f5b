package util

import (
	"math"
	"time"
)

func StringPointer(s string) *string {
	return &s
}

func FloatPointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

// FloatOr reads an optional numeric field, falling back to def when it is
// absent.
// FloatOr also substitutes def for NaN and infinities.
func FloatOr(f *float64, def float64) float64 {
	if f == nil || !IsFinite(*f) {
		return def
	}
	return *f
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FinitePointer drops NaN and infinite values.
func FinitePointer(f *float64) *float64 {
	if f == nil || !IsFinite(*f) {
		return nil
	}
	return f
}

func StringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func IntOr(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}
