package dsl

import (
	"fmt"
	"math"
	"strings"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/i18n"
	js "github.com/reoring/assetskema/jsonschema"
)

// bounds holds the optional numeric limits shared by Int and Number.
type bounds struct {
	gt, ge, lt, le *float64
}

func fptr(v float64) *float64 { return &v }

// lower returns the effective lower bound; when both gt and ge are set the
// stricter wins.
func (b bounds) lower() (v float64, exclusive, ok bool) {
	switch {
	case b.gt != nil && b.ge != nil:
		if *b.gt >= *b.ge {
			return *b.gt, true, true
		}
		return *b.ge, false, true
	case b.gt != nil:
		return *b.gt, true, true
	case b.ge != nil:
		return *b.ge, false, true
	}
	return 0, false, false
}

func (b bounds) upper() (v float64, exclusive, ok bool) {
	switch {
	case b.lt != nil && b.le != nil:
		if *b.lt <= *b.le {
			return *b.lt, true, true
		}
		return *b.le, false, true
	case b.lt != nil:
		return *b.lt, true, true
	case b.le != nil:
		return *b.le, false, true
	}
	return 0, false, false
}

func (b bounds) String() string {
	var parts []string
	for _, p := range []struct {
		op string
		v  *float64
	}{{"gt", b.gt}, {"ge", b.ge}, {"lt", b.lt}, {"le", b.le}} {
		if p.v != nil {
			parts = append(parts, p.op+" "+formatNumber(*p.v))
		}
	}
	return strings.Join(parts, ", ")
}

// check rejects bounds that no value can satisfy. For integer fields the
// range is evaluated over integers, so gt 0 with lt 1 is empty.
func (b bounds) check(integer bool) error {
	for _, p := range []*float64{b.gt, b.ge, b.lt, b.le} {
		if p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
			return fmt.Errorf("bound %v is not a finite number", *p)
		}
	}
	lo, loEx, okLo := b.lower()
	hi, hiEx, okHi := b.upper()
	if !okLo || !okHi {
		return nil
	}
	if integer {
		min := math.Ceil(lo)
		if loEx && min == lo {
			min++
		}
		max := math.Floor(hi)
		if hiEx && max == hi {
			max--
		}
		if min > max {
			return fmt.Errorf("no integer satisfies %s", b)
		}
		return nil
	}
	if lo > hi || (lo == hi && (loEx || hiEx)) {
		return fmt.Errorf("no number satisfies %s", b)
	}
	return nil
}

// apply checks f against the bounds. got is the coerced value reported in
// the issue; limit converts a bound into the field's value type.
func (b bounds) apply(f float64, got any, limit func(float64) any) assetskema.Issues {
	if lo, ex, ok := b.lower(); ok && (f < lo || (ex && f == lo)) {
		code := assetskema.CodeTooSmall
		key := code
		if ex {
			key = "too_small_exclusive"
		}
		return assetskema.Issues{{
			Path:    "/",
			Code:    code,
			Message: i18n.T(key, map[string]string{"limit": formatNumber(lo)}),
			Params:  map[string]any{assetskema.ParamGot: got, assetskema.ParamLimit: limit(lo), assetskema.ParamInclusive: !ex},
		}}
	}
	if hi, ex, ok := b.upper(); ok && (f > hi || (ex && f == hi)) {
		code := assetskema.CodeTooBig
		key := code
		if ex {
			key = "too_big_exclusive"
		}
		return assetskema.Issues{{
			Path:    "/",
			Code:    code,
			Message: i18n.T(key, map[string]string{"limit": formatNumber(hi)}),
			Params:  map[string]any{assetskema.ParamGot: got, assetskema.ParamLimit: limit(hi), assetskema.ParamInclusive: !ex},
		}}
	}
	return nil
}

// project writes the bounds into s.
func (b bounds) project(s *js.Schema) {
	if lo, ex, ok := b.lower(); ok {
		if ex {
			s.ExclusiveMinimum = fptr(lo)
		} else {
			s.Minimum = fptr(lo)
		}
	}
	if hi, ex, ok := b.upper(); ok {
		if ex {
			s.ExclusiveMaximum = fptr(hi)
		} else {
			s.Maximum = fptr(hi)
		}
	}
}
