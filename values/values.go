// Package values decodes numeric CSS values, such as "12px" or "50%", from
// tokens.
package values

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ericchiang/csslex"
)

// Unit is a CSS unit.
type Unit int

const (
	None Unit = iota
	Percent
	Pixel
	Point
	EM
	REM
	ViewportWidth
	ViewportHeight
	Second
	Millisecond
	Degree
)

// Category groups units by the quantity they measure.
type Category int

const (
	Unitless Category = iota
	Percentage
	Length
	Time
	Angle
)

type unitInfo struct {
	literal  string
	name     string
	category Category
}

var units = map[Unit]unitInfo{
	None:           {"", "None", Unitless},
	Percent:        {"%", "Percentage", Percentage},
	Pixel:          {"px", "Pixel", Length},
	Point:          {"pt", "Point", Length},
	EM:             {"em", "EM", Length},
	REM:            {"rem", "REM", Length},
	ViewportWidth:  {"vw", "Viewport Width", Length},
	ViewportHeight: {"vh", "Viewport Height", Length},
	Second:         {"s", "Second", Time},
	Millisecond:    {"ms", "Millisecond", Time},
	Degree:         {"deg", "Degree", Angle},
}

// String returns the literal used to write the unit, for example "px".
func (u Unit) String() string {
	if info, ok := units[u]; ok {
		return info.literal
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Name returns a human readable name of the unit.
func (u Unit) Name() string {
	return units[u].name
}

// Category returns what the unit measures.
func (u Unit) Category() Category {
	return units[u].category
}

// LookupUnit returns the unit written as name. The lookup is case-insensitive.
// The empty string is None.
func LookupUnit(name string) (Unit, bool) {
	for u, info := range units {
		if strings.EqualFold(name, info.literal) {
			return u, true
		}
	}
	return None, false
}

// NumericValue is a number with an optional unit.
type NumericValue struct {
	Number float64
	Unit   Unit
}

func (v NumericValue) String() string {
	return strconv.FormatFloat(v.Number, 'f', -1, 64) + v.Unit.String()
}

// ErrUnknownUnit is wrapped by errors for dimensions whose unit isn't known.
var ErrUnknownUnit = errors.New("unknown unit")

// FromToken decodes a <number-token>, <percentage-token>, or
// <dimension-token>.
func FromToken(t csslex.Token) (NumericValue, error) {
	n, err := csslex.ParseNumber(t)
	if err != nil {
		return NumericValue{}, err
	}
	switch t.Kind {
	case csslex.Percentage:
		return NumericValue{n, Percent}, nil
	case csslex.Dimension:
		unit := t.UnescapeUnit()
		u, ok := LookupUnit(unit)
		if !ok {
			return NumericValue{}, fmt.Errorf("css: %q at position %d: %w", unit, t.Pos, ErrUnknownUnit)
		}
		return NumericValue{n, u}, nil
	}
	return NumericValue{n, None}, nil
}

// Parse decodes a single numeric value surrounded by optional whitespace.
//
//	v, err := values.Parse("1.5em")
func Parse(s string) (NumericValue, error) {
	var toks []csslex.Token
	for _, t := range csslex.Tokenize(s) {
		if t.Kind != csslex.Whitespace {
			toks = append(toks, t)
		}
	}
	if len(toks) != 1 {
		return NumericValue{}, fmt.Errorf("css: %q is not a single numeric value", s)
	}
	return FromToken(toks[0])
}
