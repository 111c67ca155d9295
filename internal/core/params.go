package core

import (
	"fmt"
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value and its current setting.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables for display.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterControl describes a bounded tunable. Bounds are optional and
// interpreted based on the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds and reports whether it moved. NaN
// is pulled to the lower bound (or zero when unbounded).
func (p ParameterControl) Clamp(v float64) (float64, bool) {
	if math.IsNaN(v) {
		if p.HasMin {
			return p.Min, true
		}
		return 0, true
	}
	if p.HasMin && v < p.Min {
		return p.Min, true
	}
	if p.HasMax && v > p.Max {
		return p.Max, true
	}
	if p.Type == ParamTypeInt && v != math.Trunc(v) {
		return math.Trunc(v), true
	}
	return v, false
}

// Parse converts text into a value of the control's type.
func (p ParameterControl) Parse(s string) (float64, error) {
	switch p.Type {
	case ParamTypeInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", p.Key, err)
		}
		return float64(n), nil
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", p.Key, err)
		}
		return f, nil
	}
}

// Format renders v the way Parse reads it.
func (p ParameterControl) Format(v float64) string {
	if p.Type == ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
