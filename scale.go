package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Scale is a custom scale, either created in this process or saved in the
// configuration store.
type Scale struct {
	interp interpreter.Interpreter
	name   string
}

func newScale(i interpreter.Interpreter, name string) *Scale {
	return &Scale{interp: i, name: name}
}

func (s *Scale) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return s.interp, interpreter.NamedTarget(attributes.ScopeScale, s.name), nil
}

func (s *Scale) Name() string { return s.name }

func (s *Scale) String() string { return "Scale(name=" + s.name + ")" }

// Save stores the scale in the configuration store. An empty saveAs keeps
// the scale name.
func (s *Scale) Save(saveAs, author string, opts constants.SaveOptions) error {
	return s.interp.SaveScale(s.name, saveAs, author, opts)
}

// Scale returns the named scale without checking that it exists.
func (s *System) Scale(name string) *Scale { return newScale(s.interp, name) }

// CreateLinScale creates a scale y = slope*x + yIntercept.
func (s *System) CreateLinScale(name string, slope, yIntercept float64, pre constants.UnitsPreScaled, scaledUnits string) (*Scale, error) {
	if err := s.interp.CreateLinScale(name, slope, yIntercept, pre, scaledUnits); err != nil {
		return nil, err
	}
	return newScale(s.interp, name), nil
}

// CreateMapScale maps the prescaled range linearly onto the scaled range.
func (s *System) CreateMapScale(name string, preMin, preMax, scaledMin, scaledMax float64, pre constants.UnitsPreScaled, scaledUnits string) (*Scale, error) {
	if err := s.interp.CreateMapScale(name, preMin, preMax, scaledMin, scaledMax, pre, scaledUnits); err != nil {
		return nil, err
	}
	return newScale(s.interp, name), nil
}

// CreatePolynomialScale scales with forward coefficients and unscales with
// reverse coefficients, lowest order first.
func (s *System) CreatePolynomialScale(name string, forward, reverse []float64, pre constants.UnitsPreScaled, scaledUnits string) (*Scale, error) {
	if len(forward) == 0 {
		return nil, fmt.Errorf("polynomial scale %s needs forward coefficients: %w", name, daqerr.ErrInvalidArgument)
	}
	if err := s.interp.CreatePolynomialScale(name, forward, reverse, pre, scaledUnits); err != nil {
		return nil, err
	}
	return newScale(s.interp, name), nil
}

// CreateTableScale interpolates linearly between matching prescaled and
// scaled values.
func (s *System) CreateTableScale(name string, prescaled, scaled []float64, pre constants.UnitsPreScaled, scaledUnits string) (*Scale, error) {
	if len(prescaled) != len(scaled) {
		return nil, &daqerr.MismatchedArraySizesError{What: "scaled values per prescaled value", Want: len(prescaled), Got: len(scaled)}
	}
	if err := s.interp.CreateTableScale(name, prescaled, scaled, pre, scaledUnits); err != nil {
		return nil, err
	}
	return newScale(s.interp, name), nil
}
