// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
)

const (
	opValidate    = "Validate"
	opValidateAll = "ValidateAll"
)

// Verdict is the outcome of one scenario run.
type Verdict struct {
	Reducer  string
	Scenario string
	Solution []float64
	// FirstFailure is the lowest index whose value is off by more than the
	// tolerance, or -1 when every value matched.
	FirstFailure int
}

// Passed reports whether every value matched within tolerance.
func (v Verdict) Passed() bool { return v.FirstFailure < 0 }

// Validate solves a private copy of sc with r and prints the solution.
//
// Output, on one line without a trailing newline:
//
//	| x0 | x1 Assertion failed at 1| x2 ... |
//
// Every value is printed; "Assertion failed at <i>" follows only the first
// value not within the tolerance (WithEpsilon, default 1e-4) of the expected
// one. NaN is never within tolerance.
//
// Errors:
//   - gauss.ErrNilReducer, ErrScenarioShape, matrix construction errors,
//     write errors from w.
func Validate(w io.Writer, r gauss.Reducer, sc Scenario, opts ...Option) (Verdict, error) {
	o := gatherOptions(opts...)

	return validate(w, r, sc, o)
}

func validate(w io.Writer, r gauss.Reducer, sc Scenario, o Options) (Verdict, error) {
	if r == nil {
		return Verdict{}, harnessErrorf(opValidate, gauss.ErrNilReducer)
	}
	if len(sc.Expected) != len(sc.Rows) {
		return Verdict{}, harnessErrorf(opValidate, fmt.Errorf("scenario %s: %w", sc.Name, ErrScenarioShape))
	}
	m, err := matrix.FromRows(sc.Rows) // FromRows copies; sc stays untouched
	if err != nil {
		return Verdict{}, harnessErrorf(opValidate, err)
	}
	x, _, err := gauss.Solve(m, r)
	if err != nil {
		return Verdict{}, harnessErrorf(opValidate, err)
	}

	v := Verdict{Reducer: r.Name(), Scenario: sc.Name, Solution: x, FirstFailure: -1}
	var sb strings.Builder
	for i, xi := range x {
		fmt.Fprintf(&sb, "| %f ", xi)
		if v.FirstFailure < 0 && !(math.Abs(xi-sc.Expected[i]) <= o.eps) { // NaN never matches
			v.FirstFailure = i
			fmt.Fprintf(&sb, "Assertion failed at %d", i)
		}
	}
	sb.WriteByte('|')
	if _, err = io.WriteString(w, sb.String()); err != nil {
		return v, harnessErrorf(opValidate, err)
	}

	o.logger.Debug().
		Str("reducer", v.Reducer).
		Str("scenario", v.Scenario).
		Bool("passed", v.Passed()).
		Int("first_failure", v.FirstFailure).
		Msg("scenario validated")

	return v, nil
}

// ValidateAll runs every built-in scenario against each reducer in order:
// scenario A then B for reducers[0], then for reducers[1], and so on.
// Each scenario's output line ends with a newline.
func ValidateAll(w io.Writer, reducers []gauss.Reducer, opts ...Option) ([]Verdict, error) {
	o := gatherOptions(opts...)
	verdicts := make([]Verdict, 0, len(reducers)*2)
	for _, r := range reducers {
		for _, sc := range Scenarios() {
			v, err := validate(w, r, sc, o)
			if err != nil {
				return verdicts, harnessErrorf(opValidateAll, err)
			}
			if _, err = io.WriteString(w, "\n"); err != nil {
				return verdicts, harnessErrorf(opValidateAll, err)
			}
			verdicts = append(verdicts, v)
		}
	}

	return verdicts, nil
}
