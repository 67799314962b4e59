// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

// ErrScenarioShape indicates a scenario whose Expected length differs from its row count.
var ErrScenarioShape = errors.New("harness: expected solution length must equal row count")

func harnessErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
