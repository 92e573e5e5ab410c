// Package calctests contains the contract test suites for the calculator application's
// collaborators: the production-chain calculator, the visualizer's direction selection,
// and the item dropdown's styling.
package calctests

import (
	"os"

	"github.com/factoriolab/calc-test-harness/framework/caltest"
)

// RunCalcTestSuite registers every suite in a fixed order and executes them. Suites and
// the cases inside them run sequentially; a failure in one never prevents the rest from
// running.
func RunCalcTestSuite(filters caltest.RegexFilters, testLogger caltest.TestLogger) caltest.Results {
	filters.Describe(os.Stdout)

	suite := caltest.NewSuite(caltest.Config{
		Filter:     filters,
		TestLogger: testLogger,
	})
	suite.Register("calculator", doCalculatorTests)
	suite.Register("recipes", doRecipeTests)
	suite.Register("visualizer", doVisualizerTests)
	suite.Register("dropdown", doDropdownTests)
	return suite.Run()
}
