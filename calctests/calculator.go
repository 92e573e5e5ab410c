package calctests

import (
	"github.com/stretchr/testify/require"

	"github.com/factoriolab/calc-test-harness/data/testmodel"
	"github.com/factoriolab/calc-test-harness/framework/caltest"
	"github.com/factoriolab/calc-test-harness/mockcalc"
	"github.com/factoriolab/calc-test-harness/testdata"
)

func doCalculatorTests(t *caltest.T) {
	t.Run("production chains", doDataDrivenChainTests)
	t.Run("unknown item", doUnknownItemTest)
	t.Run("zero rate", doZeroRateTest)
	t.Run("cyclic recipe edit", doCyclicRecipeTest)
	t.Run("factory counts", doFactoryCountTests)
}

// doDataDrivenChainTests verifies the calculator's arithmetic against the expectations
// in testdata/data-files/calc, one subtest per data file case.
func doDataDrivenChainTests(t *caltest.T) {
	suites := testdata.LoadAndParseAllTestSuites[testmodel.CalcTestSuite](t, "calc")
	for _, s := range suites {
		s := s
		t.Run(s.Name, func(t *caltest.T) {
			calc := mockcalc.NewCalculator(s.RecipeMap())
			for _, c := range s.Cases {
				c := c
				t.Run(c.Name, func(t *caltest.T) {
					reqs, err := calc.Requirements(c.Item, c.Rate)
					require.NoError(t, err)
					tol := c.Tolerance.OrElse(caltest.DefaultTolerance)
					missingMessage := "requirements are missing item %q"
					rateMessage := "requirement for %q: expected %v ±%v, but got %v"
					for item, want := range c.Expect {
						t.AssertContains(reqs, item, missingMessage, item)
						t.AssertAlmostEquals(reqs[item], want, tol,
							rateMessage, item, want, tol, reqs[item])
					}
					countMessage := "expected %d items in the chain, but got %d: %v"
					t.AssertEquals(len(reqs), len(c.Expect),
						countMessage, len(c.Expect), len(reqs), reqs)
				})
			}
		})
	}
}

func doUnknownItemTest(t *caltest.T) {
	calc := mockcalc.NewCalculator(map[string]mockcalc.Recipe{})
	_, err := calc.Requirements("flux-capacitor", 1)
	t.AssertHolds(err != nil, "expected an error for an item with no recipe")
}

func doZeroRateTest(t *caltest.T) {
	calc := mockcalc.NewCalculator(loadSuiteByName(t, "basic iron chain").RecipeMap())
	reqs, err := calc.Requirements("iron-gear-wheel", 0)
	require.NoError(t, err)
	zeroMessage := "zero target rate must demand nothing, but %q needs %v"
	for item, rate := range reqs {
		t.AssertAlmostEquals(rate, 0, 0, zeroMessage, item, rate)
	}
}

// A bad hand edit can make a recipe depend on itself. The calculator must refuse the
// graph instead of recursing forever.
func doCyclicRecipeTest(t *caltest.T) {
	calc := mockcalc.NewCalculator(map[string]mockcalc.Recipe{
		"ouroboros-circuit": {
			Time:        1,
			Ingredients: []mockcalc.Stack{{Item: "ouroboros-board", Amount: 1}},
			Products:    []mockcalc.Stack{{Item: "ouroboros-circuit", Amount: 1}},
		},
		"ouroboros-board": {
			Time:        1,
			Ingredients: []mockcalc.Stack{{Item: "ouroboros-circuit", Amount: 1}},
			Products:    []mockcalc.Stack{{Item: "ouroboros-board", Amount: 1}},
		},
	})
	_, err := calc.Requirements("ouroboros-circuit", 1)
	t.AssertHolds(err != nil, "expected an error for a cyclic recipe graph")
	t.AssertContains(err.Error(), "cycle")
}

func doFactoryCountTests(t *caltest.T) {
	calc := mockcalc.NewCalculator(loadSuiteByName(t, "basic iron chain").RecipeMap())

	// 1 plate/s at 3.2s per craft needs 3.2 assemblers
	n, err := calc.Factories("iron-plate", 1)
	require.NoError(t, err)
	t.AssertAlmostEquals(n, 3.2, caltest.DefaultTolerance)

	// 2 gears/s at 0.5s per craft needs a single assembler
	n, err = calc.Factories("iron-gear-wheel", 2)
	require.NoError(t, err)
	t.AssertAlmostEquals(n, 1, caltest.DefaultTolerance)
}

// loadSuiteByName returns the suite from the named data file. Data files load in
// directory order, so callers that need a particular fixture must not rely on position.
func loadSuiteByName(t *caltest.T, name string) testmodel.CalcTestSuite {
	t.Helper()
	for _, s := range testdata.LoadAndParseAllTestSuites[testmodel.CalcTestSuite](t, "calc") {
		if s.GetName() == name {
			return s
		}
	}
	require.FailNow(t, "data file not found", "no data file named %q", name)
	return testmodel.CalcTestSuite{}
}
