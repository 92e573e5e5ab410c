package calctests

import (
	"github.com/stretchr/testify/require"

	"github.com/factoriolab/calc-test-harness/framework/caltest"
	"github.com/factoriolab/calc-test-harness/framework/matchers"
	"github.com/factoriolab/calc-test-harness/mockcalc"
)

// doRecipeTests pins down the hand-edited advanced-circuit recipe: the shipped data
// must carry the edited ingredient list, not the stock one.
func doRecipeTests(t *caltest.T) {
	t.Run("advanced circuit ingredient list", func(t *caltest.T) {
		recipe := loadRecipe(t, "advanced circuit production", "advanced-circuit")

		var names []string
		for _, ing := range recipe.Ingredients {
			names = append(names, ing.Item)
		}
		t.AssertContains(names, "electronic-circuit")
		t.AssertContains(names, "plastic-bar")
		t.AssertContains(names, "copper-cable")
		countMessage := "expected exactly 3 ingredients, but got %v"
		t.AssertEquals(len(recipe.Ingredients), 3, countMessage, names)

		// the edit bumped copper cable from the stock 4 to 5 per craft
		matchers.Contains(mockcalc.Stack{Item: "copper-cable", Amount: 5}).Require(t, recipe.Ingredients)
		matchers.Not(matchers.Contains(mockcalc.Stack{Item: "copper-cable", Amount: 4})).Require(t, recipe.Ingredients)
	})

	t.Run("crafting time unchanged", func(t *caltest.T) {
		recipe := loadRecipe(t, "advanced circuit production", "advanced-circuit")
		t.AssertAlmostEquals(recipe.Time, 6, 0, "the edit must not touch the crafting time")
	})
}

func loadRecipe(t *caltest.T, suiteName, item string) mockcalc.Recipe {
	t.Helper()
	s := loadSuiteByName(t, suiteName)
	recipe, ok := mockcalc.NewCalculator(s.RecipeMap()).Recipe(item)
	require.True(t, ok, "no recipe %q in data file %q", item, suiteName)
	return recipe
}
