// Package testmodel defines the schema of the data files that drive the calculator
// contract suites.
package testmodel

import (
	"github.com/factoriolab/calc-test-harness/framework/opt"
	"github.com/factoriolab/calc-test-harness/mockcalc"
)

// CalcTestSuite is one data file: a recipe graph plus the production-rate expectations
// to verify against it.
type CalcTestSuite struct {
	Name    string               `json:"name" yaml:"name"`
	Recipes map[string]RecipeDef `json:"recipes" yaml:"recipes"`
	Cases   []CalcTest           `json:"cases" yaml:"cases"`
}

func (s CalcTestSuite) GetName() string { return s.Name }

// RecipeDef is the data-file form of a recipe. Ingredients and products are maps from
// item name to amount; a missing products entry means the recipe yields one unit of
// the item it is keyed under.
type RecipeDef struct {
	Time        float64            `json:"time" yaml:"time"`
	Ingredients map[string]float64 `json:"ingredients" yaml:"ingredients"`
	Products    map[string]float64 `json:"products" yaml:"products"`
}

// CalcTest is one expectation: producing Item at Rate must require every item in
// Expect at the listed rate, and nothing else.
type CalcTest struct {
	Name      string             `json:"name" yaml:"name"`
	Item      string             `json:"item" yaml:"item"`
	Rate      float64            `json:"rate" yaml:"rate"`
	Expect    map[string]float64 `json:"expect" yaml:"expect"`
	Tolerance opt.Maybe[float64] `json:"tolerance" yaml:"tolerance"`
}

// RecipeMap converts the data-file recipe definitions into the form the mock
// calculator consumes.
func (s CalcTestSuite) RecipeMap() map[string]mockcalc.Recipe {
	out := make(map[string]mockcalc.Recipe, len(s.Recipes))
	for name, def := range s.Recipes {
		recipe := mockcalc.Recipe{Time: def.Time}
		for item, amount := range def.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, mockcalc.Stack{Item: item, Amount: amount})
		}
		for item, amount := range def.Products {
			recipe.Products = append(recipe.Products, mockcalc.Stack{Item: item, Amount: amount})
		}
		if len(recipe.Products) == 0 {
			recipe.Products = []mockcalc.Stack{{Item: name, Amount: 1}}
		}
		out[name] = recipe
	}
	return out
}
