package mockcalc

import "fmt"

// Stack is a quantity of one item, as it appears in a recipe's ingredient or product
// list.
type Stack struct {
	Item   string
	Amount float64
}

// Recipe describes how one item is crafted: the crafting time in seconds, what goes in,
// and what comes out. Raw resources are modeled as recipes with no ingredients.
type Recipe struct {
	Time        float64
	Ingredients []Stack
	Products    []Stack
}

// productAmount returns how many units of the given item one craft produces.
func (r Recipe) productAmount(item string) float64 {
	for _, p := range r.Products {
		if p.Item == item {
			return p.Amount
		}
	}
	return 1
}

// Calculator is a simplified production-chain solver over a fixed recipe graph. Given a
// target item and a target production rate, it reports the rate at which every item in
// the chain must be produced.
type Calculator struct {
	recipes map[string]Recipe
}

func NewCalculator(recipes map[string]Recipe) *Calculator {
	copied := make(map[string]Recipe, len(recipes))
	for k, v := range recipes {
		copied[k] = v
	}
	return &Calculator{recipes: copied}
}

// Recipe returns the recipe for an item, if one is known.
func (c *Calculator) Recipe(item string) (Recipe, bool) {
	r, ok := c.recipes[item]
	return r, ok
}

// Requirements walks the recipe graph from the target item, summing scaled ingredient
// demands, and returns the required production rate (items per second) for every item
// in the chain, the target included. An item appearing on several branches accumulates
// the demand of all of them.
//
// It returns an error for an unknown item, or if the graph contains a cycle (which a
// hand-edited recipe could introduce).
func (c *Calculator) Requirements(item string, rate float64) (map[string]float64, error) {
	reqs := make(map[string]float64)
	if err := c.expand(item, rate, reqs, make(map[string]bool)); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *Calculator) expand(item string, rate float64, reqs map[string]float64, path map[string]bool) error {
	recipe, ok := c.recipes[item]
	if !ok {
		return fmt.Errorf("no recipe for item %q", item)
	}
	if path[item] {
		return fmt.Errorf("recipe graph contains a cycle at %q", item)
	}
	path[item] = true
	defer delete(path, item)

	reqs[item] += rate
	perCraft := recipe.productAmount(item)
	for _, ing := range recipe.Ingredients {
		if err := c.expand(ing.Item, rate*ing.Amount/perCraft, reqs, path); err != nil {
			return err
		}
	}
	return nil
}

// Factories returns how many crafting machines are needed to produce an item at the
// given rate: rate * craftingTime / unitsPerCraft.
func (c *Calculator) Factories(item string, rate float64) (float64, error) {
	recipe, ok := c.recipes[item]
	if !ok {
		return 0, fmt.Errorf("no recipe for item %q", item)
	}
	return rate * recipe.Time / recipe.productAmount(item), nil
}
