// Package recipe implements the plain-text recipe document format: a
// title, an optional image reference, an optional introduction, an
// ingredient list, and free-text steps. Parsing is all or nothing; a
// document either yields a complete Recipe or a single typed error.
package recipe

import "github.com/O-X-E-Y/recipe-book/measure"

// Image is a recipe's picture reference as written in the document.
type Image struct {
	Href string
}

// Step is one free-text instruction paragraph.
type Step struct {
	Body string
}

// Ingredient is one line of the ingredient list. Quantity is nil when
// the line's leading text was not a recognizable amount, in which case
// Name holds the whole line.
type Ingredient struct {
	Name     string
	Quantity measure.Quantity
}

// AsMetric re-tags the ingredient's quantity for metric display.
func (i Ingredient) AsMetric() Ingredient {
	i.Quantity = measure.Convert(i.Quantity, measure.Metric)
	return i
}

// AsImperial re-tags the ingredient's quantity for imperial display.
func (i Ingredient) AsImperial() Ingredient {
	i.Quantity = measure.Convert(i.Quantity, measure.Imperial)
	return i
}

// String renders the ingredient the way it appears on a recipe page.
func (i Ingredient) String() string {
	if i.Quantity == nil {
		return i.Name
	}
	return i.Quantity.String() + " " + i.Name
}

// Recipe is a fully parsed document.
type Recipe struct {
	Title        string
	Image        *Image // nil when the document has no image line
	Introduction string // empty when the document has no introduction
	Ingredients  []Ingredient
	Steps        []Step
}

// AsMetric returns a copy with every ingredient quantity re-tagged for
// metric display. Canonical values are untouched.
func (r Recipe) AsMetric() Recipe {
	return r.retag(measure.Metric)
}

// AsImperial returns a copy with every ingredient quantity re-tagged
// for imperial display. Canonical values are untouched.
func (r Recipe) AsImperial() Recipe {
	return r.retag(measure.Imperial)
}

func (r Recipe) retag(sys measure.System) Recipe {
	out := r
	out.Ingredients = make([]Ingredient, len(r.Ingredients))
	for n, ing := range r.Ingredients {
		ing.Quantity = measure.Convert(ing.Quantity, sys)
		out.Ingredients[n] = ing
	}
	return out
}
