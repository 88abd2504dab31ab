package recipe

import (
	"errors"
	"fmt"
)

// Document errors. Parse reports the first stage that could not
// proceed and never returns a partial recipe.
var (
	ErrExpectedTitle            = errors.New("expected a title for the recipe")
	ErrExpectedImageHref        = errors.New(`encountered "image:" but no subsequent href was provided`)
	ErrExpectedIngredientsStart = errors.New(`expected "---ingredients" to indicate the start of the ingredient list`)
	ErrExpectedIngredient       = errors.New("expected an ingredient, found an empty string")
	ErrExpectedStepsStart       = errors.New(`expected "---steps" to indicate the start of the recipe steps`)
)

// UnexpectedEOFError reports a document that ended in the middle of a
// construct.
type UnexpectedEOFError struct {
	Expected string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("expected %s, found EOF", e.Expected)
}
