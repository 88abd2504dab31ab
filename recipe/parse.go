package recipe

import (
	"strings"
	"unicode"

	"github.com/O-X-E-Y/recipe-book/measure"
)

const (
	imageMarker       = "image:"
	ingredientsMarker = "---ingredients"
	stepsMarker       = "---steps"
	blankLine         = "\n\n"
)

// Parse parses a complete recipe document:
//
//	title
//
//	image: optional-href
//
//	optional introduction
//
//	---ingredients
//	one ingredient per line
//
//	---steps
//	step paragraphs separated by blank lines
//
// The stages run in order and the first failure aborts the whole
// parse, so a returned Recipe is always complete.
func Parse(text string) (Recipe, error) {
	var r Recipe

	end := strings.Index(text, blankLine)
	if end < 0 {
		return Recipe{}, ErrExpectedTitle
	}
	r.Title = text[:end]
	rest := trimLeft(text[end:])

	if strings.HasPrefix(rest, imageMarker) {
		end = strings.Index(rest, blankLine)
		if end < 0 {
			return Recipe{}, ErrExpectedImageHref
		}
		r.Image = &Image{Href: trimLeft(rest[len(imageMarker):end])}
		rest = trimLeft(rest[end:])
	}

	if !strings.HasPrefix(rest, ingredientsMarker) {
		// an introduction without a closing blank line reports the
		// image error
		end = strings.Index(rest, blankLine)
		if end < 0 {
			return Recipe{}, ErrExpectedImageHref
		}
		r.Introduction = trimLeft(rest[:end])
		rest = trimLeft(rest[end:])
	}

	if !strings.HasPrefix(rest, ingredientsMarker) {
		return Recipe{}, ErrExpectedIngredientsStart
	}
	rest = trimLeft(rest[len(ingredientsMarker):])

	for !strings.HasPrefix(rest, "\n") {
		end = strings.Index(rest, "\n")
		if end < 0 {
			return Recipe{}, &UnexpectedEOFError{Expected: "Ingredient"}
		}
		ing, err := ParseIngredient(rest[:end])
		if err != nil {
			return Recipe{}, err
		}
		r.Ingredients = append(r.Ingredients, ing)
		rest = rest[end+1:]
	}

	rest = trimLeft(rest)
	if !strings.HasPrefix(rest, stepsMarker) {
		return Recipe{}, ErrExpectedStepsStart
	}
	for _, body := range strings.Split(strings.TrimSpace(rest[len(stepsMarker):]), blankLine) {
		r.Steps = append(r.Steps, Step{Body: body})
	}
	return r, nil
}

// ParseIngredient parses one ingredient line. The text before the
// second space is tried as a quantity, weight before volume; when it
// is not one, the whole line becomes the ingredient's name and the
// quantity stays nil. Only an empty line is an error.
func ParseIngredient(line string) (Ingredient, error) {
	if line == "" {
		return Ingredient{}, ErrExpectedIngredient
	}
	cut := len(line)
	spaces := 0
	for n, c := range line {
		if c == ' ' {
			spaces++
			if spaces == 2 {
				cut = n
				break
			}
		}
	}
	amount := strings.TrimRightFunc(line[:cut], unicode.IsSpace)
	q, err := measure.ParseQuantity(amount)
	if err != nil {
		return Ingredient{Name: line}, nil
	}
	return Ingredient{Name: trimLeft(line[cut:]), Quantity: q}, nil
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
