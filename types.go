package recipebook

// RecipeEntry is a stored recipe document plus the metadata the site
// needs to list and publish it. Source holds the raw document text;
// Title is whatever the parser extracted from it on save.
type RecipeEntry struct {
	Slug      string
	Title     string
	Source    string
	Date      string
	Link      string
	Published bool
}

// Image describes an uploaded recipe photo stored under the data
// directory and referenced by a document's image: line.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int64
	UploadedAt   string
}
