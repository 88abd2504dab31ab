package recipebook

import "embed"

// EmbeddedAssets contains static assets shipped with the app:
// style.css, units.js, admin.js, favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// BundledRecipes contains the recipe documents seeded into a fresh database.
//
//go:embed recipes/*.txt
var BundledRecipes embed.FS
