// Package images implements the distribution image pass.
//
// The historical pipeline shelled out to ImageMagick and optipng; this
// package performs the same primitive operations in-process:
//
//   - 1px shave (mogrify -shave 1x1)
//   - search thumbnail at a fixed height (convert -resize x92)
//   - bound to 600x600 (mogrify -resize '600x600>')
//   - 4-colour palette reduction (convert -colors 4)
//   - best-compression PNG re-encode (optipng)
//
// It also owns the step that merges downloaded assets into the single
// pictures folder the apps bundle.
package images
