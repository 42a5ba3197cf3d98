package dictionary

import "strings"

// accentFolds is the fixed substitution table used to build search keys.
// Only the macroned vowels used in te reo Māori plus the acute e are folded;
// anything else passes through untouched. The table must stay in sync with
// the legacy data already shipped to the apps, so do not extend it casually.
var accentFolds = strings.NewReplacer(
	"ā", "a",
	"ē", "e",
	"é", "e",
	"ī", "i",
	"ō", "o",
	"ū", "u",
)

// NormalizeText lowercases s and folds the fixed accent table, producing the
// diacritic-insensitive key used for the search target columns.
func NormalizeText(s string) string {
	return accentFolds.Replace(strings.ToLower(s))
}

// NormalizeFilename maps an arbitrary export filename onto the constrained
// charset both mobile platforms accept: lowercase, hyphens folded to
// underscores, and every period except the extension separator collapsed
// to an underscore. "My-Sign.V2.PNG" becomes "my_sign_v2.png".
func NormalizeFilename(name string) string {
	normalized := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if periods := strings.Count(normalized, "."); periods > 1 {
		normalized = strings.Replace(normalized, ".", "_", periods-1)
	}
	return normalized
}
