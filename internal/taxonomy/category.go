package taxonomy

import "strings"

type categoryRule struct {
	keywords []string
	category string
}

// Rule order is a contract: an event mentioning both "jazz" and "robot" is
// music, because the music rule is checked first. Do not reorder.
var categoryRules = []categoryRule{
	{[]string{"concert", "jazz", "music", "band", "choir", "orchestra", "recital", "symphony", "opera", "sing"}, "music"},
	{[]string{"sport", "basketball", "football", "soccer", "volleyball", "baseball", "tennis", "golf", "swim", "track", "climb", "run", "race", "athletic", "fitness", "gym"}, "sports"},
	{[]string{"food", "dinner", "lunch", "pizza", "cook", "bake", "brew", "beer", "wine", "tasting"}, "food"},
	{[]string{"art", "exhibit", "gallery", "museum", "paint", "sculpt", "theater", "theatre", "dance", "film", "cinema", "photo"}, "arts"},
	{[]string{"yoga", "meditat", "wellness", "health", "mental", "counsel", "therapy"}, "health"},
	{[]string{"career", "intern", "resume", "job", "recruit", "employer", "profession", "grad school"}, "education"},
	{[]string{"hack", "code", "program", "software", "tech", "data", "cyber", "comput", "engineer", "robot", "ai ", "machine learn"}, "technology"},
	{[]string{"volunteer", "community", "service", "garden", "sustainab", "equity", "divers"}, "community"},
}

// DefaultCategory is the bucket for events no rule matches.
const DefaultCategory = "community"

// InferCategory maps free text to one coarse category. The first rule with
// any keyword appearing as a substring of the lower-cased text wins.
func InferCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}
