package taxonomy

import (
	"sort"
	"strings"
)

type generalization struct {
	terms []string
	add   []string
}

// Static generalization map: when an event's text mentions a specific term,
// its parent concepts are added to the tags so searches like "food" find
// events mentioning "pizza".
var generalizations = []generalization{
	// Food & drink
	{[]string{"pizza", "burger", "taco", "sushi", "pasta", "barbecue", "bbq", "sandwich", "buffet", "potluck"}, []string{"food", "dining"}},
	{[]string{"coffee", "cafe", "espresso", "latte"}, []string{"food", "beverage", "cafe"}},
	{[]string{"beer", "brewery", "brew", "craft beer", "ale", "lager"}, []string{"food", "beverage", "alcohol"}},
	{[]string{"wine", "winery", "tasting", "vineyard", "sommelier"}, []string{"food", "beverage", "alcohol"}},
	{[]string{"bake", "baking", "cook", "cooking", "chef", "culinary", "recipe"}, []string{"food", "cooking"}},
	{[]string{"dinner", "lunch", "breakfast", "brunch", "meal", "feast", "banquet"}, []string{"food", "dining"}},

	// Science
	{[]string{"biology", "botany", "zoology", "microbiology", "ecology"}, []string{"science", "stem", "biology"}},
	{[]string{"chemistry", "biochemistry", "organic chemistry", "chemical"}, []string{"science", "stem", "chemistry"}},
	{[]string{"physics", "quantum", "thermodynamics", "mechanics"}, []string{"science", "stem", "physics"}},
	{[]string{"astronomy", "astrophysics", "telescope", "planet", "space", "nasa", "cosmos"}, []string{"science", "stem", "space"}},
	{[]string{"geology", "geoscience", "earth science", "mineralogy"}, []string{"science", "stem", "geology"}},
	{[]string{"neuroscience", "psychology", "cognition", "brain"}, []string{"science", "stem", "health"}},
	{[]string{"genetics", "dna", "genome", "gene", "molecular"}, []string{"science", "stem", "biology"}},
	{[]string{"statistics", "probability", "calculus", "algebra", "math", "mathematics"}, []string{"science", "stem", "math"}},

	// Technology
	{[]string{"python", "javascript", "typescript", "java", "rust", "golang", "c++", "swift", "kotlin"}, []string{"technology", "coding", "programming"}},
	{[]string{"machine learning", "deep learning", "neural network", "nlp"}, []string{"technology", "ai", "stem"}},
	{[]string{"artificial intelligence", "ai ", " ai,", "llm", "gpt", "chatbot"}, []string{"technology", "ai", "stem"}},
	{[]string{"robotics", "robot", "drone", "automation"}, []string{"technology", "engineering", "stem"}},
	{[]string{"cybersecurity", "hacking", "ctf", "security", "pentest"}, []string{"technology", "security"}},
	{[]string{"data science", "data analytics", "big data", "visualization", "tableau", "pandas"}, []string{"technology", "stem", "data"}},
	{[]string{"hackathon", "hack", "coding challenge", "competition"}, []string{"technology", "coding"}},
	{[]string{"web development", "frontend", "backend", "full stack", "react", "vue", "angular"}, []string{"technology", "coding", "web"}},
	{[]string{"cloud", "aws", "azure", "gcp", "devops", "kubernetes", "docker"}, []string{"technology", "cloud", "engineering"}},
	{[]string{"app", "mobile", "ios", "android"}, []string{"technology", "mobile"}},

	// Engineering
	{[]string{"electrical", "circuit", "electronics", "semiconductor"}, []string{"engineering", "stem"}},
	{[]string{"mechanical", "cad", "solidworks", "3d printing"}, []string{"engineering", "stem"}},
	{[]string{"civil engineering", "structural", "construction"}, []string{"engineering", "stem"}},
	{[]string{"chemical engineering", "process engineering"}, []string{"engineering", "stem", "chemistry"}},

	// Sports & fitness
	{[]string{"basketball", "nba", "dribble", "dunk", "hoop"}, []string{"sports", "athletics"}},
	{[]string{"soccer", "football", "futbol", "penalty", "goal kick"}, []string{"sports", "athletics"}},
	{[]string{"american football", "nfl", "touchdown", "husker"}, []string{"sports", "athletics"}},
	{[]string{"baseball", "softball", "pitcher", "homerun"}, []string{"sports", "athletics"}},
	{[]string{"volleyball", "spike", "serve"}, []string{"sports", "athletics"}},
	{[]string{"swimming", "swim", "lap pool", "aquatic"}, []string{"sports", "fitness", "athletics"}},
	{[]string{"running", "marathon", "5k", "10k", "cross country", "track"}, []string{"sports", "fitness", "athletics"}},
	{[]string{"cycling", "bike", "bicycle", "triathlon"}, []string{"sports", "fitness"}},
	{[]string{"tennis", "racket", "court"}, []string{"sports", "athletics"}},
	{[]string{"golf", "putt", "fairway", "tee"}, []string{"sports", "athletics"}},
	{[]string{"wrestling", "boxing", "martial arts", "judo", "mma", "kickboxing"}, []string{"sports", "athletics"}},
	{[]string{"yoga", "pilates", "stretch"}, []string{"fitness", "wellness", "health"}},
	{[]string{"gym", "weightlifting", "strength training", "crossfit"}, []string{"fitness", "health"}},
	{[]string{"rock climbing", "bouldering", "climbing"}, []string{"sports", "fitness", "outdoor"}},
	{[]string{"hiking", "trail", "backpacking", "camping"}, []string{"sports", "fitness", "outdoor", "nature"}},

	// Arts & entertainment
	{[]string{"painting", "watercolor", "acrylic", "oil paint", "canvas"}, []string{"art", "visual arts", "creative"}},
	{[]string{"drawing", "illustration", "sketch", "comic"}, []string{"art", "visual arts", "creative"}},
	{[]string{"sculpture", "ceramics", "pottery", "clay"}, []string{"art", "visual arts", "creative"}},
	{[]string{"photography", "photo", "camera", "portrait"}, []string{"art", "creative"}},
	{[]string{"film", "cinema", "movie", "screening", "documentary"}, []string{"art", "entertainment", "film"}},
	{[]string{"theater", "theatre", "play", "musical", "broadway", "improv", "drama"}, []string{"art", "performance", "entertainment"}},
	{[]string{"dance", "ballet", "hip hop dance", "salsa", "ballroom"}, []string{"art", "performance", "dance"}},
	{[]string{"concert", "live music", "gig", "band", "show"}, []string{"music", "performance", "entertainment"}},
	{[]string{"jazz", "bebop", "blues"}, []string{"music", "performance", "art"}},
	{[]string{"opera", "symphony", "orchestra", "classical music", "choir", "choral"}, []string{"music", "performance", "art"}},
	{[]string{"rap", "hip hop", "r&b", "soul music"}, []string{"music", "performance", "entertainment"}},
	{[]string{"comedy", "stand up", "open mic", "improv"}, []string{"entertainment", "comedy"}},
	{[]string{"gaming", "esports", "video game", "tabletop", "board game"}, []string{"entertainment", "gaming"}},
	{[]string{"poetry", "spoken word", "literary", "writing"}, []string{"art", "creative", "literature"}},
	{[]string{"book club", "reading", "author"}, []string{"education", "literature"}},

	// Academic & career
	{[]string{"lecture", "seminar", "colloquium", "talk"}, []string{"academic", "education", "learning"}},
	{[]string{"workshop", "training", "tutorial", "bootcamp"}, []string{"education", "learning", "skills"}},
	{[]string{"conference", "symposium", "summit"}, []string{"academic", "professional", "networking"}},
	{[]string{"research", "study", "experiment", "lab", "thesis", "dissertation"}, []string{"academic", "stem", "research"}},
	{[]string{"internship", "intern", "co-op"}, []string{"career", "professional", "job"}},
	{[]string{"networking event", "career fair", "job fair", "recruiter", "employer"}, []string{"career", "professional", "networking"}},
	{[]string{"resume", "cv", "job search", "interview"}, []string{"career", "professional"}},
	{[]string{"startup", "entrepreneur", "pitch", "venture", "founder"}, []string{"career", "business", "entrepreneurship"}},
	{[]string{"business", "finance", "accounting", "economics", "marketing"}, []string{"business", "professional"}},
	{[]string{"leadership", "management", "executive"}, []string{"professional", "career"}},

	// Health & wellness
	{[]string{"meditation", "mindfulness", "breathing", "guided"}, []string{"wellness", "mindfulness", "health"}},
	{[]string{"mental health", "anxiety", "stress", "depression", "therapy", "counseling"}, []string{"wellness", "health", "mental health"}},
	{[]string{"nutrition", "diet", "healthy eating", "vegan", "vegetarian"}, []string{"health", "food", "wellness"}},
	{[]string{"first aid", "cpr", "medical", "nursing", "healthcare"}, []string{"health", "medical"}},

	// Community & social
	{[]string{"volunteer", "volunteering", "community service", "giving back"}, []string{"community", "service", "volunteer"}},
	{[]string{"charity", "nonprofit", "donation", "fundraiser", "fundraising"}, []string{"community", "nonprofit"}},
	{[]string{"sustainability", "environment", "climate", "green", "eco"}, []string{"environment", "community", "sustainability"}},
	{[]string{"recycling", "composting", "zero waste"}, []string{"environment", "community"}},
	{[]string{"diversity", "equity", "inclusion", "dei", "multicultural"}, []string{"community", "social", "diversity"}},
	{[]string{"garden", "gardening", "planting", "nature", "park"}, []string{"community", "outdoor", "nature"}},
	{[]string{"religion", "faith", "spiritual", "church", "mosque", "temple", "prayer"}, []string{"community", "spiritual"}},
	{[]string{"international", "culture", "cultural", "heritage", "global"}, []string{"community", "culture", "international"}},
	{[]string{"greek life", "fraternity", "sorority"}, []string{"community", "social", "student life"}},
	{[]string{"student org", "club", "student government", "association"}, []string{"community", "student life"}},
}

// Generalize returns the broader concept tags for a block of text, e.g. text
// mentioning "pizza" yields ["dining", "food"]. The result is a de-duplicated
// set, sorted for stable output.
func Generalize(text string) []string {
	lower := strings.ToLower(text)
	added := map[string]bool{}
	for _, g := range generalizations {
		for _, term := range g.terms {
			if strings.Contains(lower, term) {
				for _, kw := range g.add {
					added[kw] = true
				}
				break
			}
		}
	}
	out := make([]string, 0, len(added))
	for kw := range added {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
