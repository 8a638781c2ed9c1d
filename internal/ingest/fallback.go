package ingest

import "github.com/gatherhq/gather/internal/model"

// FallbackEvents is the built-in showcase catalog used when no feed is
// available at first start, so the app is browsable out of the box.
func FallbackEvents() []model.Event {
	return []model.Event{
		{
			Name:        "Omaha Tech Summit 2026",
			Description: "Join Omaha's premier technology conference featuring keynotes from industry leaders, hands-on workshops, and networking opportunities. Topics include AI/ML, cloud infrastructure, web development, and startup culture. Whether you're a seasoned engineer or just starting out, there's something for everyone.",
			Date:        "2026-03-20", Time: "09:00", EndDate: "2026-03-20", EndTime: "17:00",
			Location: "Omaha, NE", Venue: "CHI Health Center Omaha",
			Price: 75, Category: "technology",
			Tags: []string{"tech", "networking", "AI", "workshops"},
		},
		{
			Name:        "Jazz Night at The Slowdown",
			Description: "An intimate evening of live jazz featuring local Omaha artists and special guests from Chicago. Expect smooth bebop, Latin jazz, and contemporary fusion. Doors open at 7 PM with a cash bar and light bites available. All ages welcome — 21+ for bar service.",
			Date:        "2026-03-15", Time: "19:00", EndDate: "2026-03-15", EndTime: "23:00",
			Location: "Omaha, NE", Venue: "The Slowdown",
			Price: 25, Category: "music",
			Tags: []string{"jazz", "live music", "21+", "bar"},
		},
		{
			Name:        "Heartland 5K Charity Run",
			Description: "Lace up your shoes for the annual Heartland 5K benefiting the Children's Hospital & Medical Center Foundation. The flat, scenic course winds through Elmwood Park. All finishing times welcome — walkers, joggers, and runners alike. T-shirt and medal included with registration.",
			Date:        "2026-03-22", Time: "08:00", EndDate: "2026-03-22", EndTime: "11:00",
			Location: "Omaha, NE", Venue: "Elmwood Park",
			Price: 0, Category: "sports",
			Tags: []string{"5K", "running", "charity", "family-friendly"},
		},
		{
			Name:        "Farm to Table Spring Dinner",
			Description: "A five-course dinner experience celebrating Nebraska agriculture. Each dish is prepared by Chef Maria Santos using ingredients sourced within 100 miles of Omaha. Paired with selections from local wineries. Tickets include dinner, wine pairings, and a tour of the kitchen garden.",
			Date:        "2026-03-18", Time: "18:30", EndDate: "2026-03-18", EndTime: "21:30",
			Location: "Omaha, NE", Venue: "Saddle Creek Barn & Gardens",
			Price: 85, Category: "food",
			Tags: []string{"dinner", "farm-to-table", "wine", "fine dining"},
		},
		{
			Name:        "Contemporary Art Exhibition: \"Flux\"",
			Description: "The Joslyn Art Museum presents \"Flux,\" a group exhibition exploring themes of change, movement, and transformation through painting, sculpture, and installation. Featuring 12 emerging artists from the Great Plains region. Opening reception on April 5th included with ticket.",
			Date:        "2026-04-05", Time: "17:00", EndDate: "2026-06-01", EndTime: "20:00",
			Location: "Omaha, NE", Venue: "Joslyn Art Museum",
			Price: 15, Category: "arts",
			Tags: []string{"art", "exhibition", "gallery", "contemporary"},
		},
		{
			Name:        "Raikes Hackathon 2026",
			Description: "The Raikes School annual hackathon — 24 hours to build something amazing. Open to all University of Nebraska-Lincoln students. Work solo or in teams of up to 4. Prizes for top 3 teams plus sponsor awards in categories like Best Use of AI and Best Social Impact. Food, caffeine, and mentors provided.",
			Date:        "2026-03-28", Time: "18:00", EndDate: "2026-03-29", EndTime: "18:00",
			Location: "Lincoln, NE", Venue: "Raikes School, University of Nebraska",
			Price: 0, Category: "technology",
			Tags: []string{"hackathon", "UNL", "coding", "students", "prizes"},
		},
		{
			Name:        "Community Garden Planting Day",
			Description: "Spring is here — time to get your hands dirty! Join the Benson neighborhood community garden for our annual spring planting day. We'll be prepping beds, planting seeds, and teaching composting basics. Bring gloves if you have them; tools will be provided. Potluck lunch afterward.",
			Date:        "2026-04-11", Time: "09:00", EndDate: "2026-04-11", EndTime: "14:00",
			Location: "Omaha, NE", Venue: "Benson Community Garden",
			Price: 0, Category: "community",
			Tags: []string{"gardening", "volunteer", "neighborhood", "family-friendly"},
		},
		{
			Name:        "Morning Yoga in Elmwood Park",
			Description: "Start your weekend right with an outdoor yoga session in one of Omaha's most beautiful parks. Instructor Dana Lee leads a 75-minute flow suitable for all skill levels. Bring your own mat (extras available). Class ends with a guided meditation. Rain location: Elmwood Rec Center.",
			Date:        "2026-04-04", Time: "07:30", EndDate: "2026-04-04", EndTime: "08:45",
			Location: "Omaha, NE", Venue: "Elmwood Park — West Lawn",
			Price: 10, Category: "health",
			Tags: []string{"yoga", "outdoor", "meditation", "wellness"},
		},
		{
			Name:        "UNL Spring Career Fair",
			Description: "Over 200 employers from Fortune 500 companies to local startups will be on campus recruiting for internships, co-ops, and full-time positions. All majors welcome. Dress professionally and bring copies of your résumé. Free LinkedIn headshots available at the Husker Career Center booth.",
			Date:        "2026-03-25", Time: "10:00", EndDate: "2026-03-25", EndTime: "15:00",
			Location: "Lincoln, NE", Venue: "Devaney Sports Center, UNL",
			Price: 0, Category: "education",
			Tags: []string{"careers", "networking", "internships", "UNL"},
		},
		{
			Name:        "Omaha Craft Beer Festival",
			Description: "Nebraska's largest craft beer festival returns to Aksarben Village! Sample 150+ beers from 40+ breweries across the state and region. Live music on two stages, food trucks, and a homebrew competition. VIP entry at 12 PM includes unlimited sampling and exclusive tappings. General admission at 2 PM.",
			Date:        "2026-04-18", Time: "12:00", EndDate: "2026-04-18", EndTime: "20:00",
			Location: "Omaha, NE", Venue: "Aksarben Village",
			Price: 45, Category: "food",
			Tags: []string{"beer", "craft beer", "21+", "festival", "live music"},
		},
	}
}
