package normalizer

import (
	"netflix-backend/internal/models"
)

const (
	minFallback = 6
	maxFallback = 8
)

// fallbackCatalog is served whenever live retrieval fails or yields nothing.
var fallbackCatalog = []map[string]any{
	{
		"id":            "netflix1",
		"title":         "Stranger Things",
		"poster_path":   "https://images.unsplash.com/photo-1626814026160-773741800674?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1626814026160-773741800674?w=1280&h=720&fit=crop",
		"overview":      "When a young boy disappears, his mother, a police chief and his friends must confront terrifying supernatural forces in order to get him back.",
		"vote_average":  8.7,
		"release_date":  "2016",
		"type":          "series",
		"genre":         "Drama, Fantasy, Horror",
		"duration":      "1h",
		"maturity":      "16+",
	},
	{
		"id":            "netflix2",
		"title":         "The Crown",
		"poster_path":   "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1280&h=720&fit=crop",
		"overview":      "Follows the political rivalries and romance of Queen Elizabeth II's reign and the events that shaped the second half of the 20th century.",
		"vote_average":  8.6,
		"release_date":  "2016",
		"type":          "series",
		"genre":         "Drama, History",
		"duration":      "1h",
		"maturity":      "16+",
	},
	{
		"id":            "netflix3",
		"title":         "Breaking Bad",
		"poster_path":   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=1280&h=720&fit=crop",
		"overview":      "A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine in order to secure his family's future.",
		"vote_average":  9.5,
		"release_date":  "2008",
		"type":          "series",
		"genre":         "Crime, Drama, Thriller",
		"duration":      "45m",
		"maturity":      "18+",
	},
	{
		"id":            "netflix4",
		"title":         "Money Heist",
		"poster_path":   "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=1280&h=720&fit=crop",
		"overview":      "An unusual group of robbers attempt to carry out the most perfect robbery in Spanish history - stealing 2.4 billion euros from the Royal Mint.",
		"vote_average":  8.2,
		"release_date":  "2017",
		"type":          "series",
		"genre":         "Action, Crime, Drama",
		"duration":      "50m",
		"maturity":      "16+",
	},
	{
		"id":            "netflix5",
		"title":         "The Witcher",
		"poster_path":   "https://images.unsplash.com/photo-1578915622602-65d758a9c716?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1578915622602-65d758a9c716?w=1280&h=720&fit=crop",
		"overview":      "Geralt of Rivia, a solitary monster hunter, struggles to find his place in a world where people often prove more wicked than beasts.",
		"vote_average":  8.2,
		"release_date":  "2019",
		"type":          "series",
		"genre":         "Action, Adventure, Drama",
		"duration":      "1h",
		"maturity":      "18+",
	},
	{
		"id":            "netflix6",
		"title":         "Squid Game",
		"poster_path":   "https://images.unsplash.com/photo-1608501078770-02b39ed4c15b?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1608501078770-02b39ed4c15b?w=1280&h=720&fit=crop",
		"overview":      "Hundreds of cash-strapped players accept a strange invitation to compete in children's games. Inside, a tempting prize awaits with deadly high stakes.",
		"vote_average":  8.0,
		"release_date":  "2021",
		"type":          "series",
		"genre":         "Action, Drama, Mystery",
		"duration":      "55m",
		"maturity":      "18+",
	},
	{
		"id":            "netflix7",
		"title":         "The Queen's Gambit",
		"poster_path":   "https://images.unsplash.com/photo-1515934751635-c81c6aa9ff2e?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1515934751635-c81c6aa9ff2e?w=1280&h=720&fit=crop",
		"overview":      "Orphaned at the tender age of nine, prodigious introvert Beth Harmon discovers and masters the game of chess in 1960s USA.",
		"vote_average":  8.5,
		"release_date":  "2020",
		"type":          "series",
		"genre":         "Drama, Sport",
		"duration":      "45m",
		"maturity":      "13+",
	},
	{
		"id":            "netflix8",
		"title":         "Dark",
		"poster_path":   "https://images.unsplash.com/photo-1535016120720-40c646be5580?w=300&h=450&fit=crop",
		"backdrop_path": "https://images.unsplash.com/photo-1535016120720-40c646be5580?w=1280&h=720&fit=crop",
		"overview":      "A family saga with a supernatural twist, set in a German town, where the disappearance of two young children exposes the broken relationships among four families.",
		"vote_average":  8.7,
		"release_date":  "2017",
		"type":          "series",
		"genre":         "Drama, Mystery, Sci-Fi",
		"duration":      "50m",
		"maturity":      "16+",
	},
}

// buildFallback maps the sample entries with the default rules, so a custom
// policy never changes what the fallback catalog serves.
func buildFallback(newID func() string) []models.Movie {
	policy := DefaultPolicy()
	base := &Normalizer{
		policy: policy,
		rules:  policy.Fields,
		absent: make(map[string]struct{}, len(policy.AbsentValues)),
		newID:  newID,
	}
	for _, v := range policy.AbsentValues {
		base.absent[v] = struct{}{}
	}

	movies := make([]models.Movie, 0, len(fallbackCatalog))
	for _, raw := range fallbackCatalog {
		movies = append(movies, base.NormalizeRecord(raw))
	}
	return movies
}

// FallbackCatalog returns every sample entry in catalog order.
func (n *Normalizer) FallbackCatalog() []models.Movie {
	movies := make([]models.Movie, len(n.fallback))
	copy(movies, n.fallback)
	return movies
}

// Fallback returns between six and eight distinct sample entries in random order.
func (n *Normalizer) Fallback() []models.Movie {
	order := make([]int, len(n.fallback))
	for i := range order {
		order[i] = i
	}

	n.mu.Lock()
	n.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	count := minFallback + n.rng.IntN(maxFallback-minFallback+1)
	n.mu.Unlock()

	movies := make([]models.Movie, 0, count)
	for _, idx := range order[:count] {
		movies = append(movies, n.fallback[idx])
	}
	return movies
}
