package normalizer

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Attribute names a field of the canonical movie record.
type Attribute string

const (
	AttrID          Attribute = "id"
	AttrTitle       Attribute = "title"
	AttrPoster      Attribute = "poster_path"
	AttrBackdrop    Attribute = "backdrop_path"
	AttrOverview    Attribute = "overview"
	AttrRating      Attribute = "vote_average"
	AttrReleaseDate Attribute = "release_date"
	AttrType        Attribute = "type"
	AttrGenre       Attribute = "genre"
	AttrIMDBID      Attribute = "imdb_id"
	AttrDuration    Attribute = "duration"
	AttrMaturity    Attribute = "maturity"
)

var knownAttributes = map[Attribute]struct{}{
	AttrID: {}, AttrTitle: {}, AttrPoster: {}, AttrBackdrop: {}, AttrOverview: {},
	AttrRating: {}, AttrReleaseDate: {}, AttrType: {}, AttrGenre: {}, AttrIMDBID: {},
	AttrDuration: {}, AttrMaturity: {},
}

// FieldRule lists, in priority order, the source keys an attribute may be read
// from. Default applies when none of them holds a present value; an empty
// default on the id attribute means "generate a random token".
type FieldRule struct {
	Attribute Attribute `yaml:"attribute"`
	Keys      []string  `yaml:"keys"`
	Default   string    `yaml:"default"`
}

// Policy is the whole normalization policy as data.
type Policy struct {
	// ContainerKeys are tried in order when the payload is an object.
	ContainerKeys []string    `yaml:"container_keys"`
	Fields        []FieldRule `yaml:"fields"`
	// AbsentValues are string values treated as missing (OMDB uses "N/A").
	AbsentValues []string `yaml:"absent_values"`
}

const (
	PlaceholderPoster   = "https://via.placeholder.com/300x450?text=No+Image"
	PlaceholderBackdrop = "https://picsum.photos/seed/netflix-banner/1280/720.jpg"
	DefaultTitle        = "Unknown Title"
	DefaultOverview     = "No description available."
)

func DefaultPolicy() Policy {
	return Policy{
		ContainerKeys: []string{"results", "data", "movies", "Search"},
		Fields: []FieldRule{
			{Attribute: AttrID, Keys: []string{"id", "imdbID"}},
			{Attribute: AttrTitle, Keys: []string{"title", "Title", "name"}, Default: DefaultTitle},
			{Attribute: AttrPoster, Keys: []string{"poster_path", "Poster", "poster", "image", "thumbnail"}, Default: PlaceholderPoster},
			{Attribute: AttrBackdrop, Keys: []string{"backdrop_path", "backdrop", "poster_path", "Poster", "poster"}, Default: PlaceholderBackdrop},
			{Attribute: AttrOverview, Keys: []string{"overview", "Plot", "description", "synopsis"}, Default: DefaultOverview},
			{Attribute: AttrRating, Keys: []string{"vote_average", "rating", "imdbRating", "score"}, Default: "0"},
			{Attribute: AttrReleaseDate, Keys: []string{"release_date", "Year", "year", "release"}, Default: "2023"},
			{Attribute: AttrType, Keys: []string{"type", "Type"}, Default: "movie"},
			{Attribute: AttrGenre, Keys: []string{"genre", "Genre"}, Default: "Unknown"},
			{Attribute: AttrIMDBID, Keys: []string{"imdbID", "id"}},
			{Attribute: AttrDuration, Keys: []string{"duration", "runtime", "Runtime"}, Default: "2h"},
			{Attribute: AttrMaturity, Keys: []string{"maturity", "age_rating", "Rated"}, Default: "13+"},
		},
		AbsentValues: []string{"N/A"},
	}
}

// LoadPolicy reads a YAML policy file and layers it over DefaultPolicy: a
// non-empty container_keys list replaces the default order, and each listed
// field replaces the default rule for its attribute. A listed field without a
// default keeps the built-in one.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read normalizer policy: %w", err)
	}

	var override Policy
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Policy{}, fmt.Errorf("failed to parse normalizer policy %s: %w", path, err)
	}

	policy := DefaultPolicy()
	if len(override.ContainerKeys) > 0 {
		policy.ContainerKeys = override.ContainerKeys
	}
	if override.AbsentValues != nil {
		policy.AbsentValues = override.AbsentValues
	}
	for _, rule := range override.Fields {
		replaced := false
		for i := range policy.Fields {
			if policy.Fields[i].Attribute == rule.Attribute {
				if rule.Default == "" {
					rule.Default = policy.Fields[i].Default
				}
				policy.Fields[i] = rule
				replaced = true
				break
			}
		}
		if !replaced {
			policy.Fields = append(policy.Fields, rule)
		}
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid normalizer policy %s: %w", path, err)
	}
	return policy, nil
}

func (p Policy) Validate() error {
	seen := make(map[Attribute]bool, len(p.Fields))
	for _, rule := range p.Fields {
		if _, ok := knownAttributes[rule.Attribute]; !ok {
			return fmt.Errorf("unknown attribute %q", rule.Attribute)
		}
		if seen[rule.Attribute] {
			return fmt.Errorf("attribute %q listed twice", rule.Attribute)
		}
		seen[rule.Attribute] = true
		if len(rule.Keys) == 0 {
			return fmt.Errorf("attribute %q has no source keys", rule.Attribute)
		}
		if rule.Attribute == AttrRating && rule.Default != "" {
			if _, err := strconv.ParseFloat(rule.Default, 64); err != nil {
				return fmt.Errorf("rating default %q is not a number", rule.Default)
			}
		}
	}
	for attr := range knownAttributes {
		if !seen[attr] {
			return fmt.Errorf("attribute %q has no rule", attr)
		}
	}
	return nil
}
