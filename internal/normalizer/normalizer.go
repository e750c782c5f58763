// Package normalizer maps heterogeneous search API payloads onto the canonical
// movie record and substitutes the built-in sample catalog when no usable
// records are available.
package normalizer

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"netflix-backend/internal/models"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 9

	ReasonFetchFailed     = "fetch failed"
	ReasonNoUsableRecords = "no usable records"
)

type Normalizer struct {
	policy Policy
	rules  []FieldRule
	absent map[string]struct{}
	logger *logrus.Logger
	newID  func() string
	// fallback is mapped once with the default rules.
	fallback []models.Movie

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Normalizer)

// WithSeed makes shuffling and random picks reproducible.
func WithSeed(seed uint64) Option {
	return func(n *Normalizer) {
		n.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(fn func() string) Option {
	return func(n *Normalizer) {
		n.newID = fn
	}
}

func New(policy Policy, logger *logrus.Logger, opts ...Option) (*Normalizer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	n := &Normalizer{
		policy: policy,
		rules:  policy.Fields,
		absent: make(map[string]struct{}, len(policy.AbsentValues)),
		logger: logger,
		newID:  randomID,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, v := range policy.AbsentValues {
		n.absent[v] = struct{}{}
	}
	for _, opt := range opts {
		opt(n)
	}
	n.fallback = buildFallback(n.newID)
	return n, nil
}

func (n *Normalizer) Policy() Policy {
	return n.policy
}

// Extraction is the raw record list found in a payload.
type Extraction struct {
	Records []any
	// Container is the key the records came from; empty for bare arrays and
	// passthrough payloads.
	Container string
	// Passthrough is true when no container key matched and the payload was
	// not an array.
	Passthrough bool
}

// Extract applies the container-key policy: each key in order, then the payload
// itself when it is an array, else the payload passes through unchanged. A
// passthrough object is not a record list and yields no records.
func (n *Normalizer) Extract(payload any) Extraction {
	if obj, ok := payload.(map[string]any); ok {
		for _, key := range n.policy.ContainerKeys {
			value, found := obj[key]
			if !found || falsy(value) {
				continue
			}
			records, _ := value.([]any)
			return Extraction{Records: records, Container: key}
		}
	}

	if records, ok := payload.([]any); ok {
		return Extraction{Records: records}
	}

	return Extraction{Passthrough: true}
}

// Normalize returns one canonical record per extracted raw record, in order.
func (n *Normalizer) Normalize(payload any) ([]models.Movie, Extraction) {
	extraction := n.Extract(payload)
	if extraction.Passthrough && n.logger != nil {
		n.logger.WithField("payload_type", typeName(payload)).Debug("No container key matched, treating payload as record list")
	}

	movies := make([]models.Movie, 0, len(extraction.Records))
	for _, raw := range extraction.Records {
		movies = append(movies, n.NormalizeRecord(raw))
	}
	return movies, extraction
}

// NormalizeRecord maps one raw record. Anything other than a JSON object maps
// to a record carrying only defaults.
func (n *Normalizer) NormalizeRecord(raw any) models.Movie {
	obj, _ := raw.(map[string]any)

	movie := models.Movie{}
	for _, rule := range n.rules {
		value, ok := n.lookup(obj, rule.Keys)
		switch rule.Attribute {
		case AttrRating:
			movie.VoteAverage = n.rating(value, ok, rule.Default)
		case AttrID:
			movie.ID = n.text(value, ok, rule.Default)
			if movie.ID == "" {
				movie.ID = n.newID()
			}
		case AttrTitle:
			movie.Title = n.text(value, ok, rule.Default)
			movie.Name = movie.Title
		case AttrPoster:
			movie.PosterPath = n.text(value, ok, rule.Default)
		case AttrBackdrop:
			movie.BackdropPath = n.text(value, ok, rule.Default)
		case AttrOverview:
			movie.Overview = n.text(value, ok, rule.Default)
		case AttrReleaseDate:
			movie.ReleaseDate = n.text(value, ok, rule.Default)
		case AttrType:
			movie.Type = n.text(value, ok, rule.Default)
		case AttrGenre:
			movie.Genre = n.text(value, ok, rule.Default)
		case AttrIMDBID:
			movie.IMDBID = n.text(value, ok, rule.Default)
		case AttrDuration:
			movie.Duration = n.text(value, ok, rule.Default)
		case AttrMaturity:
			movie.Maturity = n.text(value, ok, rule.Default)
		}
	}
	return movie
}

// Resolve turns the outcome of one fetch into a movie list with provenance.
func (n *Normalizer) Resolve(payload any, fetchErr error) models.MovieList {
	if fetchErr != nil {
		return models.MovieList{
			Movies: n.Fallback(),
			Source: models.SourceFallback,
			Reason: ReasonFetchFailed,
		}
	}

	movies, extraction := n.Normalize(payload)
	if len(movies) == 0 {
		return models.MovieList{
			Movies:    n.Fallback(),
			Source:    models.SourceFallback,
			Reason:    ReasonNoUsableRecords,
			Container: extraction.Container,
		}
	}

	return models.MovieList{
		Movies:    movies,
		Source:    models.SourceLive,
		Container: extraction.Container,
	}
}

// Pick returns a random movie from the list.
func (n *Normalizer) Pick(movies []models.Movie) (models.Movie, bool) {
	if len(movies) == 0 {
		return models.Movie{}, false
	}
	n.mu.Lock()
	idx := n.rng.IntN(len(movies))
	n.mu.Unlock()
	return movies[idx], true
}

// falsy reports values a container key may hold without being selected:
// null, empty string, false and zero.
func falsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	default:
		return false
	}
}

func (n *Normalizer) lookup(obj map[string]any, keys []string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	for _, key := range keys {
		value, found := obj[key]
		if found && n.present(value) {
			return value, true
		}
	}
	return nil, false
}

func (n *Normalizer) present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		if v == "" {
			return false
		}
		_, isAbsent := n.absent[v]
		return !isAbsent
	case []any:
		return len(v) > 0
	case map[string]any:
		return false
	default:
		return true
	}
}

func (n *Normalizer) text(value any, ok bool, fallback string) string {
	if !ok {
		return fallback
	}
	s, isScalar := scalarString(value)
	if !isScalar {
		return fallback
	}
	return s
}

func (n *Normalizer) rating(value any, ok bool, fallback string) float64 {
	if ok {
		if f, parsed := toFloat(value); parsed {
			return f
		}
		return 0
	}
	if f, err := strconv.ParseFloat(fallback, 64); err == nil {
		return f
	}
	return 0
}

// scalarString renders JSON scalars as text. Arrays of scalars are joined with
// ", " so list-shaped genre fields still produce a genre string.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// toFloat coerces a rating value. Strings are read like a lenient
// parse-float: the longest numeric prefix counts, so "7.5/10" is 7.5.
func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		return parseFloatPrefix(v.String())
	case string:
		return parseFloatPrefix(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFloatPrefix(s string) (float64, bool) {
	prefix := leadingFloat.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func randomID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}
