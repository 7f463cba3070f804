package lexicon

import (
	"fmt"
	"net/url"
	"strings"
)

// Direction is a translation orientation. Each direction has its own document and cache.
type Direction int

const (
	EnglishToSwedish Direction = iota
	SwedishToEnglish
)

// DefaultBaseURL is where Folkets Lexikon publishes its XML files.
const DefaultBaseURL = "https://folkets-lexikon.csc.kth.se/folkets/"

var AllDirections = []Direction{EnglishToSwedish, SwedishToEnglish}

var directionAliases = map[string]Direction{
	"english":            EnglishToSwedish,
	"en":                 EnglishToSwedish,
	"english-to-swedish": EnglishToSwedish,
	"swedish":            SwedishToEnglish,
	"sv":                 SwedishToEnglish,
	"swedish-to-english": SwedishToEnglish,
}

// ParseDirection accepts a direction name or one of its aliases, case-insensitively.
func ParseDirection(value string) (Direction, error) {
	direction, ok := directionAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return 0, fmt.Errorf("invalid language: %s. Possible values are [english, swedish]", value)
	}
	return direction, nil
}

// Name is the canonical flag value of the direction.
func (d Direction) Name() string {
	if d == SwedishToEnglish {
		return "swedish"
	}
	return "english"
}

// ID names the cache artifacts of the direction.
func (d Direction) ID() string {
	if d == SwedishToEnglish {
		return "folkets_sv_en_public"
	}
	return "folkets_en_sv_public"
}

func (d Direction) String() string {
	if d == SwedishToEnglish {
		return "Swedish to English"
	}
	return "English to Swedish"
}

// Lexicon holds everything needed to acquire and load one direction.
// Cache paths are keys relative to the root of a cache.Store.
type Lexicon struct {
	Direction        Direction
	ID               string
	RemoteURL        string
	RawCachePath     string
	DecodedCachePath string
	Format           CacheFormat
}

type Selector struct {
	baseURL *url.URL
	format  CacheFormat
}

// NewSelector validates the base URL once so that Resolve cannot fail.
func NewSelector(baseURL string, format CacheFormat) (*Selector, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse(%s) > %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %s", baseURL)
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	if format == "" {
		format = FormatJSON
	}
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported cache format: %s", format)
	}
	return &Selector{baseURL: parsed, format: format}, nil
}

func (s *Selector) Resolve(direction Direction) Lexicon {
	id := direction.ID()
	rawName := id + ".xml"
	return Lexicon{
		Direction:        direction,
		ID:               id,
		RemoteURL:        s.baseURL.ResolveReference(&url.URL{Path: rawName}).String(),
		RawCachePath:     rawName,
		DecodedCachePath: id + "." + s.format.Extension(),
		Format:           s.format,
	}
}
