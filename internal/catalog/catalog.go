package catalog

import (
	"encoding/json" // JSON decoding of the question file
	"errors"        // Sentinel errors
	"fmt"           // Error wrapping
	"io"            // Reader input
	"math/rand/v2"  // Uniform selection
	"os"            // File access
	"sort"          // Stable category listing
	"strings"       // Trimming
)

var (
	ErrEmptyCatalog     = errors.New("no valid questions found")             // Load produced zero entries
	ErrCategoryNotFound = errors.New("no questions found for this category") // No entry matches the category
	ErrInvalidArgument  = errors.New("category parameter is required")       // Blank category argument
)

// Question is a single trivia entry
type Question struct {
	Category string          `json:"category"` // Filter key
	Question string          `json:"question"` // Prompt text
	Choices  []string        `json:"choices"`  // Possible answers, may be empty
	Answer   json.RawMessage `json:"answer"`   // Correct answer as found in the source
}

// Catalog is an immutable set of questions grouped by category. It is safe
// for concurrent use.
type Catalog struct {
	questions  []Question       // All retained questions in source order
	byCategory map[string][]int // Category -> indexes into questions
	pick       func(n int) int  // Returns a uniform index in [0, n)
}

// Option customises a Catalog
type Option func(*Catalog)

// WithPicker replaces the random index source. pick must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(c *Catalog) {
		c.pick = pick
	}
}

// rawQuestion mirrors a source entry before validation
type rawQuestion struct {
	Category string          `json:"category"`
	Question string          `json:"question"`
	Choices  json.RawMessage `json:"choices"`
	Answer   json.RawMessage `json:"answer"`
}

// LoadFile reads a JSON question file from disk
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load parses a JSON array of questions. Entries that are not objects or that
// lack a category or question are dropped, and choices that are not a list
// become empty.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	var entries []json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]Question, 0, len(entries))
	for _, e := range entries {
		var raw rawQuestion
		// Skip entries that are not JSON objects or have mistyped fields
		if err := json.Unmarshal(e, &raw); err != nil {
			continue
		}
		questions = append(questions, Question{
			Category: raw.Category,
			Question: raw.Question,
			Choices:  decodeChoices(raw.Choices),
			Answer:   raw.Answer,
		})
	}
	return New(questions, opts...)
}

// New builds a catalog from already decoded questions using the same
// retention rules as Load.
func New(questions []Question, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[string][]int),
		pick:       rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, q := range questions {
		q.Category = strings.TrimSpace(q.Category)
		q.Question = strings.TrimSpace(q.Question)
		if q.Category == "" || q.Question == "" {
			continue
		}
		if q.Choices == nil {
			q.Choices = []string{}
		}
		if len(q.Answer) == 0 {
			q.Answer = json.RawMessage("null")
		}
		c.byCategory[q.Category] = append(c.byCategory[q.Category], len(c.questions))
		c.questions = append(c.questions, q)
	}

	if len(c.questions) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// RandomByCategory returns a question chosen uniformly among those whose
// category equals the trimmed argument.
func (c *Catalog) RandomByCategory(category string) (Question, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Question{}, ErrInvalidArgument
	}
	matches := c.byCategory[category]
	if len(matches) == 0 {
		return Question{}, ErrCategoryNotFound
	}
	return c.questions[matches[c.pick(len(matches))]], nil
}

// Categories returns the distinct categories in lexical order
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCategory))
	for k := range c.byCategory {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of questions held
func (c *Catalog) Len() int {
	return len(c.questions)
}

// decodeChoices keeps list values only. Non-string elements are rendered with
// their JSON text.
func decodeChoices(b json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil || items == nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(it))
	}
	return out
}
