package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia_backend/internal/catalog"
)

const sampleJSON = `[
	{"category": "Science", "question": "Q1", "choices": ["A", "B"], "answer": "A"},
	{"category": "Science", "question": "Q2", "choices": ["C", "D"], "answer": "D"},
	{"category": "History", "question": "H1", "choices": ["X", "Y"], "answer": "X"}
]`

func TestRandomByCategory_OnlyReturnsMatchingCategory(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	seen := map[string]int{}
	for range 500 {
		q, err := c.RandomByCategory("Science")
		require.NoError(t, err)
		require.Equal(t, "Science", q.Category)
		seen[q.Question]++
	}

	assert.NotContains(t, seen, "H1")
	// Both Science questions must be reachable
	assert.Positive(t, seen["Q1"])
	assert.Positive(t, seen["Q2"])
}

func TestRandomByCategory_UsesPickerOverMatchesOnly(t *testing.T) {
	var (
		mu    sync.Mutex
		sizes []int
	)
	pick := func(n int) int {
		mu.Lock()
		sizes = append(sizes, n)
		mu.Unlock()
		return n - 1
	}

	c, err := catalog.Load(strings.NewReader(sampleJSON), catalog.WithPicker(pick))
	require.NoError(t, err)

	q, err := c.RandomByCategory("Science")
	require.NoError(t, err)
	assert.Equal(t, "Q2", q.Question)
	assert.Equal(t, []string{"C", "D"}, q.Choices)
	assert.JSONEq(t, `"D"`, string(q.Answer))

	q, err = c.RandomByCategory("History")
	require.NoError(t, err)
	assert.Equal(t, "H1", q.Question)

	assert.Equal(t, []int{2, 1}, sizes, "selection must range over the matching set")
}

func TestRandomByCategory_Errors(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	tests := map[string]struct {
		category string
		wantErr  error
	}{
		"empty category":          {category: "", wantErr: catalog.ErrInvalidArgument},
		"whitespace category":     {category: "   ", wantErr: catalog.ErrInvalidArgument},
		"absent category":         {category: "Geography", wantErr: catalog.ErrCategoryNotFound},
		"category match is exact": {category: "science", wantErr: catalog.ErrCategoryNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.RandomByCategory(tt.category)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRandomByCategory_TrimsArgument(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	q, err := c.RandomByCategory("  History ")
	require.NoError(t, err)
	assert.Equal(t, "History", q.Category)
}

func TestLoad_DiscardsMalformedEntries(t *testing.T) {
	const src = `[
		"not an object",
		42,
		null,
		{"category": "", "question": "no category"},
		{"category": "Art", "question": "   "},
		{"question": "missing category"},
		{"category": "  Art ", "question": " Who painted it? ", "choices": "not a list", "answer": "Monet"},
		{"category": "Math", "question": "2+2", "choices": [3, 4, "five"], "answer": 4},
		{"category": "Math", "question": "no answer"}
	]`

	c, err := catalog.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Art", "Math"}, c.Categories())

	art, err := c.RandomByCategory("Art")
	require.NoError(t, err)
	assert.Equal(t, "Who painted it?", art.Question)
	assert.Empty(t, art.Choices)
	assert.NotNil(t, art.Choices)

	first := catalog.WithPicker(func(int) int { return 0 })
	c, err = catalog.Load(strings.NewReader(src), first)
	require.NoError(t, err)

	math, err := c.RandomByCategory("Math")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "five"}, math.Choices)
	assert.JSONEq(t, `4`, string(math.Answer))

	last := catalog.WithPicker(func(n int) int { return n - 1 })
	c, err = catalog.Load(strings.NewReader(src), last)
	require.NoError(t, err)

	noAnswer, err := c.RandomByCategory("Math")
	require.NoError(t, err)
	assert.Equal(t, "null", string(noAnswer.Answer))
}

func TestLoad_EmptyCatalog(t *testing.T) {
	tests := map[string]string{
		"empty array":          `[]`,
		"only invalid entries": `[{"category": "A"}, {"question": "B"}, 1]`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(src))
			require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
		})
	}
}

func TestLoad_RejectsNonArray(t *testing.T) {
	for _, src := range []string{`{"category": "A"}`, `not json`} {
		_, err := catalog.Load(strings.NewReader(src))
		require.Error(t, err)
		assert.NotErrorIs(t, err, catalog.ErrEmptyCatalog)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadFile_ShippedQuestions(t *testing.T) {
	c, err := catalog.LoadFile("../../data/trivia_questions.json")
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	for _, cat := range c.Categories() {
		q, err := c.RandomByCategory(cat)
		require.NoError(t, err)
		assert.Equal(t, cat, q.Category)
	}
}

func TestNew_ConcurrentReads(t *testing.T) {
	c, err := catalog.New([]catalog.Question{
		{Category: "Science", Question: "Q1"},
		{Category: "Science", Question: "Q2"},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q, err := c.RandomByCategory("Science")
				assert.NoError(t, err)
				assert.Equal(t, "Science", q.Category)
			}
		}()
	}
	wg.Wait()
}
