package searchbench

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrNoWords = errors.New("word list is empty")

// Config of a search benchmark.
type Config struct {
	// TreeSize is the number of words each searched structure holds.
	TreeSize int
	// Queries is the number of distinct words searched for.
	Queries int
	// Seed of the random choices.
	Seed int64
}

func DefaultConfig() Config {
	return Config{TreeSize: 900, Queries: 10000}
}

func (c Config) Validate() error {
	if c.TreeSize < 1 {
		return fmt.Errorf("tree size must be positive, got %d", c.TreeSize)
	}
	if c.Queries < 1 {
		return fmt.Errorf("query count must be positive, got %d", c.Queries)
	}
	return nil
}

// Plan holds the words the structures are built from and the words searched for.
type Plan struct {
	// Sorted is the first TreeSize words in file order. For an alphabetical
	// word list a tree built from it degenerates into a list.
	Sorted []string
	// Random is TreeSize words picked at random without repetition. It's
	// always a prefix of Queries.
	Random []string
	// Queries is up to Config.Queries words picked at random without repetition.
	Queries []string
}

// NewPlan picks the words for a benchmark. Fewer words than requested are
// used when the list is short.
func NewPlan(words []string, cfg Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	perm := rg.Perm(len(words))
	queries := make([]string, min(cfg.Queries, len(words)))
	for i := range queries {
		queries[i] = words[perm[i]]
	}
	n := min(cfg.TreeSize, len(words))
	return &Plan{
		Sorted:  words[:n:n],
		Random:  queries[:min(n, len(queries)):min(n, len(queries))],
		Queries: queries,
	}, nil
}
