// Package searchbench times membership tests of a word list against search
// trees of different shapes and against a few well known containers.
package searchbench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type Result struct {
	Name     string
	Duration time.Duration
	Words    int // number of words in the searched structure
	Hits     int // number of queries found
	Extra    string
}

func (r Result) String() string {
	if r.Extra != "" {
		return fmt.Sprintf("%-30s %12.4fs  (%d words, %d hits) %s", r.Name, r.Duration.Seconds(), r.Words, r.Hits, r.Extra)
	}
	return fmt.Sprintf("%-30s %12.4fs  (%d words, %d hits)", r.Name, r.Duration.Seconds(), r.Words, r.Hits)
}

// Run searches every query of p in every contender, in a fixed order. Only
// the searches are timed.
func Run(p *Plan, log zerolog.Logger) []Result {
	results := make([]Result, 0, len(contenders))
	for _, c := range contenders {
		ws := c.words(p)
		has, extra := c.build(ws)
		r := Result{Name: c.name, Words: len(ws), Extra: extra}
		start := time.Now()
		for _, q := range p.Queries {
			if has(q) {
				r.Hits++
			}
		}
		r.Duration = time.Since(start)
		log.Debug().
			Str("structure", c.name).
			Int("words", r.Words).
			Int("hits", r.Hits).
			Dur("duration", r.Duration).
			Msg("searched")
		results = append(results, r)
	}
	log.Info().Int("queries", len(p.Queries)).Int("structures", len(results)).Msg("search benchmark done")
	return results
}
