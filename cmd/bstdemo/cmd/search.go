package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/linkedbst/internal/searchbench"
)

type searchConfiguration struct {
	Base      *baseConfiguration
	WordsFile string
	Bench     searchbench.Config
}

func newSearchCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &searchConfiguration{Base: baseConfig, Bench: searchbench.DefaultConfig()}
	var cmd = &cobra.Command{
		Use:   "search",
		Short: "Times searching random words in a list and in trees of different shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, config)
		},
	}
	cmd.Flags().StringVar(&config.WordsFile, "words", "", "word list file, one word per line")
	cmd.Flags().IntVar(&config.Bench.TreeSize, "tree-size", config.Bench.TreeSize, "number of words in each searched structure")
	cmd.Flags().IntVar(&config.Bench.Queries, "queries", config.Bench.Queries, "number of random words to search for")
	cmd.Flags().Int64Var(&config.Bench.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	if err := cmd.MarkFlagRequired("words"); err != nil {
		panic(err)
	}
	return cmd
}

func runSearch(cmd *cobra.Command, config *searchConfiguration) error {
	log := config.Base.log
	if config.Bench.Seed == 0 {
		config.Bench.Seed = time.Now().UnixNano()
	}
	words, err := searchbench.LoadWordsFile(config.WordsFile)
	if err != nil {
		return err
	}
	log.Info().Str("file", config.WordsFile).Int("words", len(words)).Int64("seed", config.Bench.Seed).Msg("word list loaded")

	plan, err := searchbench.NewPlan(words, config.Bench)
	if err != nil {
		return fmt.Errorf("planning search: %w", err)
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	results := searchbench.Run(plan, log)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Searching for %d random words in structures of %d words:\n\n", len(plan.Queries), len(plan.Sorted))
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}
