package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/g-m-twostay/linkedbst/internal/searchbench"
)

type showConfiguration struct {
	Base      *baseConfiguration
	WordsFile string
	Limit     int
	Shuffle   bool
	Seed      int64
}

func newShowCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &showConfiguration{Base: baseConfig}
	var cmd = &cobra.Command{
		Use:   "show",
		Short: "Draws a tree built from the first words of a list, before and after rebalancing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, config)
		},
	}
	cmd.Flags().StringVar(&config.WordsFile, "words", "", "word list file, one word per line")
	cmd.Flags().IntVar(&config.Limit, "limit", 15, "number of words to put in the tree")
	cmd.Flags().BoolVar(&config.Shuffle, "shuffle", false, "add the words in random order")
	cmd.Flags().Int64Var(&config.Seed, "seed", 1, "random seed used by --shuffle")
	if err := cmd.MarkFlagRequired("words"); err != nil {
		panic(err)
	}
	return cmd
}

func runShow(cmd *cobra.Command, config *showConfiguration) error {
	if config.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", config.Limit)
	}
	words, err := searchbench.LoadWordsFile(config.WordsFile)
	if err != nil {
		return err
	}
	words = words[:min(config.Limit, len(words))]
	if config.Shuffle {
		rand.New(rand.NewSource(config.Seed)).Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	}
	tree := Trees.From(words...)
	out := cmd.OutOrStdout()
	describe(out, "As added", tree)
	tree.Rebalance()
	describe(out, "Rebalanced", tree)
	config.Base.log.Debug().Int("words", tree.Size()).Int("height", tree.Height()).Msg("tree drawn")
	return nil
}

func describe(w io.Writer, title string, tree *Trees.LinkedBST[string]) {
	fmt.Fprintf(w, "%s: size=%d height=%d balanced=%v\n", title, tree.Size(), tree.Height(), tree.IsBalanced())
	fmt.Fprintln(w, tree)
}
