package cmd

import (
	"fmt"
	"os"

	"phrase-agent/feature/phrase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var phraseRandom bool

// phraseCmd represents the phrase command
var phraseCmd = &cobra.Command{
	Use:   "phrase",
	Short: "Print the agent's catch-phrase",
	Long:  `Prints the agent's catch-phrase to standard output. By default the signature phrase is printed; with --random a phrase is picked at random.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := phrase.NewService(phrase.DefaultPhrases, zap.NewNop())
		if err != nil {
			fmt.Printf("Failed to initialize phrase service: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(svc.Select(phraseRandom))
	},
}

func init() {
	phraseCmd.Flags().BoolVar(&phraseRandom, "random", false, "Print a random phrase each time.")
	RootCmd.AddCommand(phraseCmd)
}
