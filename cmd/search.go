package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steamseek/steamseek/pkg/provider"
	"github.com/steamseek/steamseek/pkg/stores/chroma"
)

var (
	searchQuery string
	modalities  []string
	topK        int
)

/*
searchCmd runs a raw similarity search against the vector collections,
without query expansion or any LLM involvement. Useful for inspecting what
the index actually returns for a query.
*/
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Raw similarity search against the vector collections",
	Long:  longSearch,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(log.InfoLevel)
		ctx := cmd.Context()

		embedder, err := provider.EmbedderFromConfig(viper.GetViper())

		if err != nil {
			return err
		}

		embedding, err := embedder.Embed(ctx, searchQuery)

		if err != nil {
			return err
		}

		store := chroma.New(viper.GetString("chroma.endpoint"))

		for _, modality := range modalities {
			collection, err := store.ResolveCollection(ctx, modality)

			if err != nil {
				log.Error("no collection for modality", "modality", modality, "error", err)
				continue
			}

			results, err := store.Query(ctx, collection.ID, embedding, topK)

			if err != nil {
				log.Error("query failed", "collection", collection.Name, "error", err)
				continue
			}

			for _, result := range results {
				fmt.Printf("%s\t%s\t%.4f\n", modality, result.ID, result.Distance)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "text to search for")
	searchCmd.Flags().StringSliceVarP(
		&modalities, "modalities", "m", []string{"text", "image", "video"},
		"which collections to probe",
	)
	searchCmd.Flags().IntVarP(&topK, "top-k", "k", 3, "results per modality")
	searchCmd.MarkFlagRequired("query")
}

var longSearch = `
Embed the query text and run a k-nearest-neighbour search against each of
the selected vector collections, printing matching record identifiers and
their distances. No LLM is involved.
`
