package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steamseek/steamseek/pkg/catalog"
	"github.com/steamseek/steamseek/pkg/provider"
	"github.com/steamseek/steamseek/pkg/rag"
	"github.com/steamseek/steamseek/pkg/stores/chroma"
	"github.com/steamseek/steamseek/pkg/stores/s3"
)

var query string

/*
recommendCmd runs the full recommendation pipeline for a single query:
query expansion, multi-modal retrieval, merging, relevance filtering and
answer synthesis.
*/
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend games for a natural-language query",
	Long:  longRecommend,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(log.InfoLevel)

		ctx, cancel := context.WithTimeout(
			cmd.Context(), viper.GetDuration("timeouts.pipeline"),
		)
		defer cancel()

		conn, err := storageConn()

		if err != nil {
			return err
		}

		games, err := catalog.Load(
			ctx,
			conn,
			viper.GetString("zones.exploitation"),
			viper.GetString("catalog.prefix"),
			viper.GetString("catalog.suffix"),
		)

		if err != nil {
			return err
		}

		llm, err := provider.FromConfig(viper.GetViper())

		if err != nil {
			return err
		}

		embedder, err := provider.EmbedderFromConfig(viper.GetViper())

		if err != nil {
			return err
		}

		pipeline := rag.NewPipeline(
			rag.WithProvider(llm),
			rag.WithRetriever(rag.NewRetriever(
				rag.WithVectorStore(chroma.New(viper.GetString("chroma.endpoint"))),
				rag.WithEmbedder(embedder),
				rag.WithPerModality(viper.GetInt("retrieval.perModality")),
			)),
			rag.WithCatalog(games),
			rag.WithMergeLimit(viper.GetInt("retrieval.mergeLimit")),
		)

		result, err := pipeline.Run(ctx, query)

		if err != nil {
			return err
		}

		fmt.Println(result.Answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVarP(&query, "query", "q", "", "what kind of game you are looking for")
	recommendCmd.MarkFlagRequired("query")
}

/*
storageConn builds the MinIO connection shared by all subcommands. The
endpoint lives in the config file, the key pair comes from the environment.
*/
func storageConn() (*s3.Conn, error) {
	return s3.NewConn(s3.WithCredentials(
		viper.GetString("s3.endpoint"),
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		viper.GetBool("s3.useSSL"),
	))
}

var longRecommend = `
Run the full recommendation pipeline for one query. The query is expanded
into a hypothetical game description, matched against the text, image and
video vector collections, and the merged shortlist is filtered and written
up by the configured LLM provider.
`
