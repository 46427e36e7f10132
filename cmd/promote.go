package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steamseek/steamseek/pkg/zones"
)

var promoteSource string

/*
promoteCmd moves everything in the temporal landing area to the persistent
area, applying the {source}#{timestamp}#{filename} naming convention and
deleting the originals.
*/
var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Promote temporal landing-zone files to the persistent area",
	Long:  longPromote,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := storageConn()

		if err != nil {
			return err
		}

		promoted, err := zones.Promote(
			cmd.Context(),
			conn,
			viper.GetString("zones.landing"),
			viper.GetString("zones.temporalPrefix"),
			viper.GetString("zones.persistentPrefix"),
			promoteSource,
		)

		if err != nil {
			return err
		}

		log.Info("promotion finished", "source", promoteSource, "promoted", promoted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)
	promoteCmd.Flags().StringVarP(&promoteSource, "source", "s", "", "data source label for promoted files")
	promoteCmd.MarkFlagRequired("source")
}

var longPromote = `
Move every file under the temporal prefix of the landing zone bucket to the
persistent prefix. Promoted files are renamed to embed the data source and
the promotion timestamp, and the temporal originals are deleted.
`
