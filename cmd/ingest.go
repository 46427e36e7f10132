package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steamseek/steamseek/pkg/zones"
)

var (
	ingestSource string
	ingestDir    string
)

/*
ingestCmd uploads local files into the temporal area of the landing zone.
Files that are already present are skipped so re-runs after a partial
upload are safe.
*/
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Upload local files into the temporal landing zone",
	Long:  longIngest,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		bucket := viper.GetString("zones.landing")
		prefix := viper.GetString("zones.temporalPrefix")

		conn, err := storageConn()

		if err != nil {
			return err
		}

		if err := conn.EnsureBucket(ctx, bucket); err != nil {
			return err
		}

		uploaded := 0

		err = filepath.WalkDir(ingestDir, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				return nil
			}

			info, err := entry.Info()

			if err != nil {
				return err
			}

			fh, err := os.Open(path)

			if err != nil {
				return err
			}

			defer fh.Close()

			key := prefix + "/" + filepath.Base(path)
			ok, err := zones.Ingest(ctx, conn, bucket, key, fh, info.Size())

			if err != nil {
				return err
			}

			if ok {
				uploaded++
			}

			return nil
		})

		if err != nil {
			return err
		}

		log.Info("ingest finished", "source", ingestSource, "uploaded", uploaded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestSource, "source", "s", "", "data source the files came from")
	ingestCmd.Flags().StringVarP(&ingestDir, "dir", "d", "", "local directory to upload")
	ingestCmd.MarkFlagRequired("source")
	ingestCmd.MarkFlagRequired("dir")
}

var longIngest = `
Walk a local directory and upload every file into the temporal area of the
landing zone bucket. Files whose key already exists are skipped, except
backup files, which are always replaced.
`
