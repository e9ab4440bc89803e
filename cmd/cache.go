package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/yksoni-monk/JobApplicationAI/internal/cache"
	"github.com/yksoni-monk/JobApplicationAI/internal/logger"

	"github.com/dustin/go-humanize"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the document cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "List cached document records",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}

		info, err := c.Info()
		if err != nil {
			return fmt.Errorf("reading cache info: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Cache directory: %s\n", info.Directory)
		if len(info.Records) == 0 {
			fmt.Fprintln(os.Stdout, "No cached documents.")
			return nil
		}

		for _, record := range info.Records {
			fmt.Fprintf(os.Stdout, "  %s  %s  %s  (cached %s)\n",
				record.Record,
				humanize.Bytes(uint64(record.SizeBytes)),
				record.SourcePath,
				record.CachedAt,
			)
		}
		fmt.Fprintf(os.Stdout, "Total: %d records, %s\n", len(info.Records), humanize.Bytes(uint64(info.TotalBytes)))

		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached document records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}

		if cmd.Flag("auto-approve").Value.String() == "false" {
			confirm := promptui.Select{
				Label: fmt.Sprintf("Clear all cached documents in %s?", c.Dir()),
				Items: []string{PromptYes, PromptNo},
			}
			_, action, err := confirm.Run()
			if err != nil {
				return err
			}
			if action == PromptNo {
				fmt.Fprintln(os.Stdout, "Aborted.")
				return nil
			}
		}

		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	cacheClearCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation")
}

func openCache() (*cache.Cache, error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	return cache.New(config.Cache.Dir, zl)
}
