package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"freeship-watcher/config"
	"freeship-watcher/internal/asin"
	"freeship-watcher/internal/envutil"
	"freeship-watcher/internal/fetch"
)

func newCheckCmd() *cobra.Command {
	var (
		url string
		tag string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check price and shipping for a single product URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(url) == "" {
				return errors.New("missing required flag: --url")
			}

			cfg, err := config.NewConfig(config.NewViper())
			if err != nil {
				return err
			}
			if strings.TrimSpace(tag) != "" {
				cfg.AssociateTag = tag
			}

			out := cmd.OutOrStdout()

			target := url
			id, ok := asin.Extract(url)
			if ok {
				fmt.Fprintln(out, "Cleaned URL:", asin.ProductURL(id))
				target = asin.AssociateURL(id, cfg.AssociateTag)
				fmt.Fprintln(out, "Associate URL:", target)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Could not extract ASIN from URL, using it as-is")
			}

			reading, err := fetch.NewClient(cfg).Fetch(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("failed to retrieve price information: %w", err)
			}

			fmt.Fprintln(out, "Item price:", reading.ItemPrice)
			fmt.Fprintln(out, "Delivery price:", reading.ShippingLabel())
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Amazon product URL")
	cmd.Flags().StringVar(&tag, "tag", envutil.String(os.Getenv, "AMAZON_ASSOCIATE_ID", ""), "Amazon associate tag (optional)")
	return cmd
}
