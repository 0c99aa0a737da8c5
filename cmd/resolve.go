package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"storefront.GO/magento"
	"storefront.GO/resolver"
)

var resolveStore string

var resolveCmd = &cobra.Command{
	Use:   "product:resolve <slug>",
	Short: "Resolve a product slug against Magento and print the product page payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := NewApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := magento.WithStore(cmd.Context(), resolveStore)
		d, err := app.Storefront.ProductDetail(ctx, args[0])
		if errors.Is(err, resolver.ErrNotFound) {
			return fmt.Errorf("product not found: %s", args[0])
		}
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveStore, "store", "s", "", "Store view code (default: MAGENTO_STORE_CODE)")
	rootCmd.AddCommand(resolveCmd)
}
