package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/magento"
	"storefront.GO/service/storefront"
)

var (
	facetsStore      string
	facetsCategories string
)

var facetsWarmCmd = &cobra.Command{
	Use:   "facets:warm",
	Short: "Fetch facets from Magento and refresh the facet cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := NewApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := magento.WithStore(cmd.Context(), facetsStore)
		f, err := app.Storefront.RefreshFacets(ctx, storefront.SplitList(facetsCategories))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "colors:    %d\n", len(f.ColorOptions))
		fmt.Fprintf(out, "rooms:     %d\n", len(f.RoomOptions))
		fmt.Fprintf(out, "materials: %d\n", len(f.MaterialOptions))
		fmt.Fprintf(out, "sizes:     %d\n", len(f.SizeOptions))
		if facetsCategories != "" {
			fmt.Fprintf(out, "categories: %s\n", strings.Join(storefront.SplitList(facetsCategories), ", "))
		}
		return nil
	},
}

func init() {
	facetsWarmCmd.Flags().StringVarP(&facetsStore, "store", "s", "", "Store view code (default: MAGENTO_STORE_CODE)")
	facetsWarmCmd.Flags().StringVarP(&facetsCategories, "categories", "c", "", "Comma separated category uids")
	rootCmd.AddCommand(facetsWarmCmd)
}
