// Package custom registers project-level extensions: a health route, a
// version command and a slug inspection GraphQL extension.
package custom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"storefront.GO/api"
	"storefront.GO/cmd"
	gqlregistry "storefront.GO/graphql/registry"
	"storefront.GO/resolver"
)

// Version is set at build time with -ldflags "-X storefront.GO/custom.Version=...".
var Version = "dev"

func init() {
	// GraphQL: _extension(name: "slug", args: "{\"slug\":\"...\"}")
	gqlregistry.Register("slug", InspectSlug)

	cmd.Register(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), Version)
		},
	})

	api.RegisterGET("/health", Health)
}

// Health reports liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": Version})
}

// InspectSlug shows how the resolver reads a product slug.
func InspectSlug(_ context.Context, args map[string]interface{}) (interface{}, error) {
	slug, _ := args["slug"].(string)
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	return map[string]string{
		"urlKey":     resolver.ExtractURLKey(slug),
		"stripped":   resolver.StripColorFromSlug(slug),
		"searchHint": resolver.BuildSearchHint(slug),
	}, nil
}
