package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"storefront.GO/core/registry"
)

var registryMu sync.Mutex

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register queues a command for the storefront root, next to built-ins
// like serve and product:resolve. Call from init().
func Register(c *cobra.Command) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Execute)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(registered(), c))
}

// shadows reports whether root already has a command named like c.
func shadows(root *cobra.Command, c *cobra.Command) bool {
	for _, existing := range root.Commands() {
		if existing.Name() == c.Name() {
			return true
		}
	}
	return false
}

// Apply attaches queued commands to the root and locks the registry.
// Later calls are no-ops. A command that reuses a built-in name panics.
func Apply() {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	for _, c := range registered() {
		if shadows(rootCmd, c) {
			panic("cmd/registry: command " + c.Name() + " already exists")
		}
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
