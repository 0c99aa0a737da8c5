package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"storefront.GO/core/registry"
)

// Storefront handlers plug in from init(). api/catalog and friends mount on
// the /api group; /graphql and the custom /health sit on root.
// Both lists freeze once the server applies them.

var mu sync.Mutex

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, deps *Deps)

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, deps *Deps)

func entries[T any](key string) []T {
	if v, ok := registry.GlobalRegistry.GetGlobal(key); ok && v != nil {
		return v.([]T)
	}
	return nil
}

func add[T any](key, what string, fn T) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + what + " locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(key, append(entries[T](key), fn))
}

// RegisterModule adds an /api module such as api/catalog.
func RegisterModule(fn ModuleFunc) {
	add(registry.KeyRegistryAPI, "API modules", fn)
}

// ApplyModules mounts every /api module on g and locks the list.
func ApplyModules(g *echo.Group, deps *Deps) {
	for _, fn := range entries[ModuleFunc](registry.KeyRegistryAPI) {
		fn(g, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// RegisterRoute adds a root-level route module.
func RegisterRoute(fn RouteFunc) {
	add(registry.KeyRegistryRoutes, "routes", fn)
}

// RegisterGET registers a dependency-free GET handler on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.GET(path, handler)
	})
}

// ApplyRoutes mounts root routes on e and locks the list.
func ApplyRoutes(e *echo.Echo, deps *Deps) {
	for _, fn := range entries[RouteFunc](registry.KeyRegistryRoutes) {
		fn(e, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
