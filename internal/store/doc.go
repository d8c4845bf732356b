// Package store provides Redis-backed storage for template sources.
//
// Render requests may reference a template by name instead of carrying its
// source; the worker resolves such names through a TemplateStore.
//
// Example usage:
//
//	templates := store.NewTemplateStore(redisClient, logger)
//	if err := templates.Save(ctx, "welcome", "Hello {{name}}!"); err != nil {
//	    log.Fatal(err)
//	}
//	source, err := templates.Load(ctx, "welcome")
package store
