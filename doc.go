// Package promptstash is the composition root for the promptstash
// library: a durable, single-user store for reusable prompt snippets.
//
// It connects the core record store and query engine (pkg/core) with
// the persistence adapters (pkg/adapters) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// The core owns a validated in-memory collection and persists the full
// collection after every mutation; everything else — storage format,
// event dispatch, localization, error display — is a collaborator
// behind a narrow interface. The default wiring uses a JSON file, an
// in-process event broker, and embedded message catalogs, but every
// piece can be swapped via functional options.
//
// Usage:
//
//	stash, err := promptstash.Open(ctx, "prompts.json",
//		promptstash.WithLocale("es"),
//		promptstash.WithLogger(logger),
//	)
//
//	// Create a prompt
//	err = stash.Create(ctx, core.Record{
//		ID: uuid.NewString(), Text: "Explain this diff", FolderID: "work",
//	})
//
//	// Query
//	favorites := core.FilterAndSort(stash.Records(), core.Criteria{
//		Favorite: true, Order: core.OrderUsage,
//	})
package promptstash
