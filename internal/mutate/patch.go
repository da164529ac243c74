package mutate

// Scope names a renderable region of the UI.
type Scope string

const (
	ScopeCatalog     Scope = "catalog"
	ScopeDex         Scope = "dex"
	ScopeCollections Scope = "collections"
)

// PatchKind discriminates the render instruction variants.
type PatchKind int

const (
	// FullRerender recomputes and redraws a whole scope.
	FullRerender PatchKind = iota
	// PatchItem redraws a single item (card, species, or member) in place.
	PatchItem
	// PatchAggregate redraws the stat line of a scope (a set's progress,
	// a generation header, a collection's counters).
	PatchAggregate
)

// Patch is one render instruction emitted by a mutation. The render sink
// consumes these; state logic never touches rendering directly.
type Patch struct {
	Kind  PatchKind
	Scope Scope
	// ID identifies the item for PatchItem or the aggregate subject for
	// PatchAggregate (set id, generation number, collection id). Empty
	// for scope-wide aggregates and full re-renders.
	ID string
}

func fullRerender(scope Scope) Patch {
	return Patch{Kind: FullRerender, Scope: scope}
}

func patchItem(scope Scope, id string) Patch {
	return Patch{Kind: PatchItem, Scope: scope, ID: id}
}

func patchAggregate(scope Scope, id string) Patch {
	return Patch{Kind: PatchAggregate, Scope: scope, ID: id}
}
