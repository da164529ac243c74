package state

// View identifies the active top-level view.
type View string

const (
	ViewTCG         View = "tcg"
	ViewDex         View = "dex"
	ViewCollections View = "collections"
)

// OwnershipFilter narrows listings by ownership or status.
type OwnershipFilter string

const (
	FilterAll     OwnershipFilter = "all"
	FilterHave    OwnershipFilter = "have"
	FilterMissing OwnershipFilter = "missing"
	// FilterRegistered and FilterObtained are the dex and collection
	// spellings of FilterHave.
	FilterRegistered OwnershipFilter = "registered"
	FilterObtained   OwnershipFilter = "obtained"
)

// Have reports whether the filter keeps only owned/registered/obtained
// items. The three spellings are synonyms.
func (f OwnershipFilter) Have() bool {
	return f == FilterHave || f == FilterRegistered || f == FilterObtained
}

// Missing reports whether the filter keeps only unowned items.
func (f OwnershipFilter) Missing() bool {
	return f == FilterMissing
}

// Filters is the transient per-view filter and navigation state. It is
// never persisted.
type Filters struct {
	ActiveView View

	// Catalog view.
	Search     string
	Ownership  OwnershipFilter
	Series     string
	HidePocket bool
	OpenSets   map[string]bool
	ModalCard  string

	// Dex view.
	DexSearch    string
	DexOwnership OwnershipFilter
	DexGen       int // 0 = all generations
	DexModal     int

	// Collections view.
	ActiveCollection string
	CollSearch       string
	CollOwnership    OwnershipFilter
}

// ToggleSet flips the expanded state of one set group.
func (f *Filters) ToggleSet(setID string) {
	if f.OpenSets == nil {
		f.OpenSets = map[string]bool{}
	}
	if f.OpenSets[setID] {
		delete(f.OpenSets, setID)
	} else {
		f.OpenSets[setID] = true
	}
}
