package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkmn-tools/dexctl/internal/catalog"
	"github.com/pkmn-tools/dexctl/internal/pokeapi"
	"github.com/pkmn-tools/dexctl/internal/species"
	"github.com/pkmn-tools/dexctl/internal/tui"
	"github.com/pkmn-tools/dexctl/internal/util"
)

// loadCatalog attaches the static card catalog to the state store. Most
// commands need it; sync and fetchdex do not.
func loadCatalog() error {
	c, err := catalog.Load(cfg.EffectiveCatalogPath())
	if err != nil {
		return err
	}
	st.SetCatalog(c)
	return nil
}

// speciesLoader builds the cached species loader from config.
func speciesLoader() *species.Loader {
	client := pokeapi.New(cfg.PokeAPI.APIBase)
	ttl := time.Duration(cfg.Species.CacheTTLDays) * 24 * time.Hour
	return species.NewLoader(client, store, ttl, cfg.Species.BatchSize)
}

// loadSpecies fills st.Species, showing a progress bar when the list has
// to come from the network and we are on a terminal.
func loadSpecies(ctx context.Context, forceRefresh bool) error {
	loader := speciesLoader()

	if !util.IsTTY() {
		var err error
		if forceRefresh {
			st.Species, err = loader.Refresh(ctx, nil)
		} else {
			st.Species, err = loader.Load(ctx, nil)
		}
		return err
	}

	ch := make(chan tui.ProgressUpdate, 8)
	errCh := make(chan error, 1)
	go func() {
		progress := func(pct int, label string) {
			select {
			case ch <- tui.ProgressUpdate{Pct: pct, Label: label}:
			default: // UI busy, drop the update
			}
		}
		var list []*species.Species
		var err error
		if forceRefresh {
			list, err = loader.Refresh(ctx, progress)
		} else {
			list, err = loader.Load(ctx, progress)
		}
		close(ch)
		if err == nil {
			st.Species = list
		}
		errCh <- err
	}()

	if err := tui.ShowProgress("Loading national dex…", ch); err != nil {
		return err
	}
	return <-errCh
}

// resolveSpeciesID accepts a dex number or a species name. Anything that
// is not entirely a positive number falls through to name lookup.
func resolveSpeciesID(arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil && id > 0 {
		return id, nil
	}
	for _, sp := range st.Species {
		if sp.Name == arg {
			return sp.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", arg)
}
