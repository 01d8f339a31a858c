package main

import (
	"fmt"

	"github.com/focuswithjustin/versemap/pkg/mapconfig"
	"github.com/focuswithjustin/versemap/pkg/mapload"
	"github.com/focuswithjustin/versemap/pkg/mapping"
	"github.com/focuswithjustin/versemap/pkg/versif"
)

// resolveVersification maps a configured system name to its concrete
// versif.Versification. Only the two systems the pack ships data for are
// recognized; callers wire in more by growing this switch.
func resolveVersification(name string) (versif.Versification, error) {
	switch name {
	case "KJV":
		return versif.KJV(), nil
	case "Vulg":
		return versif.Vulgate(), nil
	default:
		return nil, fmt.Errorf("versemap: unknown versification %q", name)
	}
}

// findTableSource locates left's configured source entry.
func findTableSource(cfg *mapconfig.Config, left string) (mapconfig.TableSource, error) {
	for _, ts := range cfg.Tables {
		if ts.Left == left {
			return ts, nil
		}
	}
	return mapconfig.TableSource{}, fmt.Errorf("versemap: no configured table for %q", left)
}

// buildTable loads left's configured mapping table and compiles it
// against the configured pivot.
func buildTable(left string) (*mapping.MappingTable, error) {
	leftSys, err := resolveVersification(left)
	if err != nil {
		return nil, err
	}
	pivotSys, err := resolveVersification(cfg.Pivot)
	if err != nil {
		return nil, err
	}

	ts, err := findTableSource(cfg, left)
	if err != nil {
		return nil, err
	}

	var entries []mapping.Entry
	switch ts.Kind {
	case mapconfig.SourceSQLite:
		entries, err = mapload.FromSQLite(ts.Path, ts.Table)
	default:
		entries, err = mapload.FromFlatFile(ts.Path)
	}
	if err != nil {
		return nil, err
	}

	return mapping.NewMappingTable(leftSys, pivotSys, entries), nil
}
