package entrez

import (
	"maps"
	"slices"
)

// ResolveUpdates builds the ID-update map from gene_history records of
// the given organism.
//
// Every discontinued ID is followed through its chain of successors until
// a live ID is reached, so 10 -> 20 -> 30 (live) gives 10 -> 30. Chains
// that loop back on themselves, end at an unknown ID, or end at an ID
// retired without replacement are dropped with a warning. Discontinued
// IDs that are also live are dropped with a LiveCollision warning.
// IDs retired without replacement are not mapped.
func ResolveUpdates(
	history []HistoryRecord,
	live map[int]struct{},
	taxID int,
) ([]Update, []Warning) {
	var ws []Warning

	// successor of each discontinued ID, 0 for retired IDs
	succ := make(map[int]int)
	for _, v := range history {
		if v.TaxID != taxID {
			continue
		}
		old := v.DiscontinuedGeneID
		if _, ok := live[old]; ok {
			ws = append(ws, newWarning(LiveCollision, old,
				"discontinued gene %d is also a live gene, ignoring its history",
				old))
			continue
		}
		if prev, ok := succ[old]; ok {
			if prev != v.GeneID {
				ws = append(ws, newWarning(DuplicateHistory, old,
					"gene %d is discontinued into both %d and %d, keeping %d",
					old, prev, v.GeneID, prev))
			}
			continue
		}
		succ[old] = v.GeneID
	}

	var res []Update
	for _, old := range slices.Sorted(maps.Keys(succ)) {
		if succ[old] == 0 {
			continue
		}
		id, w := resolve(old, succ, live)
		if w != nil {
			ws = append(ws, *w)
			continue
		}
		res = append(res, Update{OldEntrezGeneID: old, NewEntrezGeneID: id})
	}
	return res, ws
}

// resolve follows successors of a discontinued ID until a live ID. The
// visited set guarantees termination on cyclic history.
func resolve(
	old int,
	succ map[int]int,
	live map[int]struct{},
) (int, *Warning) {
	visited := map[int]struct{}{old: {}}
	chain := []int{old}
	cur := succ[old]
	for {
		if _, ok := live[cur]; ok {
			return cur, nil
		}
		chain = append(chain, cur)
		if _, ok := visited[cur]; ok {
			w := newWarning(MergeCycle, old,
				"merge chain of gene %d is cyclic: %v", old, chain)
			return 0, &w
		}
		visited[cur] = struct{}{}

		next, ok := succ[cur]
		if !ok {
			w := newWarning(DanglingMerge, old,
				"merge chain of gene %d ends at unknown gene %d: %v",
				old, cur, chain)
			return 0, &w
		}
		if next == 0 {
			w := newWarning(RetiredMerge, old,
				"merge chain of gene %d ends at retired gene %d: %v",
				old, cur, chain)
			return 0, &w
		}
		cur = next
	}
}
