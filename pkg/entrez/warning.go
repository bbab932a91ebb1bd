package entrez

import (
	"fmt"
	"maps"
	"slices"
)

// WarningKind classifies data-integrity problems. Records behind a
// warning are excluded from the output, the run continues.
type WarningKind int

const (
	UnknownWarning WarningKind = iota
	DuplicateGene
	DuplicateHistory
	LiveCollision
	MergeCycle
	DanglingMerge
	RetiredMerge
	AmbiguousSymbol
	AmbiguousSynonym
	MissingManifest
)

var warningKindNames = map[WarningKind]string{
	UnknownWarning:   "unknown",
	DuplicateGene:    "duplicate-gene",
	DuplicateHistory: "duplicate-history",
	LiveCollision:    "live-collision",
	MergeCycle:       "merge-cycle",
	DanglingMerge:    "dangling-merge",
	RetiredMerge:     "retired-merge",
	AmbiguousSymbol:  "ambiguous-symbol",
	AmbiguousSynonym: "ambiguous-synonym",
	MissingManifest:  "missing-manifest",
}

func (k WarningKind) String() string {
	if res, ok := warningKindNames[k]; ok {
		return res
	}
	return warningKindNames[UnknownWarning]
}

// Warning describes an excluded record.
type Warning struct {
	Kind WarningKind
	// ID is the Entrez Gene ID the warning is about, 0 if not applicable.
	ID      int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

func newWarning(kind WarningKind, id int, msg string, args ...any) Warning {
	return Warning{Kind: kind, ID: id, Message: fmt.Sprintf(msg, args...)}
}

// WarningCount is the number of warnings of one kind.
type WarningCount struct {
	Kind  WarningKind
	Count int
}

// CountWarnings aggregates warnings by kind, ordered by kind.
func CountWarnings(ws []Warning) []WarningCount {
	counts := make(map[WarningKind]int)
	for _, v := range ws {
		counts[v.Kind]++
	}
	var res []WarningCount
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		res = append(res, WarningCount{Kind: k, Count: counts[k]})
	}
	return res
}
