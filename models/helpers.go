package models

import (
	"sort"
	"strconv"
	"strings"
)

// ─── shared formatting helpers (package-private) ────────────────────────

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinPaths(paths []string) string { return strings.Join(paths, ";") }

// CSVRowWriter is the interface every exported record must satisfy.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
