package caption

import (
	"sort"
	"strconv"
)

// parsedID is a figure identifier split into its numeric part and an
// optional single-letter suffix ("10b" -> 10, 'b').
type parsedID struct {
	number uint32
	suffix byte // 0 when absent, lowercased otherwise
	ok     bool
}

func parseID(id string) parsedID {
	if id == "" {
		return parsedID{}
	}

	digits := id
	var suffix byte
	if last := id[len(id)-1]; (last >= 'a' && last <= 'z') || (last >= 'A' && last <= 'Z') {
		suffix = last | 0x20 // lowercase
		digits = id[:len(id)-1]
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return parsedID{}
	}

	return parsedID{number: uint32(n), suffix: suffix, ok: true}
}

// ExtractionOrder returns the entry indices in the order figures should be
// extracted: numeric identifiers sorted by numeric value and then suffix
// (bare numbers before suffixed ones), followed by entries whose identifier
// does not parse, in their original order.
func ExtractionOrder(entries []Entry) []int {
	keys := make([]parsedID, len(entries))
	for i := range entries {
		keys[i] = parseID(entries[i].FigureID)
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if ka.ok != kb.ok {
			return ka.ok
		}
		if !ka.ok {
			return false // both unparsable: keep original order
		}
		if ka.number != kb.number {
			return ka.number < kb.number
		}
		return ka.suffix < kb.suffix
	})

	return order
}
