package groups

import (
	"strconv"
	"strings"
)

// nameSuffix follows the original naming convention for group names
const nameSuffix = " 組"

// namePool is the curated list of base names groups draw from when no name
// is supplied.
var namePool = []string{
	"梅", "蘭", "竹", "菊",
	"松", "柏", "楓", "櫻",
	"桂", "荷", "杏", "柳",
	"月", "星", "雲", "虹",
}

// pickName draws a group name uniformly from the pool, skipping names
// already used (case-insensitive) in the session. Past pool exhaustion it
// appends an incrementing numeric suffix until unique, so a duplicate can
// never be handed out.
func (s *service) pickName(used map[string]bool) string {
	available := make([]string, 0, len(namePool))
	for _, base := range namePool {
		candidate := base + nameSuffix
		if !used[strings.ToLower(candidate)] {
			available = append(available, candidate)
		}
	}

	if len(available) > 0 {
		return available[s.rand.Intn(len(available))]
	}

	base := namePool[s.rand.Intn(len(namePool))]
	for n := 2; ; n++ {
		candidate := base + strconv.Itoa(n) + nameSuffix
		if !used[strings.ToLower(candidate)] {
			return candidate
		}
	}
}
