package manifest

import (
	"regexp"
	"sync"
)

var (
	blockCacheMu sync.Mutex
	blockCache   = map[string]*regexp.Regexp{}
)

// blockPattern returns the compiled block matcher for kind.
func blockPattern(kind string) *regexp.Regexp {
	blockCacheMu.Lock()
	defer blockCacheMu.Unlock()

	if re, ok := blockCache[kind]; ok {
		return re
	}
	re := regexp.MustCompile(
		`<types>\s*(?:<members>[^<]*</members>\s*)*<name>` +
			regexp.QuoteMeta(kind) +
			`</name>\s*</types>\s*`,
	)
	blockCache[kind] = re
	return re
}

// RemoveBlocks deletes every declaration block whose type name is kind and
// returns the new text with the number of blocks removed. When nothing
// matches, text is returned as is.
func RemoveBlocks(text, kind string) (string, int) {
	if kind == "" {
		return text, 0
	}
	re := blockPattern(kind)
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}
	return re.ReplaceAllLiteralString(text, ""), len(matches)
}

// CountBlocks returns how many declaration blocks name kind.
func CountBlocks(text, kind string) int {
	if kind == "" {
		return 0
	}
	return len(blockPattern(kind).FindAllStringIndex(text, -1))
}
