package lightspec

import "strings"

// MetaMap maps bracketed header keywords (e.g. "[MANUFAC]") to their values
type MetaMap map[string]string

// ExtractMeta builds a MetaMap from IES header lines
//
// the key is everything up to and including the first ']', the value is whatever follows
// the last ']' (trimmed) - lines without a ']' are skipped and later keys overwrite earlier ones
func ExtractMeta(header []string) MetaMap {
	result := make(MetaMap)
	for _, line := range header {
		first := strings.IndexByte(line, ']')
		if first < 0 {
			continue
		}
		last := strings.LastIndexByte(line, ']')
		result[line[:first+1]] = strings.TrimSpace(line[last+1:])
	}
	return result
}

// Meta extracts the bracketed keyword metadata from the record header
func (r *PhotometricRecord) Meta() MetaMap {
	return ExtractMeta(r.Header)
}

// Get returns the value for a keyword, with or without its brackets (e.g. "MANUFAC" or "[MANUFAC]")
func (m MetaMap) Get(keyword string) (string, bool) {
	if !strings.HasPrefix(keyword, "[") {
		keyword = "[" + keyword + "]"
	}
	v, ok := m[keyword]
	return v, ok
}
