package bbcode

import "regexp"

// attrPattern re-parses the attribute list captured by tagPattern: the same
// pair grammar, with a bare value additionally free to run to the end of the
// string.
var attrPattern = regexp.MustCompile(
	`\s+(\w+)=(?:"(.*?)"|'(.*?)'|&quot;(.*?)&quot;|&#039;(.*?)&#039;|([^\s/\]]*))`)

// ParseAttributes extracts key=value pairs from a tag's attribute list.
// Each pair sits behind whitespace, exactly as it does inside a source tag.
// Values keep their source bytes: entities are not decoded. A key given
// twice keeps its last value. Input without a single well-formed pair yields
// nil. ParseAttributes never fails.
func ParseAttributes(s string) map[string]string {
	matches := attrPattern.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil
	}

	attrs := make(map[string]string, len(matches))

	for _, m := range matches {
		value := ""

		for _, v := range m[2:] {
			if v != "" {
				value = v
				break
			}
		}

		attrs[m[1]] = value
	}

	return attrs
}
