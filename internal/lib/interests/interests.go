package interests

import "strings"

// Presets is the fixed interest catalog offered during onboarding.
var Presets = []string{
	"tech",
	"music",
	"sports",
	"art",
	"food",
	"career",
	"gaming",
	"volunteering",
	"research",
	"outdoors",
}

// Merge combines preset selections with a comma-separated custom entry string.
// Custom entries are trimmed, empty entries are dropped and the result keeps
// each interest once, in first-seen order.
func Merge(selected []string, custom string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0, len(selected))

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}

		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		merged = append(merged, key)
	}

	for _, s := range selected {
		add(s)
	}

	for _, s := range strings.Split(custom, ",") {
		add(s)
	}

	return merged
}
