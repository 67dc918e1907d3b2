package integration_tests

import (
	"fmt"
	"strings"
)

// record renders one record in the canonical dataset layout from ordered
// title/value pairs. Values arrive pre-delimited, e.g. `"Brandon"` or `["2"]`.
func record(pairs ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, kv := range pairs {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%q : %s\n", kv[0], kv[1])
	}
	sb.WriteString("\t}")
	return sb.String()
}

func datasetOf(records ...string) string {
	return "[\n" + strings.Join(records, "\n,\n") + "\n]\n"
}

// threeUserDataset is the shared happy-path scenario: Brandon follows both
// others, Rachel follows nobody, Leo follows both others back.
func threeUserDataset() string {
	return datasetOf(
		record(
			[2]string{"id_str", `"1"`},
			[2]string{"name", `"Brandon"`},
			[2]string{"location", `"Rohnert Park"`},
			[2]string{"follows", `["2","3"]`},
		),
		record(
			[2]string{"id_str", `"2"`},
			[2]string{"name", `"Rachel"`},
			[2]string{"pic_url", `"https://example.com/rachel.png"`},
		),
		record(
			[2]string{"id_str", `"3"`},
			[2]string{"name", `"Leo"`},
			[2]string{"location", `"Kyiv"`},
			[2]string{"follows", `["1","2"]`},
		),
	)
}
