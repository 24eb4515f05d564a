// Package protocol resolves IANA protocol numbers to their lowercase keyword
// names. The assignment table is embedded at build time and loaded once.
package protocol

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed numbers.yaml
var numbersYAML []byte

var names map[int]string

func init() {
	if err := yaml.Unmarshal(numbersYAML, &names); err != nil {
		panic(fmt.Sprintf("protocol: invalid embedded number table: %v", err))
	}
}

// Name returns the lowercase IANA keyword for a protocol number, e.g. 6 ->
// "tcp". Unassigned or unknown numbers return the empty string, which makes
// the corresponding flow records classify as untagged rather than fail.
func Name(num int) string {
	return names[num]
}
