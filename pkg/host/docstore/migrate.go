package docstore

import "strings"

// splitStatements splits a schema script on ';'. The schema holds no
// string literals containing semicolons.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}
