package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// expandEnv renders {{.VAR}} references in raw memobase.yaml bytes from the
// process environment. Go-template syntax is deliberate: a plain $VAR
// expander would mangle regex anchors, shell fragments, and passwords that
// legitimately contain dollar signs.
//
// Unknown variables render as empty strings; the validator reports required
// options that ended up empty. Raw bytes that fail to parse or execute as a
// template pass through untouched so template-free configs always load.
func expandEnv(raw []byte) []byte {
	if !bytes.Contains(raw, []byte("{{")) {
		return raw
	}

	tmpl, err := template.New("memobase.yaml").Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return raw
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, env); err != nil {
		return raw
	}
	return rendered.Bytes()
}
