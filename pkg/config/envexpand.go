package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// The {{.VAR_NAME}} syntax leaves literal $ characters alone, so values such
// as p@ss$word or ${NOT_A_VAR} survive untouched.
//
// Examples:
//   - {{.MASKIT_API_URL}} → value of MASKIT_API_URL
//   - {{.HOST}}:{{.PORT}} → both expanded
//
// Missing variables expand to the empty string. Content that is not a valid
// template is returned unchanged and left for the YAML parser to reject.
func ExpandEnv(data []byte) []byte {
	if !bytes.Contains(data, []byte("{{")) {
		return data
	}

	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, environ()); err != nil {
		return data
	}
	return buf.Bytes()
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && key != "" {
			env[key] = value
		}
	}
	return env
}
