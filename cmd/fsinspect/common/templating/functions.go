package templating

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"
)

// jsonify is the built-in JSON encoder that's made available to templates.
func jsonify(value interface{}) (string, error) {
	// Create a buffer to store the output.
	buffer := &bytes.Buffer{}

	// Create and configure a JSON encoder.
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	// Marshal the value.
	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	// Remove the trailing newline that's automatically added by Encode.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// builtins are the builtin functions supported in output templates.
var builtins = template.FuncMap{
	"json":   jsonify,
	"bytes":  humanize.Bytes,
	"ibytes": humanize.IBytes,
	"comma": func(value uint64) string {
		return humanize.Comma(int64(value))
	},
}
