// Package embedded provides the planning artifact templates compiled into
// the po binary. The session core treats them as opaque bytes to write
// verbatim; swapping template content never requires touching the
// reconciliation logic.
package embedded

import "embed"

// TemplatesFS contains the built-in artifact templates.
//
//go:embed templates
var TemplatesFS embed.FS

// Template returns the built-in template for the given artifact basename
// (e.g. "task_plan.md"). Unknown names return nil.
func Template(name string) []byte {
	data, err := TemplatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil
	}
	return data
}
