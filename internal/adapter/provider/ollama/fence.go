package ollama

import "strings"

var fenceOpeners = []string{"```json", "```"}

const fenceCloser = "```"

// StripFence removes at most one leading code-fence marker (``` or ```json)
// and at most one trailing ``` marker. Text without either marker is
// returned unchanged.
func StripFence(s string) string {
	t := strings.TrimSpace(s)
	stripped := false

	for _, open := range fenceOpeners {
		if strings.HasPrefix(t, open) {
			t = t[len(open):]
			stripped = true
			break
		}
	}

	if strings.HasSuffix(t, fenceCloser) {
		t = t[:len(t)-len(fenceCloser)]
		stripped = true
	}

	if !stripped {
		return s
	}
	return t
}
