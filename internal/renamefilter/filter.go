// Package renamefilter sanitizes individual path components before they are
// written into the output tree.
package renamefilter

// Filter maps a single path component to a sanitized path component. It is
// applied independently to each component of an output path, never to a
// path as a whole, so it can never introduce or consume a path separator.
type Filter interface {
	Apply(component string) string
}

// None is the identity filter: every codepoint passes through unchanged.
type None struct{}

// Apply implements Filter.
func (None) Apply(component string) string { return component }

const replacement = '_'

// Conservative only allows ASCII letters, digits, and a small set of
// punctuation that is safe across the common filesystems this tool targets.
// Everything else is replaced with an underscore. If the result would be
// empty, a single underscore is returned instead.
type Conservative struct{}

var allowedPunctuation = map[rune]bool{
	' ': true, '%': true, '-': true, '_': true, '@': true, '~': true,
	'`': true, '!': true, '(': true, ')': true, '{': true, '}': true,
	'^': true, '#': true, '&': true, '.': true,
}

func isAllowed(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return allowedPunctuation[c]
}

// Apply implements Filter.
func (Conservative) Apply(component string) string {
	out := make([]rune, 0, len(component))
	for _, c := range component {
		if isAllowed(c) {
			out = append(out, c)
		} else {
			out = append(out, replacement)
		}
	}

	if len(out) == 0 {
		return string(replacement)
	}
	return string(out)
}

// ByName resolves the CLI-facing filter names ("conservative", "none").
func ByName(name string) (Filter, bool) {
	switch name {
	case "conservative":
		return Conservative{}, true
	case "none":
		return None{}, true
	default:
		return nil, false
	}
}
