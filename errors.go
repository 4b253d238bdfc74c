package yamlrec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/yamlrec/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention).
//
// Registration codes surface once, while a schema is being built, and are
// fatal to defining that record type. Construction codes surface per
// construction call and abort it fail-fast.
const (
	// Registration-time codes.
	CodeUntypedContainer    = "untyped_container"
	CodeInvalidMapKey       = "invalid_map_key"
	CodeInvalidDefault      = "invalid_default"
	CodeDefaultNotInOptions = "default_not_in_options"

	// Construction-time codes.
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeNotAnOption = "not_an_option"
	CodeUsageError  = "usage_error"

	// Shared by both phases.
	CodeUnsupportedType = "unsupported_type"
	CodeMaxDepth        = "max_depth"
	CodeParseError      = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Slash-separated field path (for example: /server/ports/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"int", "got":"string"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsRegistration reports whether the issue was produced at schema build time.
func (it Issue) IsRegistration() bool {
	switch it.Code {
	case CodeUntypedContainer, CodeInvalidMapKey, CodeInvalidDefault, CodeDefaultNotInOptions:
		return true
	}
	return false
}

// rebaseIssues re-anchors child issue paths under base so errors raised inside
// nested containers and records name the outer field first.
func rebaseIssues(base string, iss Issues) Issues {
	if len(iss) == 0 {
		return nil
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// issuesFromErr converts an error into Issues, wrapping foreign errors with
// CodeParseError.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}

func singleIssue(path, code, hint string, params map[string]string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, params), Hint: hint, Params: toAnyParams(params)}}
}

func toAnyParams(params map[string]string) map[string]any {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
