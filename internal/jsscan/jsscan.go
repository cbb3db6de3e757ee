// Package jsscan classifies JavaScript source bytes as executable code or
// literal/comment content.
//
// The bundler's strip, translate, and rewrite passes only ever match inside
// code regions. Running their patterns against a precomputed code mask is
// what keeps scaffolding-shaped text inside string literals and comments
// untouched.
package jsscan

// scanner state while walking the source.
type state int

const (
	stCode state = iota
	stSingle
	stDouble
	stTemplate
	stLineComment
	stBlockComment
)

// frame is one entry of the context stack. depth tracks `{`/`}` nesting for
// code frames opened by a template `${` so the scanner knows when the
// expression closes back into the template literal.
type frame struct {
	st    state
	depth int
}

// Mask returns a slice the length of src where mask[i] reports whether byte
// i is executable code. Quote characters, comment delimiters, and everything
// between them are non-code.
func Mask(src string) []bool {
	mask := make([]bool, len(src))
	stack := []frame{{st: stCode}}
	top := func() *frame { return &stack[len(stack)-1] }

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch top().st {
		case stCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				stack = append(stack, frame{st: stLineComment})
				i++ // second slash, already non-code

			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				stack = append(stack, frame{st: stBlockComment})
				i++

			case c == '/' && regexPossible(src, mask, i):
				i = consumeRegex(src, mask, i)

			case c == '\'':
				stack = append(stack, frame{st: stSingle})

			case c == '"':
				stack = append(stack, frame{st: stDouble})

			case c == '`':
				stack = append(stack, frame{st: stTemplate})

			case c == '{':
				mask[i] = true
				top().depth++

			case c == '}':
				if top().depth == 0 && len(stack) > 1 && stack[len(stack)-2].st == stTemplate {
					// closes a ${...} expression, back into the template
					stack = stack[:len(stack)-1]
				} else {
					mask[i] = true
					if top().depth > 0 {
						top().depth--
					}
				}

			default:
				mask[i] = true
			}

		case stSingle, stDouble:
			quote := byte('\'')
			if top().st == stDouble {
				quote = '"'
			}
			switch {
			case c == '\\' && i+1 < len(src):
				i++
			case c == quote:
				stack = stack[:len(stack)-1]
			case c == '\n':
				// unterminated literal; recover at end of line
				stack = stack[:len(stack)-1]
				mask[i] = true
			}

		case stTemplate:
			switch {
			case c == '\\' && i+1 < len(src):
				i++
			case c == '`':
				stack = stack[:len(stack)-1]
			case c == '$' && i+1 < len(src) && src[i+1] == '{':
				i++
				stack = append(stack, frame{st: stCode})
			}

		case stLineComment:
			if c == '\n' {
				stack = stack[:len(stack)-1]
				mask[i] = true
			}

		case stBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				i++
				stack = stack[:len(stack)-1]
			}
		}
	}

	return mask
}

// regexPossible decides whether a '/' at position i starts a regex literal
// rather than a division operator, by looking at the previous code token
// character. After an identifier, number, or closing bracket the slash is
// division; everywhere else a regex may start.
func regexPossible(src string, mask []bool, i int) bool {
	for j := i - 1; j >= 0; j-- {
		c := src[j]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if !mask[j] {
			// previous token ended in a string or comment; a slash
			// directly after a literal is division
			return false
		}
		if isIdentByte(c) || c == ')' || c == ']' {
			return false
		}
		return true
	}
	return true
}

// consumeRegex marks a regex literal (including character classes and flags)
// as non-code and returns the index of its last byte.
func consumeRegex(src string, mask []bool, start int) int {
	i := start + 1
	inClass := false
	for ; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			i++
			continue
		}
		if c == '\n' {
			// not a regex after all; treat the original slash as code
			mask[start] = true
			return start
		}
		if inClass {
			if c == ']' {
				inClass = false
			}
			continue
		}
		if c == '[' {
			inClass = true
			continue
		}
		if c == '/' {
			break
		}
	}
	// trailing flags
	for i+1 < len(src) && isIdentByte(src[i+1]) {
		i++
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// IsIdentByte reports whether c can appear in a JavaScript identifier.
// Exported for the passes that do their own token-boundary checks.
func IsIdentByte(c byte) bool { return isIdentByte(c) }

// StatementEnd returns the index just past the ';' that terminates the
// statement beginning at start, counting only code bytes and ignoring
// semicolons nested inside (), [] or {}. Returns len(src) if the statement
// never terminates.
func StatementEnd(src string, mask []bool, start int) int {
	depth := 0
	for i := start; i < len(src); i++ {
		if !mask[i] {
			continue
		}
		switch src[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth <= 0 {
				return i + 1
			}
		}
	}
	return len(src)
}
