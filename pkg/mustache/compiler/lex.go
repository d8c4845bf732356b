package compiler

import "strings"

type tokenKind int

const (
	tokText tokenKind = iota
	tokVariable
	tokUnescaped
	tokSectionOpen
	tokInvertedOpen
	tokSectionClose
	tokComment
)

// token is a piece of template source. start and end are byte offsets of the
// whole piece, tag delimiters included.
type token struct {
	kind  tokenKind
	value string
	start int
	end   int
	line  int
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

func lex(src string) ([]token, error) {
	var toks []token
	pos, line := 0, 1

	for pos < len(src) {
		i := strings.Index(src[pos:], openDelim)
		if i < 0 {
			toks = append(toks, token{kind: tokText, value: src[pos:], start: pos, end: len(src), line: line})
			break
		}
		if i > 0 {
			text := src[pos : pos+i]
			toks = append(toks, token{kind: tokText, value: text, start: pos, end: pos + i, line: line})
			line += strings.Count(text, "\n")
		}

		start := pos + i
		inner := start + len(openDelim)
		closer := closeDelim
		kind := tokVariable
		if inner < len(src) {
			switch src[inner] {
			case '{':
				kind, closer = tokUnescaped, "}"+closeDelim
			case '&':
				kind = tokUnescaped
			case '#':
				kind = tokSectionOpen
			case '^':
				kind = tokInvertedOpen
			case '/':
				kind = tokSectionClose
			case '!':
				kind = tokComment
			}
			if kind != tokVariable {
				inner++
			}
		}

		j := strings.Index(src[inner:], closer)
		if j < 0 {
			return nil, errorf(line, "unclosed tag %q", abbrev(src[start:]))
		}
		end := inner + j + len(closer)
		value := strings.TrimSpace(src[inner : inner+j])

		if kind != tokComment {
			if value == "" {
				return nil, errorf(line, "empty tag %q", src[start:end])
			}
			if strings.ContainsAny(value, " \t\r\n") {
				return nil, errorf(line, "invalid tag name %q", value)
			}
		}

		toks = append(toks, token{kind: kind, value: value, start: start, end: end, line: line})
		line += strings.Count(src[start:end], "\n")
		pos = end
	}
	return toks, nil
}

func abbrev(s string) string {
	const limit = 20
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
