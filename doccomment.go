package fragmen

import (
	"regexp"
	"slices"
	"strings"
)

// DocComment holds the metadata extracted from a fragment's doc comment.
type DocComment struct {
	Description string
	Examples    []string
	Params      []Param
	Returns     Returns
	Tags        []string
	Since       string
}

// Default types substituted when a tag omits its {Type} annotation.
const (
	DefaultParamType   = "any"
	DefaultReturnsType = "unknown"
)

var docBlockRe = regexp.MustCompile(`(?s)/\*\*(.*?)\*/`)

type docState int

const (
	stateText docState = iota
	stateExample
	stateTag
)

// ExtractDocComment parses the first /** ... */ block in source.
// It never fails: a missing comment yields an empty DocComment, and malformed
// @param or @returns lines are dropped.
func ExtractDocComment(source string) DocComment {
	doc := DocComment{
		Examples: []string{},
		Params:   []Param{},
		Tags:     []string{},
	}

	match := docBlockRe.FindStringSubmatch(source)
	if match == nil {
		return doc
	}

	var (
		state       = stateText
		description []string
		example     []string
		inExample   bool
	)

	flushExample := func() {
		if !inExample {
			return
		}
		if text := joinExample(example); text != "" {
			doc.Examples = append(doc.Examples, text)
		}
		example = nil
		inExample = false
	}

	for _, line := range stripCommentSyntax(match[1]) {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "@") {
			tag, rest := splitTag(trimmed)
			flushExample()
			state = stateTag

			switch tag {
			case "@example":
				state = stateExample
				inExample = true
				if rest != "" {
					example = append(example, rest)
				}
			case "@param":
				if p, err := ParseParamTag(trimmed); err == nil {
					doc.Params = append(doc.Params, p)
				}
			case "@returns", "@return":
				if r, err := ParseReturnsTag(trimmed); err == nil {
					doc.Returns = r
				}
			case "@tags":
				doc.Tags = appendTags(doc.Tags, rest)
			case "@since":
				doc.Since = rest
			}
			continue
		}

		switch state {
		case stateExample:
			example = append(example, line)
		case stateText:
			if trimmed != "" {
				description = append(description, trimmed)
			}
		}
	}
	flushExample()

	doc.Description = strings.Join(description, " ")
	return doc
}

// stripCommentSyntax removes the leading "*" gutter from every line of a
// comment body, keeping indentation past the single space after it.
func stripCommentSyntax(body string) []string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		stripped := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(stripped, "*") {
			stripped = strings.TrimPrefix(stripped[1:], " ")
			line = stripped
		} else {
			line = strings.TrimPrefix(line, " ")
		}
		out = append(out, line)
	}
	return out
}

// splitTag splits "@tag rest of line" into "@tag" and "rest of line".
func splitTag(line string) (tag, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// joinExample joins example lines and trims surrounding blank lines.
func joinExample(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// appendTags adds the comma or space separated labels in s, skipping duplicates.
func appendTags(tags []string, s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		if !slices.Contains(tags, f) {
			tags = append(tags, f)
		}
	}
	return tags
}

var paramNameRe = regexp.MustCompile(`^(\[[A-Za-z_$][\w$.]*(=[^\]]*)?\]|[A-Za-z_$][\w$.]*)$`)

// ParseParamTag parses a "@param {Type} name description" line.
// The type defaults to DefaultParamType when the annotation is absent.
// Returns EINVALID if the line is not a well-formed @param tag.
func ParseParamTag(line string) (Param, error) {
	tag, rest := splitTag(strings.TrimSpace(line))
	if tag != "@param" {
		return Param{}, Errorf(EINVALID, "not a @param tag: %q", line)
	}

	typ, rest, err := parseTypeAnnotation(rest)
	if err != nil {
		return Param{}, err
	}
	if typ == "" {
		typ = DefaultParamType
	}

	name, description := splitTag(rest)
	if !paramNameRe.MatchString(name) {
		return Param{}, Errorf(EINVALID, "malformed @param tag: %q", line)
	}

	return Param{
		Name:        name,
		Type:        typ,
		Description: trimDash(description),
	}, nil
}

// ParseReturnsTag parses a "@returns {Type} description" line; "@return" is
// accepted too. The type defaults to DefaultReturnsType when absent.
// Returns EINVALID if the line is not a well-formed @returns tag.
func ParseReturnsTag(line string) (Returns, error) {
	tag, rest := splitTag(strings.TrimSpace(line))
	if tag != "@returns" && tag != "@return" {
		return Returns{}, Errorf(EINVALID, "not a @returns tag: %q", line)
	}

	typ, rest, err := parseTypeAnnotation(rest)
	if err != nil {
		return Returns{}, err
	}
	if typ == "" {
		typ = DefaultReturnsType
	}

	return Returns{
		Type:        typ,
		Description: trimDash(rest),
	}, nil
}

// parseTypeAnnotation consumes a leading {Type} from s, honouring nested
// braces such as {{ a: number }}. It returns an empty type if s does not
// start with "{".
func parseTypeAnnotation(s string) (typ, rest string, err error) {
	if !strings.HasPrefix(s, "{") {
		return "", s, nil
	}

	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				typ = strings.TrimSpace(s[1:i])
				if typ == "" {
					return "", "", Errorf(EINVALID, "empty type annotation")
				}
				return typ, strings.TrimSpace(s[i+1:]), nil
			}
		}
	}
	return "", "", Errorf(EINVALID, "unterminated type annotation: %q", s)
}

// trimDash removes the optional "- " separator between a tag's name and its
// description.
func trimDash(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "- ") || s == "-" {
		return strings.TrimSpace(s[1:])
	}
	return s
}
