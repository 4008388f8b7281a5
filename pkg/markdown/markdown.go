package markdown

import (
	"regexp"
	"strings"
)

// Deliberately tiny markdown converter for AI-generated lesson content.
// Handles the handful of constructs the generator actually emits: headings
// 1-3, bold/italic/inline code, fenced code blocks and flat unordered
// lists. Lines that already look like HTML pass through untouched, which
// makes the conversion a no-op on previously converted content. No
// nesting, ordered lists, links, tables or entity escaping.

var (
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*(.*?)\*`)
	codeRe     = regexp.MustCompile("`([^`]+)`")
	listItemRe = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
)

// inline applies bold, italic and inline-code formatting to a single line
func inline(s string) string {
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = codeRe.ReplaceAllString(s, "<code>$1</code>")
	return s
}

// ToHTML converts markdown to HTML one line at a time
func ToHTML(md string) string {
	var out []string
	var codeLines []string

	inCode := false
	inList := false

	closeList := func() {
		if inList {
			out = append(out, "</ul>")
			inList = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		// fenced code blocks swallow everything until the closing fence
		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				out = append(out, "<pre><code>"+strings.Join(codeLines, "\n")+"</code></pre>")
				codeLines = nil
				inCode = false
			} else {
				closeList()
				inCode = true
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		if trimmed == "" {
			closeList()
			continue
		}

		// already HTML - pass through so conversion stays idempotent
		if strings.HasPrefix(trimmed, "<") {
			closeList()
			out = append(out, trimmed)
			continue
		}

		if m := listItemRe.FindStringSubmatch(line); m != nil {
			if !inList {
				out = append(out, "<ul>")
				inList = true
			}
			out = append(out, "<li>"+inline(m[1])+"</li>")
			continue
		}
		closeList()

		switch {
		case strings.HasPrefix(trimmed, "### "):
			out = append(out, "<h3>"+inline(strings.TrimPrefix(trimmed, "### "))+"</h3>")
		case strings.HasPrefix(trimmed, "## "):
			out = append(out, "<h2>"+inline(strings.TrimPrefix(trimmed, "## "))+"</h2>")
		case strings.HasPrefix(trimmed, "# "):
			out = append(out, "<h1>"+inline(strings.TrimPrefix(trimmed, "# "))+"</h1>")
		default:
			out = append(out, "<p>"+inline(trimmed)+"</p>")
		}
	}

	// unterminated fence - keep the content rather than dropping it
	if inCode {
		out = append(out, "<pre><code>"+strings.Join(codeLines, "\n")+"</code></pre>")
	}
	closeList()

	return strings.Join(out, "\n")
}
