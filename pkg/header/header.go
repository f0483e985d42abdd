package header

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hbagdi/httpstat/pkg/model"
	"github.com/hbagdi/httpstat/pkg/palette"
)

const separator = "\r\n\r\n"

var ErrNoHeaders = errors.New("no header/body separator in response")

var (
	statusRegex = regexp.MustCompile(`(.+?)/(.*)`)
	fieldRegex  = regexp.MustCompile(`(.+?):(.*)`)
)

// Split separates the header block of a captured response from the rest
// of the output.
func Split(blob string) (head, rest string, err error) {
	i := strings.Index(blob, separator)
	if i < 0 {
		return "", "", ErrNoHeaders
	}
	return blob[:i], blob[i+len(separator):], nil
}

// Lines splits a header block into lines, dropping line terminators.
func Lines(head string) model.HeaderLines {
	if head == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(head, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Colorize returns the header lines with color applied to the protocol and
// version of the status line and to every header value. A blank line is
// emitted ahead of the status line.
func Colorize(lines model.HeaderLines, p palette.Painter) []string {
	res := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		if i == 0 {
			res = append(res, "", replace(statusRegex, line, func(m []string) string {
				return p.Paint(palette.Green, m[1]) + "/" + p.Paint(palette.Cyan, m[2])
			}))
			continue
		}
		res = append(res, replace(fieldRegex, line, func(m []string) string {
			return m[1] + ":" + p.Paint(palette.Cyan, m[2])
		}))
	}
	return res
}

// replace substitutes the first match of re in line with the result of fn.
// Lines that do not match are returned as is.
func replace(re *regexp.Regexp, line string, fn func(m []string) string) string {
	loc := re.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	m := make([]string, len(loc)/2)
	for i := range m {
		m[i] = line[loc[2*i]:loc[2*i+1]]
	}
	return line[:loc[0]] + fn(m) + line[loc[1]:]
}
