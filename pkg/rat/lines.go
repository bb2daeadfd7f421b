package rat

import "strings"

// LineRecord is one line of an input while it is being numbered.
type LineRecord struct {
	Content string
	// Ordinal is the 1-based position of the line in the input.
	Ordinal int
	Blank   bool
}

// splitLines splits text on "\n", dropping a "\r" right before it. A trailing
// newline does not start a new line and a last line without newline is kept.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\n")
		if strings.HasSuffix(lines[i], "\n") {
			line = strings.TrimSuffix(line, "\r")
		}
		lines[i] = line
	}

	return lines
}

// records returns the lines of text with their ordinal.
func records(text string) []LineRecord {
	lines := splitLines(text)
	res := make([]LineRecord, len(lines))

	for i, line := range lines {
		res[i] = LineRecord{
			Content: line,
			Ordinal: i + 1,
			Blank:   len(line) == 0,
		}
	}

	return res
}
