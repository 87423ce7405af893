package formatter

import "fmt"

// AuthorLine renders an authorship entry as "Fullname <email>". Notes
// are appended in brackets only when non-empty.
func AuthorLine(fullname, email, notes string) string {
	line := fmt.Sprintf("%s <%s>", fullname, email)
	if len(notes) > 0 {
		line = fmt.Sprintf("%s [%s]", line, notes)
	}
	return line
}
