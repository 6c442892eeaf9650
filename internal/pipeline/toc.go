package pipeline

import "html"

// tocTitle heads the generated table of contents.
const tocTitle = "Table of Contents"

// Heading is a navigable heading collected while rendering.
type Heading struct {
	Tier  Tier
	Title string
	Slug  string
}

// buildTOC returns the lines of a nested table of contents. Subsections nest
// under the closest preceding section; subsections seen before any section
// share a bare top-level item.
func buildTOC(headings []Heading) []string {
	if len(headings) == 0 {
		return nil
	}

	toc := []string{"<h3>" + tocTitle + "</h3>", "<ul>"}
	topOpen, subOpen := false, false

	for _, h := range headings {
		link := `<a href="#` + html.EscapeString(h.Slug) + `">` + html.EscapeString(h.Title) + "</a>"

		if h.Tier == TierSection {
			if subOpen {
				toc = append(toc, "</ul>")
				subOpen = false
			}
			if topOpen {
				toc = append(toc, "</li>")
			}
			toc = append(toc, "<li>"+link)
			topOpen = true
			continue
		}

		if !topOpen {
			toc = append(toc, "<li>")
			topOpen = true
		}
		if !subOpen {
			toc = append(toc, "<ul>")
			subOpen = true
		}
		toc = append(toc, "<li>"+link+"</li>")
	}

	if subOpen {
		toc = append(toc, "</ul>")
	}
	if topOpen {
		toc = append(toc, "</li>")
	}
	return append(toc, "</ul>")
}
