package pipeline

import (
	"html"
	"strings"
)

// Tier is one of the two heading levels allowed in rendered output.
type Tier int

// Heading tiers. TierNone means no heading has been emitted yet.
const (
	TierNone Tier = iota
	TierSection
	TierSubsection
)

// Tag returns the HTML heading tag used for the tier.
func (t Tier) Tag() string {
	if t == TierSubsection {
		return "h4"
	}
	return "h3"
}

// faqHeading replaces whatever FAQ heading the generator wrote.
const faqHeading = "<h4>FAQs</h4>"

// Document is the result of rendering normalized markdown.
type Document struct {
	HTML     string
	Headings []Heading // in encounter order, FAQ heading excluded
	HasFAQ   bool
}

// renderState is threaded through the line fold. Output lines go to main
// unless the FAQ block has started, in which case paragraphs go to faq.
type renderState struct {
	inList    bool
	inFAQ     bool
	prevBlank bool
	lastTier  Tier

	main     []string
	faq      []string
	headings []Heading
}

func newRenderState() *renderState {
	return &renderState{prevBlank: true}
}

// Render converts normalized markdown into the restricted HTML subset.
// It does not strip model-written tables of contents: a "Table of Contents"
// heading in content renders as an ordinary section next to the generated
// one. Run StripTOCAndPreface first for raw generator output.
func Render(content string) string {
	return RenderDocument(content).HTML
}

// RenderDocument converts markdown into an HTML fragment made of h3/h4
// headings, paragraphs, unordered lists and bold FAQ questions, preceded by a
// generated table of contents and followed by the FAQ block.
func RenderDocument(content string) Document {
	st := newRenderState()

	for _, raw := range splitLines(NormalizeMarkdown(content)) {
		if !st.step(strings.TrimSpace(raw)) {
			break
		}
	}
	st.closeList()

	out := st.main
	if len(st.headings) > 0 {
		out = append(buildTOC(st.headings), out...)
	}
	out = append(out, st.faq...)

	return Document{
		HTML:     strings.Join(out, "\n"),
		Headings: st.headings,
		HasFAQ:   st.inFAQ,
	}
}

// step consumes one trimmed line. It returns false once the optional tail is reached.
func (st *renderState) step(line string) bool {
	if line == "" {
		st.closeList()
		st.prevBlank = true
		return true
	}
	if isPreface(line) {
		return true
	}
	if isOptionalTail(line) {
		return false
	}

	if item, ok := bulletText(line); ok && !st.inFAQ {
		if !st.inList {
			st.main = append(st.main, "<ul>")
			st.inList = true
		}
		st.main = append(st.main, "<li>"+html.EscapeString(item)+"</li>")
		st.prevBlank = false
		return true
	}

	if depth, title, ok := markdownHeading(line); ok {
		st.closeList()
		if isFAQMarker(title) {
			st.faq = append(st.faq, faqHeading)
			st.inFAQ = true
			st.lastTier = TierSubsection
		} else {
			st.emitHeading(tierForDepth(depth), title)
		}
		st.prevBlank = false
		return true
	}

	if st.prevBlank && !st.inFAQ && looksLikeHeading(line) {
		st.emitHeading(nextPromotedTier(st.lastTier), line)
		st.prevBlank = false
		return true
	}

	if st.inFAQ && strings.HasSuffix(line, "?") {
		st.faq = append(st.faq, "<p><strong>"+html.EscapeString(line)+"</strong></p>")
		st.prevBlank = false
		return true
	}

	st.closeList()
	p := "<p>" + html.EscapeString(line) + "</p>"
	if st.inFAQ {
		st.faq = append(st.faq, p)
	} else {
		st.main = append(st.main, p)
	}
	st.prevBlank = false
	return true
}

func (st *renderState) closeList() {
	if st.inList {
		st.main = append(st.main, "</ul>")
		st.inList = false
	}
}

func (st *renderState) emitHeading(tier Tier, title string) {
	h := Heading{Tier: tier, Title: title, Slug: Slugify(title)}
	st.headings = append(st.headings, h)
	tag := tier.Tag()
	st.main = append(st.main, "<"+tag+` id="`+html.EscapeString(h.Slug)+`">`+html.EscapeString(title)+"</"+tag+">")
	st.lastTier = tier
}

// tierForDepth maps "#" and "##" to sections and anything deeper to subsections.
func tierForDepth(depth int) Tier {
	if depth <= 2 {
		return TierSection
	}
	return TierSubsection
}

// nextPromotedTier alternates promoted plain-text titles: a title following a
// section becomes a subsection, otherwise it opens a new section.
func nextPromotedTier(last Tier) Tier {
	if last == TierSection {
		return TierSubsection
	}
	return TierSection
}
