package card

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"model-card-service/internal/core/domain"
)

var frontMatterFence = []byte("---")

// Parse decodes a raw model card into its structured form. The front-matter
// block must open on the first line; the markdown body is split into sections
// on its headings. Unknown headings are kept under their literal text.
func Parse(raw []byte) (*domain.CardDocument, error) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	front, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	doc := &domain.CardDocument{Sections: map[string]string{}}
	if err := yaml.Unmarshal(front, &doc.Front); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFrontMatter, err)
	}

	parseBody(doc, body)

	if hp, ok := doc.Sections[SectionHyperparameters]; ok {
		doc.Hyperparameters = parseParamList(hp)
	}
	if fv, ok := doc.Sections[SectionFrameworkVersions]; ok {
		doc.FrameworkVersions = parseVersionList(fv)
	}

	return doc, nil
}

// splitFrontMatter returns the YAML block between the leading fences and the
// remaining markdown body.
func splitFrontMatter(raw []byte) (front, body []byte, err error) {
	lines := bytes.SplitAfter(raw, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontMatterFence) {
		return nil, nil, domain.ErrMissingFrontMatter
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		if bytes.Equal(bytes.TrimSpace(line), frontMatterFence) {
			return raw[len(lines[0]):offset], raw[offset+len(line):], nil
		}
		offset += len(line)
	}
	return nil, nil, domain.ErrUnterminatedFrontMatter
}

type headingMark struct {
	canonical string
	level     int
	lineStart int // offset of the heading line in the body
	lineEnd   int // offset just past the heading line's newline
}

// parseBody walks the markdown AST, records headings in order and slices the
// text between consecutive headings into section bodies.
func parseBody(doc *domain.CardDocument, body []byte) {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var marks []headingMark
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}

		var sb strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			seg := h.Lines().At(i)
			sb.Write(seg.Value(body))
		}
		title := strings.TrimSpace(sb.String())

		seg := h.Lines().At(0)
		lineStart := bytes.LastIndexByte(body[:seg.Start], '\n') + 1
		lineEnd := seg.Stop
		if i := bytes.IndexByte(body[seg.Stop:], '\n'); i >= 0 {
			lineEnd = seg.Stop + i + 1
		} else {
			lineEnd = len(body)
		}

		marks = append(marks, headingMark{
			canonical: Canonical(title),
			level:     h.Level,
			lineStart: lineStart,
			lineEnd:   lineEnd,
		})

		if h.Level == 1 && doc.ModelName == "" {
			doc.ModelName = title
		}
	}

	for i, m := range marks {
		end := len(body)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		content := strings.TrimSpace(string(body[m.lineEnd:end]))

		if m.level == 1 {
			if m.canonical == doc.ModelName && doc.Summary == "" {
				doc.Summary = content
			}
			continue
		}

		doc.SectionOrder = append(doc.SectionOrder, m.canonical)
		if _, exists := doc.Sections[m.canonical]; !exists {
			doc.Sections[m.canonical] = content
		}
	}
}

// parseParamList reads "- name: value" bullet lines, preserving order.
func parseParamList(body string) []domain.Param {
	var params []domain.Param
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		name, value, ok := strings.Cut(strings.TrimPrefix(line, "- "), ":")
		if !ok {
			continue
		}
		params = append(params, domain.Param{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return params
}

// parseVersionList reads "- Framework x.y.z" bullet lines.
func parseVersionList(body string) []domain.Param {
	var params []domain.Param
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		name, value, ok := strings.Cut(strings.TrimPrefix(line, "- "), " ")
		if !ok {
			continue
		}
		params = append(params, domain.Param{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return params
}
