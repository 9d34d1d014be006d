package validate

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// MarkupSummary describes what a rendered link row contains.
type MarkupSummary struct {
	Anchors      []Anchor
	Images       []Image
	LabelMatches int // text nodes equal to the link name
}

// Anchor is an <a> element found in a link row.
type Anchor struct {
	Href   string
	Target string
}

// Image is an <img> element found in a link row.
type Image struct {
	Src string
	Alt string
}

// InspectMarkup parses a rendered link row.
func InspectMarkup(markup, name string) (*MarkupSummary, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	sum := &MarkupSummary{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "a":
				sum.Anchors = append(sum.Anchors, Anchor{Href: attr(n, "href"), Target: attr(n, "target")})
			case "img":
				sum.Images = append(sum.Images, Image{Src: attr(n, "src"), Alt: attr(n, "alt")})
			}
		case html.TextNode:
			if n.Data == name {
				sum.LabelMatches++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sum, nil
}

// MarkupProblems lists every way markup deviates from a correct row for spec:
// one anchor to href opening a new tab, one image of icon with "{name} logo"
// alt text, and one label equal to name.
func MarkupProblems(spec sidebar.LinkSpec, markup string) []string {
	sum, err := InspectMarkup(markup, spec.Name)
	if err != nil {
		return []string{err.Error()}
	}
	var problems []string
	if len(sum.Anchors) != 1 {
		problems = append(problems, fmt.Sprintf("expected 1 anchor, found %d", len(sum.Anchors)))
	} else {
		a := sum.Anchors[0]
		if a.Href != spec.Href {
			problems = append(problems, fmt.Sprintf("anchor href %q does not match %q", a.Href, spec.Href))
		}
		if a.Target != "_blank" {
			problems = append(problems, fmt.Sprintf("anchor target is %q, want _blank", a.Target))
		}
	}
	if len(sum.Images) != 1 {
		problems = append(problems, fmt.Sprintf("expected 1 image, found %d", len(sum.Images)))
	} else {
		img := sum.Images[0]
		if img.Src != spec.Icon {
			problems = append(problems, fmt.Sprintf("image src %q does not match %q", img.Src, spec.Icon))
		}
		if want := spec.Name + " logo"; img.Alt != want {
			problems = append(problems, fmt.Sprintf("image alt %q, want %q", img.Alt, want))
		}
	}
	if sum.LabelMatches != 1 {
		problems = append(problems, fmt.Sprintf("expected 1 label %q, found %d", spec.Name, sum.LabelMatches))
	}
	return problems
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
