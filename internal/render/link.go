// Package render turns sidebar declarations into the markup and documents
// consumed by the documentation site.
package render

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// CSS classes of the theme's sidebar rows.
const (
	linkRowClass  = "theme-doc-sidebar-item-link theme-doc-sidebar-item-link-level-1 menu__list-item"
	linkAnchorCSS = "menu__link"
	linkStyle     = "display: flex; justify-content: flex-start; align-items: center;"
	labelStyle    = "padding-left: 8px;"
	iconSize      = "21px"
)

// externalLinkIcon is the theme's "opens externally" glyph.
const externalLinkIcon = `<svg width="13.5" height="13.5" aria-hidden="true" viewBox="0 0 24 24" class="iconExternalLink_node_modules-@docusaurus-theme-classic-lib-theme-Icon-ExternalLink-styles-module"><path fill="currentColor" d="M21 13v10h-21v-19h12v2h-10v15h17v-8h2zm3-12h-10.988l4.035 4-6.977 7.07 2.828 2.828 6.977-7.07 4.125 4.172v-11z"></path></svg>`

// LinkNode builds the sidebar row for an external link: icon, label and
// external indicator inside a single anchor that opens in a new tab.
func LinkNode(spec sidebar.LinkSpec) g.Node {
	return html.Li(
		html.Class(linkRowClass),
		html.A(
			html.Class(linkAnchorCSS),
			g.Attr("style", linkStyle),
			html.Aria("current", "page"),
			html.Href(spec.Href),
			html.Target("_blank"),
			html.Rel("noopener noreferrer"),
			html.Img(
				html.Src(spec.Icon),
				html.Alt(spec.Name+" logo"),
				g.Attr("height", iconSize),
				g.Attr("width", iconSize),
			),
			html.Span(
				g.Attr("style", labelStyle),
				g.Text(spec.Name),
			),
			g.Raw(externalLinkIcon),
		),
	)
}

// LinkHTML renders LinkNode to a string. Identical inputs give byte-identical output.
func LinkHTML(spec sidebar.LinkSpec) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = LinkNode(spec).Render(&b)
	return b.String()
}
