package render

import (
	"io"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

const previewCSS = `body{font-family:system-ui,sans-serif;margin:2rem}
.menu__list{list-style:none;padding:0;width:18rem}
.menu__list-item{padding:.25rem 0}
.menu__link{color:inherit;text-decoration:none}
.autogenerated{color:#777;font-style:italic}`

// PreviewPage builds a standalone HTML page showing one sidebar. Autogenerated
// entries are shown as placeholders since their contents come from the framework.
func PreviewPage(key string, items []sidebar.Item) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.TitleEl(g.Text("Sidebar preview: "+key)),
				html.StyleEl(g.Raw(previewCSS)),
			),
			html.Body(
				html.H1(g.Text(key)),
				html.Nav(
					html.Class("menu"),
					html.Ul(
						html.Class("menu__list"),
						g.Map(items, previewItem),
					),
				),
			),
		),
	)
}

func previewItem(it sidebar.Item) g.Node {
	if it.IsLink() {
		return LinkNode(*it.Link)
	}
	return html.Li(
		html.Class("menu__list-item autogenerated"),
		g.Text("docs/"+it.DirName+"/ (generated by the site)"),
	)
}

// WritePreview renders the preview page of key to w.
func WritePreview(w io.Writer, reg *sidebar.Registry, key string) error {
	items, ok := reg.Items(key)
	if !ok {
		return errors.NotFoundError("unknown sidebar").
			WithContext("sidebar", key).
			WithContext("available", reg.Keys()).
			Build()
	}
	if err := PreviewPage(key, items).Render(w); err != nil {
		return errors.RenderError("failed to render preview").WithCause(err).
			WithContext("sidebar", key).
			Build()
	}
	return nil
}
