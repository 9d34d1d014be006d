package render

import (
	"bytes"
	"io"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// Host item types understood by the documentation framework.
const (
	HostTypeAutogenerated = "autogenerated"
	HostTypeHTML          = "html"
)

// HostItem is one sidebar entry in the framework's own shape.
type HostItem struct {
	Type    string `json:"type" yaml:"type"`
	DirName string `json:"dirName,omitempty" yaml:"dirName,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

// HostSidebar is a keyed, ordered list of host items.
type HostSidebar struct {
	Key   string
	Items []HostItem
}

// Document is the full sidebar configuration handed to the framework.
// Sidebars keep registry order when encoded.
type Document struct {
	Sidebars []HostSidebar
}

var jsonAPI = json.Config{
	EscapeHTML:    false,
	IndentionStep: 2,
}.Froze()

// Item converts a single declaration to its host form.
func Item(it sidebar.Item) HostItem {
	if it.IsLink() {
		return HostItem{Type: HostTypeHTML, Value: LinkHTML(*it.Link)}
	}
	return HostItem{Type: HostTypeAutogenerated, DirName: it.DirName}
}

// Build converts a registry into a host document.
func Build(reg *sidebar.Registry) Document {
	doc := Document{Sidebars: make([]HostSidebar, 0, reg.Len())}
	for _, sb := range reg.Sidebars() {
		items := make([]HostItem, 0, len(sb.Items))
		for _, it := range sb.Items {
			items = append(items, Item(it))
		}
		doc.Sidebars = append(doc.Sidebars, HostSidebar{Key: sb.Key, Items: items})
	}
	return doc
}

// Lookup returns the host items of a sidebar.
func (d Document) Lookup(key string) ([]HostItem, bool) {
	for _, sb := range d.Sidebars {
		if sb.Key == key {
			return sb.Items, true
		}
	}
	return nil, false
}

// WriteJSON writes the document as an indented JSON object.
func (d Document) WriteJSON(w io.Writer) error {
	stream := jsonAPI.BorrowStream(w)
	defer jsonAPI.ReturnStream(stream)

	if len(d.Sidebars) == 0 {
		stream.WriteEmptyObject()
	} else {
		stream.WriteObjectStart()
		for i, sb := range d.Sidebars {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(sb.Key)
			writeItems(stream, sb.Items)
		}
		stream.WriteObjectEnd()
	}
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return errors.RenderError("failed to encode JSON").WithCause(stream.Error).Build()
	}
	if err := stream.Flush(); err != nil {
		return errors.FileSystemError("failed to write JSON").WithCause(err).Build()
	}
	return nil
}

func writeItems(stream *json.Stream, items []HostItem) {
	if len(items) == 0 {
		stream.WriteEmptyArray()
		return
	}
	stream.WriteArrayStart()
	for i, it := range items {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		stream.WriteObjectField("type")
		stream.WriteString(it.Type)
		if it.DirName != "" {
			stream.WriteMore()
			stream.WriteObjectField("dirName")
			stream.WriteString(it.DirName)
		}
		if it.Value != "" {
			stream.WriteMore()
			stream.WriteObjectField("value")
			stream.WriteString(it.Value)
		}
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// MarshalYAML emits a mapping node so sidebar keys keep registry order.
func (d Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sb := range d.Sidebars {
		var items yaml.Node
		if err := items.Encode(sb.Items); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sb.Key},
			&items,
		)
	}
	return root, nil
}

// WriteYAML writes the document as YAML.
func (d Document) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.RenderError("failed to encode YAML").WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return errors.FileSystemError("failed to write YAML").WithCause(err).Build()
	}
	return nil
}

const tsHeader = `import type { SidebarsConfig } from "@docusaurus/plugin-content-docs";

const sidebars: SidebarsConfig = `

const tsFooter = `;

export default sidebars;
`

// WriteTS writes the document as a TypeScript sidebars module.
func (d Document) WriteTS(w io.Writer) error {
	var body bytes.Buffer
	if err := d.WriteJSON(&body); err != nil {
		return err
	}
	out := tsHeader + string(bytes.TrimSpace(body.Bytes())) + tsFooter
	if _, err := io.WriteString(w, out); err != nil {
		return errors.FileSystemError("failed to write TypeScript module").WithCause(err).Build()
	}
	return nil
}
