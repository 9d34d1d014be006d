package sidebar

// ItemType tags the variant held by an Item.
type ItemType string

const (
	// ItemAutogenerated entries are expanded by the host framework from a content directory.
	ItemAutogenerated ItemType = "autogenerated"
	// ItemLink entries point outside the documentation site and are rendered as a styled row.
	ItemLink ItemType = "link"
)

// LinkSpec holds the inputs of an external link row.
type LinkSpec struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
	Icon string `yaml:"icon" json:"icon"`
}

// Item is one navigation entry of a sidebar.
//
// Exactly one of DirName (ItemAutogenerated) or Link (ItemLink) is meaningful,
// depending on Type. Items are plain values; markup is produced by the render package.
type Item struct {
	Type    ItemType
	DirName string
	Link    *LinkSpec
}

// Autogenerated returns an item that the host framework resolves by scanning dirName.
func Autogenerated(dirName string) Item {
	return Item{Type: ItemAutogenerated, DirName: dirName}
}

// NewAPIClientLink builds an external link item for a client library reference.
// It never fails: malformed URLs or missing icons are only caught by the validate package.
func NewAPIClientLink(spec LinkSpec) Item {
	s := spec
	return Item{Type: ItemLink, Link: &s}
}

// IsAutogenerated reports whether the item is a directory-scan directive.
func (i Item) IsAutogenerated() bool { return i.Type == ItemAutogenerated }

// IsLink reports whether the item is an external link row.
func (i Item) IsLink() bool { return i.Type == ItemLink && i.Link != nil }

// clone returns a deep copy so callers cannot reach registry internals.
func (i Item) clone() Item {
	if i.Link == nil {
		return i
	}
	l := *i.Link
	i.Link = &l
	return i
}
