package sidebar

// Sidebar keys used by the Fluvio documentation site.
const (
	KeyFluvio = "fluvio"
	KeySDF    = "sdf"
	KeyAPIs   = "apis"
)

// APIClients returns the externally hosted client library references shown
// under the API sidebar, in display order.
func APIClients() []LinkSpec {
	return []LinkSpec{
		{
			Name: "Rust SDK",
			Href: "https://docs.rs/fluvio/latest/fluvio/",
			Icon: "/img/docs/sdk/rust.svg",
		},
		{
			Name: "Python SDK",
			Href: "https://infinyon.github.io/fluvio-client-python/fluvio.html",
			Icon: "/img/docs/sdk/python.svg",
		},
		{
			Name: "NodeJS SDK",
			Href: "https://infinyon.github.io/fluvio-client-node/",
			Icon: "/img/docs/sdk/nodejs.svg",
		},
	}
}

// Default returns the built-in sidebar registry. Each call builds a fresh value.
func Default() *Registry {
	apis := []Item{Autogenerated(KeyAPIs)}
	for _, c := range APIClients() {
		apis = append(apis, NewAPIClientLink(c))
	}
	return MustRegistry(
		Sidebar{Key: KeyFluvio, Items: []Item{Autogenerated(KeyFluvio)}},
		Sidebar{Key: KeySDF, Items: []Item{Autogenerated(KeySDF)}},
		Sidebar{Key: KeyAPIs, Items: apis},
	)
}
