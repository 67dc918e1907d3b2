package config

// Default site settings, used whenever the site file omits an attribute or
// no site file is given at all.
const (
	DefaultTitle     = "My Social Network"
	DefaultOutputDir = "site"
)

// Model is the unified, format-agnostic representation of the site
// configuration.
type Model struct {
	// Title heads the index page and every profile's back-link.
	Title string
	// OutputDir is where the generated pages land. The --out flag
	// overrides it.
	OutputDir string
}

// Default returns a model populated with the built-in settings.
func Default() *Model {
	return &Model{
		Title:     DefaultTitle,
		OutputDir: DefaultOutputDir,
	}
}
