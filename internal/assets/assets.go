package assets

// PartialsLayout is the embedded layout holding the named sub-templates
// ("head", "image", "meta", "footer") shared by every page layout.
const PartialsLayout = "partials"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// AvailableStyles returns the names of the built-in styles.
// Used for error hints.
func AvailableStyles() []string {
	return defaultLoader.Styles()
}
