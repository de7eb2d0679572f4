// Package assets provides the HTML layouts and CSS styles used to render
// notebook reports.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    │
//	    └── AssetLoader (interface, adds layouts)
//	            ├── EmbeddedLoader  - built-in layouts and styles (go:embed)
//	            └── AssetResolver   - custom styles first, embedded fallback
//
// Layouts are always embedded: each one defines the document structure a
// layout name promises (sections, sequential blocks, grid cards), so they
// are not user-replaceable. Styles are: a custom asset directory may
// override any built-in style by name or add new ones.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css           # e.g. grid.css overrides the grid look
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
