// Package render renders resolutions and zone options through pongo2
// templates, the engine behind github.com/goliatone/go-template.
//
// Data is converted to a template context through its JSON encoding, so
// templates address fields by their JSON names:
//
//	engine, _ := render.New()
//	line, _ := engine.RenderString(render.Plain("{{ offset }} {{ name }}"), resolution)
//
// The embedded "resolve" and "option" templates back the CLI default output
// and can be overridden with WithFS.
package render
