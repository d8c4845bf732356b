// Package mustache renders compiled logic-less templates.
//
// A Template is a tree of elements: literal text, variable tags and
// sections. Rendering walks the tree against a Context, a stack of data
// frames searched from the innermost frame outwards:
//
//	tmpl := compiler.MustCompile("Hi {{#bold}}{{name}}{{/bold}}!")
//	out := tmpl.Exec(map[string]interface{}{
//	    "name": "Ann",
//	    "bold": mustache.HelperFunc(func(s *mustache.Section) string {
//	        return "*" + s.Render() + "*"
//	    }),
//	})
//	// out == "Hi *Ann*!"
//
// A section renders according to the Disposition of its value:
//   - Falsy values (missing keys, nil, false, empty lists) render nothing,
//     unless the section is inverted
//   - Truthy values are pushed on the context and render the section once
//   - Enumerable values render the section once per item
//   - Callable values (Helpers) render the section themselves, from its
//     compiled children or its raw inner text
//
// Missing data never fails a render. Broken invariants, such as a Helper
// leaving frames on the context, panic.
//
// The package does not parse template text; see package compiler.
package mustache
