// Package template provides the Mustache template engine used by the render
// worker.
//
// The engine compiles templates once, caches them by source, and renders
// them with a set of registered section helpers available to every template.
//
// Example usage:
//
//	engine := template.NewEngine(logger)
//
//	data := map[string]interface{}{
//	    "user": map[string]interface{}{
//	        "name": "Ann",
//	        "age":  21,
//	    },
//	}
//
//	if err := engine.RegisterCondition("adult", "scope.age >= 18"); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.Render("{{#user}}{{#adult}}{{#uppercase}}{{name}}{{/uppercase}}{{/adult}}{{/user}}", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Output: ANN
//
// Built-in helpers:
//   - uppercase - Render the section and convert it to uppercase
//   - lowercase - Render the section and convert it to lowercase
//   - trim - Render the section and trim surrounding whitespace
//   - verbatim - Output the section's inner template text without rendering it
//
// Conditions registered with RegisterCondition are CEL expressions over
// scope (the innermost frame) and data (the rendered value).
package template
