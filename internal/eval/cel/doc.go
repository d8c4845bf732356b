// Package cel provides a CEL (Common Expression Language) evaluator for
// condition helpers.
//
// CEL is a non-Turing complete expression language. It is never part of the
// template syntax: a condition is registered under a name and used as an
// ordinary section whose children render when the expression is true.
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	vars := map[string]interface{}{
//	    "scope": map[string]interface{}{"age": 21},
//	    "data":  map[string]interface{}{"plan": "gold"},
//	}
//
//	result, err := evaluator.Evaluate(ctx, "scope.age >= 18 && data.plan == 'gold'", vars)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matched := result.(bool) // true
package cel
