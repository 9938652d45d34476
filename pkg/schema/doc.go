// Package schema provides a type-safe validation system for resolved
// template output.
//
// Resolution is deliberately lenient: unbound references pass through as
// themselves rather than erroring. Downstream rendering code usually wants
// the opposite guarantee for the handful of fields it actually consumes,
// so schemas validate exactly those fields after resolution:
//
//	spec := schema.Schema{
//	    "title":  schema.String(),
//	    "width":  schema.Int(),
//	    "layers": schema.Slice(schema.Any()),
//	}
//
//	resolved, _ := resolve.New().Resolve(tmpl, env)
//	if err := schema.Validate(spec, resolved.(*term.Map)); err != nil {
//	    // Handle validation errors, including leftover references
//	}
//
// Schemas can be created programmatically or parsed from type strings:
//
//	spec, err := schema.ParseTypeMap(map[string]string{
//	    "title": "string",
//	    "width": "int",
//	})
//
// Custom validators cover domain-specific checks:
//
//	positive := schema.Custom("positive_int", func(v any) error {
//	    i, ok := v.(int)
//	    if !ok || i <= 0 {
//	        return fmt.Errorf("must be a positive int")
//	    }
//	    return nil
//	})
package schema
