// Package jsonschema compiles JSON Schema documents (Draft 4, Draft 6,
// Draft 7, and a partial Draft 2019-09) into a tree of Validators, and
// evaluates JSON instances against the compiled tree either as a fast
// boolean check or as a lazily-produced sequence of structured errors.
package jsonschema
