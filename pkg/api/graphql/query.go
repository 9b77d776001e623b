package graphql

import "github.com/graphql-go/graphql"

// ExecuteQuery runs query against schema with no variables, grounded on the
// teacher's identically-named helper.
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return graphql.Do(graphql.Params{Schema: schema, RequestString: query})
}

// ExecuteQueryWithVariables runs query against schema with the given
// variable bindings.
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
}
