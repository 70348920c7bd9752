// Package graph defines the GraphQL read schema over the catalogue.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/adityakr/bazaari/app/catalog"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"description": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"imageUrl":    &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the query schema over the given store.
func NewSchema(store *catalog.Store) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"category": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: catalog.CategoryAll},
					"sort":     &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: string(catalog.SortDefault)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					search, _ := p.Args["search"].(string)
					category, _ := p.Args["category"].(string)
					rawSort, _ := p.Args["sort"].(string)
					return store.Derive(search, category, catalog.ParseSort(rawSort)), nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.Categories(), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					product, ok := store.Find(id)
					if !ok {
						return nil, nil
					}
					return product, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
