// Package seed embeds the static JSON the mock datastore starts from.
package seed

import "embed"

//go:embed *.json
var FS embed.FS

const (
	Fields   = "fields.json"
	Crops    = "crops.json"
	Tasks    = "tasks.json"
	Expenses = "expenses.json"
	Weather  = "weather.json"
)
