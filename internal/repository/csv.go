package repository

import "fmt"

// CSV membership patterns for exposed_countries-style columns.
// The four forms `= id`, `id,%`, `%,id,%`, `%,id` avoid matching
// "1" inside "11".
func csvExact(id uint) string  { return fmt.Sprintf("%d", id) }
func csvHead(id uint) string   { return fmt.Sprintf("%d,%%", id) }
func csvMiddle(id uint) string { return fmt.Sprintf("%%,%d,%%", id) }
func csvTail(id uint) string   { return fmt.Sprintf("%%,%d", id) }
