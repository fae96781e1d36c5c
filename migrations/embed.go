// Package migrations embeds the goose SQL migrations for every supported
// store driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration directory for the given driver ("postgres" or
// "sqlite") rooted so goose sees the .sql files at the top level.
func FS(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "sqlite":
		return fs.Sub(files, driver)
	default:
		return nil, fmt.Errorf("migrations: unknown driver %q", driver)
	}
}
