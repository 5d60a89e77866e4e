//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	seedYAML = "catalog/records.yaml"
	seedDB   = "catalog/records.db"
)

// Seed exports the built-in records to catalog/records.yaml and imports
// them into the SQLite catalog at catalog/records.db.
func Seed() error {
	mg.Deps(Init, Build)

	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "catalog", "export", seedYAML); err != nil {
		return err
	}
	if err := sh.RunV(bin, "catalog", "import", "--db", seedDB, seedYAML); err != nil {
		return err
	}
	fmt.Printf("Search the seeded catalog with: %s --catalog sqlite --catalog-path %s search <query>\n", bin, seedDB)
	return nil
}
