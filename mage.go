//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                 = "gen"
	sqliteRatingsFileLocation = "rating.sqlite"
	serverBin                 = "./bin/batchrating"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the batchrating binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "./cmd")
}

// Serve starts the HTTP API
func Serve() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "serve")
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// UpdateGolden rewrites golden files of the render package
func UpdateGolden() error {
	return sh.RunV("go", "test", "./internal/render", "-update")
}

// GenJet regenerates gen/model and gen/table from a migrated database
func GenJet() error {
	mg.Deps(buildJetTool, migrateDB)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteRatingsFileLocation, "-path", jetOutput)
}

// migrateDB creates rating.sqlite at the latest schema by running the
// sqlite command on it.
func migrateDB() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "sqlite", "--db", sqliteRatingsFileLocation, "--log-level", "error")
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

func Clean() error {
	return os.RemoveAll("bin")
}
