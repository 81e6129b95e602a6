package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/remotenav/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

By default, man pages are installed to $XDG_DATA_HOME/man/man1/ so they
are immediately available via 'man remotenav'. You may need to run 'mandb'
to update the man page index.

Examples:
  remotenav gen-docs                           # Install man pages
  remotenav gen-docs --format markdown         # Generate markdown docs
  remotenav gen-docs --output ./man            # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := manDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	switch genDocsFormat {
	case "man", "markdown":
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Disable auto-generation timestamp for reproducible builds
	rootCmd.DisableAutoGenTag = true

	if genDocsFormat == "man" {
		header := &doc.GenManHeader{
			Title:   "REMOTENAV",
			Section: "1",
			Source:  "remotenav " + buildInfo.Version,
			Manual:  "remotenav Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Printf("Installed man pages to %s\n", outputDir)
		return listGenerated(outputDir, ".1")
	}

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	fmt.Printf("Generated markdown docs in %s\n", outputDir)
	return listGenerated(outputDir, ".md")
}

// manDir returns $XDG_DATA_HOME/man/man1.
func manDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	// DataHome is the remotenav data dir; man pages live one level up.
	return filepath.Join(filepath.Dir(dirs.DataHome), "man", "man1"), nil
}

func listGenerated(dir, ext string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}
