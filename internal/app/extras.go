// Where: internal/app/extras.go
// What: Extras command installing optional free-tier packages.
// Why: Search and local extraction work without a paid plan when these exist.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/firecrawl-community/fcenv/internal/config"
	"github.com/firecrawl-community/fcenv/internal/pip"
)

// searchCandidates is the ordered try-list for search support: the
// current package first, the legacy name as the single fallback.
var searchCandidates = []string{"ddgs", "duckduckgo-search"}

// extractionPackages are installed as an independent second step.
var extractionPackages = []string{"beautifulsoup4", "lxml", "html2text"}

// runExtras executes the 'extras' command. Both steps are best-effort:
// whatever installed stays installed, every outcome is reported, and the
// exit code is nonzero only when both steps failed outright.
func runExtras(cli CLI, deps Dependencies, out io.Writer) int {
	ctx := context.Background()
	cfg := config.LoadGlobalConfigOrDefault()
	env := resolveEnv(cli, deps, cfg)

	if !env.Exists() {
		fmt.Fprintf(out, "❌ Virtual environment '%s' not found.\n", env.Dir)
		fmt.Fprintln(out, "Run 'fcenv setup' first.")
		return 1
	}

	fmt.Fprintln(out, "Installing search support...")
	attempts, searchOK := pip.InstallFirst(ctx, deps.Runner, env, searchCandidates)
	for _, attempt := range attempts {
		if attempt.Err != nil {
			fmt.Fprintf(out, "❌ %s failed\n", attempt.Package)
			continue
		}
		fmt.Fprintf(out, "✓ %s installed\n", attempt.Package)
	}
	if !searchOK {
		fmt.Fprintln(out, "❌ Search support unavailable: every candidate failed")
	}

	fmt.Fprintln(out, "\nInstalling local extraction support...")
	extractionOK := false
	for _, name := range extractionPackages {
		if err := pip.InstallPackage(ctx, deps.Runner, env, name); err != nil {
			fmt.Fprintf(out, "❌ %s failed\n", name)
			continue
		}
		fmt.Fprintf(out, "✓ %s installed\n", name)
		extractionOK = true
	}

	if !searchOK && !extractionOK {
		fmt.Fprintln(out, "\n❌ No optional packages could be installed.")
		return 1
	}
	fmt.Fprintln(out, "\n✓ Extras install finished (partial results are kept).")
	return 0
}
