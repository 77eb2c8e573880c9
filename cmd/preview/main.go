// Command preview loads the public portfolio content (falling back to the
// bundled snapshot when the API is unreachable) and prints the rendered
// modal view of one case study. Useful for eyeballing content changes
// without a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/view"
)

func main() {
	base := flag.String("base", "http://localhost:5000", "API base URL")
	caseKey := flag.String("case", "", "case-study key to render (empty lists keys)")
	timeout := flag.Duration("timeout", 5*time.Second, "fetch timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	snap := content.Load(ctx, nil, *base)

	if !snap.CaseStudiesLive {
		fmt.Fprintln(os.Stderr, "note: case studies served from bundled fallback")
	}

	cases := content.BuildCases(snap.CaseStudies)

	if *caseKey == "" {
		keys := make([]string, 0, len(cases))
		for k := range cases {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("available case studies:")
		for _, k := range keys {
			fmt.Printf("  %s\t%s\n", k, cases[k].Title)
		}
		return
	}

	catalog := view.NewCatalog(cases, content.Diagrams)
	catalog.Activate(*caseKey)

	active := catalog.Active()
	if active == nil {
		fmt.Fprintf(os.Stderr, "unknown case study %q\n", *caseKey)
		os.Exit(1)
	}

	fmt.Printf("%s\n%s\n", active.Title, active.Lead)
	if len(active.Tags) > 0 {
		fmt.Printf("tags: %s\n", strings.Join(active.Tags, ", "))
	}
	fmt.Println()

	for _, sec := range active.Sections {
		marker := ""
		if sec.Collapsed {
			marker = " [collapsed]"
		}
		fmt.Printf("## %s%s\n", sec.Heading, marker)
		if sec.Paragraph != "" {
			fmt.Println(sec.Paragraph)
		}
		for _, item := range sec.List {
			fmt.Printf("- %s\n", item)
		}
		if sec.Diagram != "" {
			fmt.Printf("(interactive diagram: %s)\n", sec.Diagram)
		}
		fmt.Println()
	}

	for _, d := range catalog.TabDiagrams() {
		node := d.SelectedNode()
		fmt.Printf("diagram default tab: %s\n", node.Title)
	}
}
