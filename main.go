package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/statuscolor"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("usage: %s <url>\n", os.Args[0])
		os.Exit(1)
	}

	auditor := audit.New(audit.Config{})
	res, err := auditor.Audit(context.Background(), os.Args[1], 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range res.Pages {
		statuscolor.PrintPage(p)
	}
	for _, bl := range res.BrokenLinks {
		fmt.Printf("%s %s\n", statuscolor.Sprint(bl.StatusCode), bl.URL)
	}
	statuscolor.PrintIssues(res)
}
