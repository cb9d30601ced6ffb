package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shixin-guo/seo-agent/internal/api"
	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/banner"
)

func main() {
	var (
		addr      string
		timeout   time.Duration
		userAgent string
		skipQuery bool
		delay     time.Duration
		insecure  bool
		retries   int
	)
	flag.StringVar(&addr, "addr", ":8080", "Listen address")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Per-fetch timeout")
	flag.StringVar(&userAgent, "ua", "", "User-Agent override")
	flag.BoolVar(&skipQuery, "skip-query", false, "Skip URLs with query strings")
	flag.DurationVar(&delay, "delay", time.Second, "Pause between fetches")
	flag.BoolVar(&insecure, "insecure", false, "Skip TLS verification")
	flag.IntVar(&retries, "retries", 0, "Retry count for 5xx/transport errors")
	flag.Parse()

	banner.PrintBanner()

	srv := api.New(audit.Config{
		Timeout:       timeout,
		UserAgent:     userAgent,
		SkipQueryURLs: skipQuery,
		Delay:         delay,
		Insecure:      insecure,
		Retries:       retries,
	})
	fmt.Printf("Listening on %s\n", addr)
	if err := srv.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}
