// Manual-testing helper: issues requests against a running accounting-api
// and prints the raw responses.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
)

var (
	baseURL = flag.String("base", "http://127.0.0.1:8787", "server base URL")
	db      = flag.String("db", "accounting-0", "database selector")
	op      = flag.String("op", "list", "operation: list, add, update, delete, by-date, sources, name")
)

func main() {
	flag.Parse()

	switch *op {
	case "list":
		do(http.MethodGet, "/spendings", nil, nil)
	case "add":
		do(http.MethodPost, "/spendings", nil, map[string]any{
			"amount":         -100,
			"description":    "Test spending",
			"categoryId":     1,
			"dateOfSpending": "2025-08-08",
			"currency":       "USD",
		})
	case "update":
		do(http.MethodPut, "/spendings", nil, map[string]any{
			"spendingId":  1,
			"description": "Updated description",
		})
	case "delete":
		do(http.MethodDelete, "/spendings", nil, map[string]any{
			"spendingId": 1,
		})
	case "by-date":
		do(http.MethodGet, "/spendings/by-date", url.Values{
			"startDate": {"2025-08-01"},
			"endDate":   {"2025-08-31"},
		}, nil)
	case "sources":
		do(http.MethodGet, "/sources", nil, nil)
	case "name":
		do(http.MethodGet, "/managing/name", nil, nil)
	default:
		fmt.Fprintf(os.Stderr, "unknown op %q\n", *op)
		os.Exit(2)
	}
}

func do(method, path string, query url.Values, body map[string]any) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("db", *db)
	target := *baseURL + path + "?" + query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %s\n%s\n", method, target, resp.Status, out)
}
