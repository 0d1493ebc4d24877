package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cartverify/prepay-gateway/internal/webhook"
)

// CLI-приложение для проверки фикстур вебхуков предоплаты.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format := webhook.InputFormat(*formatStr)

	path := *inputPath
	if path == "" {
		// stdin вариант: считаем, что jsonl
		if format == webhook.FormatAuto {
			format = webhook.FormatJSONL
		}
		path = "/dev/stdin"
	}

	res, err := webhook.LintPayloadFile(path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v (valid=%d invalid=%d)\n", err, res.ValidPayloads, res.InvalidPayloads)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "lint ok (valid=%d invalid=%d)\n", res.ValidPayloads, res.InvalidPayloads)
	if res.InvalidPayloads > 0 {
		os.Exit(1)
	}
}
