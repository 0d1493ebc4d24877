package webhook

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// LintResult — статистика проверки фикстур вебхука.
type LintResult struct {
	ValidPayloads   int
	InvalidPayloads int
}

// LintPayloadFile — проверяет файл с телом (или телами, JSONL) вебхука:
// каждая позиция извлекается и прогоняется через структурную проверку,
// причины отказов пишутся в writer. Используется для проверки фикстур
// перед подключением магазина.
func LintPayloadFile(filePath string, format InputFormat, ow io.Writer) (LintResult, error) {
	var res LintResult

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return res, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return res, fmt.Errorf("read file: %w", err)
		}
		lintPayload(raw, &res, ow)
		return res, nil

	case FormatJSONL:
		scanner := bufio.NewScanner(file)
		// запас на большие строки
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 10*1024*1024)

		for scanner.Scan() {
			line := scanner.Bytes()
			if len(strings.TrimSpace(string(line))) == 0 {
				continue
			}
			lintPayload(line, &res, ow)
		}
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("scan: %w", err)
		}
		return res, nil

	default:
		return res, fmt.Errorf("unsupported format: %s", format)
	}
}

// lintPayload — проверка одного тела: все позиции структурно корректны → valid.
func lintPayload(raw []byte, res *LintResult, ow io.Writer) {
	items := ExtractItems(raw)
	valid := true
	for i := range items {
		if ok, reasons := ValidItem(&items[i]); !ok {
			valid = false
			fmt.Fprintf(ow, "%s\n", strings.Join(reasons, " "))
		}
	}
	if valid {
		res.ValidPayloads++
	} else {
		res.InvalidPayloads++
	}
}
