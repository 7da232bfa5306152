// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/query"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// printMonitor narrates each rule match and skipped token to stdout.
type printMonitor struct{}

func (p *printMonitor) Start(tokens []string) {
	fmt.Printf("Tokens: %v\n", tokens)
}

func (p *printMonitor) RuleMatched(name string, start, consumed int) {
	fmt.Printf("  rule %q matched at token %d, consumed %d\n", name, start, consumed)
}

func (p *printMonitor) TokenSkipped(token string, i int) {
	fmt.Printf("  skipped token %d: %q\n", i, token)
}

func (p *printMonitor) Finish(_ core.FilterCriteria) {}

func main() {
	phrase := "all palindromic strings"
	if len(os.Args) > 1 {
		phrase = strings.Join(os.Args[1:], " ")
	}

	criteria := query.TranslateWithMonitor(phrase, &printMonitor{})

	out, err := json.MarshalIndent(criteria, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Filters: %s\n", out)
}
