// Copyright 2017 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package actiontext implements a human-readable DSL for the action lists
// actions.List encodes, so an operator (or a test) can write
// "output(1), push_vlan(tpid=0x8100,tci=0x0005), output(2)" instead of
// hand-building TLVs.
package actiontext

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ovswitchdp/actionengine/actions"
)

// A parser splits a comma-separated action list into individual action
// strings, tracking parenthesis nesting so a nested action list (SAMPLE's
// actions=(...)) is not split on its own internal commas.
type parser struct {
	r *bufio.Reader
	s stack
}

func newParser(r io.Reader) *parser {
	return &parser{r: bufio.NewReader(r), s: make(stack, 0)}
}

var eof = rune(0)

func (p *parser) read() rune {
	ch, _, err := p.r.ReadRune()
	if err != nil {
		return eof
	}
	return ch
}

// Parse splits and decodes every action in the wrapped reader into an
// actions.List.
func (p *parser) Parse() (actions.List, error) {
	var list actions.List

	for {
		raw, err := p.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		a, err := parseOne(raw)
		if err != nil {
			return nil, fmt.Errorf("actiontext: %q: %w", raw, err)
		}
		list = append(list, a)
	}

	return list, nil
}

// next reads and returns the next top-level comma-separated action string.
func (p *parser) next() (string, error) {
	var buf bytes.Buffer

	for {
		ch := p.read()

		if ch == ',' && p.s.len() == 0 {
			break
		}
		if ch == eof {
			if buf.Len() == 0 {
				return "", io.EOF
			}
			break
		}

		switch ch {
		case '(':
			p.s.push()
		case ')':
			p.s.pop()
		}

		_, _ = buf.WriteRune(ch)
	}

	if p.s.len() > 0 {
		return "", fmt.Errorf("actiontext: invalid action: %q", buf.String())
	}

	return strings.TrimSpace(buf.String()), nil
}

// A stack is a basic stack with elements that have no value, used only to
// track parenthesis nesting depth.
type stack []struct{}

func (s *stack) len() int { return len(*s) }
func (s *stack) push()    { *s = append(*s, struct{}{}) }
func (s *stack) pop()     { *s = (*s)[:s.len()-1] }

// Parse decodes a full action list from its text representation, per
// spec.md's action-tag table.
func Parse(s string) (actions.List, error) {
	return newParser(strings.NewReader(s)).Parse()
}
