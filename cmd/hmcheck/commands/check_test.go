// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hmcheck"
	"github.com/wdamron/hmcheck/internal/config"
)

const program = `
- kind: signature
  name: toStr
  type: {function: [Int], returns: String}
- kind: function
  name: toStr
  equations:
    - patterns: [n]
      body: n
- kind: function
  name: ident
  equations:
    - patterns: [x]
      body: x
`

func writeProgram(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestCheckFile(t *testing.T) {
	path := writeProgram(t, program)
	analysis, err := checkFile(hmcheck.New(), path)
	require.NoError(t, err)
	require.Len(t, analysis.Diagnostics, 2)
	assert.True(t, strings.HasPrefix(analysis.Diagnostics[0], "Type error in 'toStr': "), analysis.Diagnostics[0])
	assert.Equal(t, "Function 'ident' is defined but has no signature", analysis.Diagnostics[1])

	_, err = checkFile(hmcheck.New(), writeProgram(t, "- {kind: frob}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prog.yaml")
}

func TestTextReport(t *testing.T) {
	path := writeProgram(t, program)
	analysis, err := checkFile(hmcheck.New(), path)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Types = true
	var buf bytes.Buffer
	rep := newReporter(&buf, cfg, false)
	rep.add("prog.yaml", analysis)
	require.NoError(t, rep.flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "prog.yaml: Function 'ident' is defined but has no signature", lines[1])
	assert.Equal(t, "prog.yaml: toStr :: Number -> String", lines[2])
	assert.Regexp(t, regexp.MustCompile(`^prog\.yaml: ident :: t\d+ -> t\d+$`), lines[3])
}

func TestColoredReport(t *testing.T) {
	analysis := &hmcheck.Analysis{Diagnostics: []string{
		"Type error in 'f': Cannot unify Number with String",
		"Function 'g' is defined but has no signature",
	}}
	var buf bytes.Buffer
	rep := newReporter(&buf, config.Default(), true)
	rep.add("p", analysis)

	out := buf.String()
	assert.Contains(t, out, "\x1b[31mType error in 'f'")
	assert.Contains(t, out, "\x1b[33mFunction 'g'")
}

func TestJSONReport(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatJSON
	var buf bytes.Buffer
	rep := newReporter(&buf, cfg, true)
	rep.add("a.yaml", &hmcheck.Analysis{})
	rep.add("b.yaml", &hmcheck.Analysis{Diagnostics: []string{"Cyclic type alias 'A'"}})
	assert.Zero(t, buf.Len(), "json reports are written by flush")
	require.NoError(t, rep.flush())

	var reports []fileReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reports))
	assert.Equal(t, []fileReport{
		{File: "a.yaml", Diagnostics: []string{}},
		{File: "b.yaml", Diagnostics: []string{"Cyclic type alias 'A'"}},
	}, reports)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(config.ColorAlways, &buf))
	assert.False(t, useColor(config.ColorNever, &buf))
	assert.False(t, useColor(config.ColorAuto, &buf), "buffers are not terminals")
}
