package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zeus/internal/engine"
	"github.com/michaelmacinnis/zeus/internal/system/options"
)

func TestCommand(t *testing.T) {
	o, err := options.Parse([]string{"-c", "(define x 20) (+ x 22)"})
	require.NoError(t, err)

	var b bytes.Buffer

	require.NoError(t, run(o, nil, &b))
	assert.Equal(t, "42\n", b.String())
}

func TestCommandError(t *testing.T) {
	o, err := options.Parse([]string{"-c", "(/ 1 0)"})
	require.NoError(t, err)

	var b bytes.Buffer

	err = run(o, nil, &b)
	assert.EqualError(t, err, "Division by zero")
	assert.Empty(t, b.String())
}

func TestQuiet(t *testing.T) {
	o, err := options.Parse([]string{"-q", "-c", `(print "hi") 7`})
	require.NoError(t, err)

	var b bytes.Buffer

	require.NoError(t, run(o, nil, &b))
	assert.Equal(t, "hi", b.String())
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.zs")

	script := `#!/usr/bin/env zeus
(defun square (x) (* x x))
(println (square 12))
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	o, err := options.Parse([]string{path})
	require.NoError(t, err)

	var b bytes.Buffer

	require.NoError(t, run(o, nil, &b))
	assert.Equal(t, "144\n", b.String())
}

func TestShebangOnly(t *testing.T) {
	var b bytes.Buffer

	require.NoError(t, load(engine.New(), "#!/usr/bin/env zeus", &b, true))
	assert.Equal(t, "()\n", b.String())
}
