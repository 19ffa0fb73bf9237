package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fruitDefinition = `id: fruit
title: Fruit
placeholder: Pick a fruit
searchable: true
options:
  - value: apple
    label: Apple
  - value: grape
    label: Grape
    disabled: true
  - value: guava
    label: Guava
`

func writeDefinition(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fruit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
