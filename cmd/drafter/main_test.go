package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "App"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App", "Note.h"), []byte("@interface Note : NSObject\n- (void)save;\n@end\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App", "Note.m"), []byte("@implementation Note\n- (void)save { [self flush]; }\n@end\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App", "Board.swift"), []byte("protocol Pinned {}\nclass Board: UIView, Pinned {\n    func pin() { layout() }\n}\n"), 0o644))
	config := filepath.Join(dir, "drafter.yaml")
	require.NoError(t, os.WriteFile(config, []byte("maxConcurrent: 2\n"), 0o644))

	var testCases = []struct {
		description string
		args        []string
		expectKeys  []string
		expectNames []string
	}{
		{
			description: "parse directory",
			args:        []string{"parse", "--config", config, filepath.Join(dir, "App")},
			expectKeys:  []string{"classes"},
			expectNames: []string{"Board", "Note"},
		},
		{
			description: "inherit files",
			args:        []string{"inherit", "--concurrency", "1", filepath.Join(dir, "App", "Note.h"), filepath.Join(dir, "App", "Board.swift")},
			expectKeys:  []string{"classes", "protocols"},
			expectNames: []string{"Board", "Note"},
		},
		{
			description: "methods directory",
			args:        []string{"methods", filepath.Join(dir, "App")},
			expectKeys:  []string{"methods"},
		},
	}

	for _, testCase := range testCases {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := newRootCmd(stdout, stderr)
		cmd.SetArgs(testCase.args)
		require.NoError(t, cmd.Execute(), testCase.description)

		document := map[string]interface{}{}
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &document), testCase.description)
		for _, key := range testCase.expectKeys {
			assert.Contains(t, document, key, testCase.description)
		}
		if len(testCase.expectNames) == 0 {
			continue
		}
		var names []string
		for _, item := range document["classes"].([]interface{}) {
			names = append(names, item.(map[string]interface{})["name"].(string))
		}
		assert.Equal(t, testCase.expectNames, names, testCase.description)
	}
}

func TestRootCmd_RepositoryOrigin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "App"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte("[remote \"origin\"]\n\turl = https://github.com/acme/board.git\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App", "Board.swift"), []byte("class Board {}\n"), 0o644))

	var testCases = []struct {
		description string
		args        []string
		expectLog   bool
	}{
		{description: "verbose logs origin", args: []string{"parse", "-v", filepath.Join(dir, "App")}, expectLog: true},
		{description: "quiet by default", args: []string{"parse", filepath.Join(dir, "App")}},
	}
	for _, testCase := range testCases {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := newRootCmd(stdout, stderr)
		cmd.SetArgs(testCase.args)
		require.NoError(t, cmd.Execute(), testCase.description)
		logged := strings.Contains(stderr.String(), "repository detected")
		assert.Equal(t, testCase.expectLog, logged, testCase.description)
		if testCase.expectLog {
			assert.Contains(t, stderr.String(), "origin=https://github.com/acme/board.git", testCase.description)
			assert.Contains(t, stderr.String(), "kind=git", testCase.description)
		}
	}
}

func TestRootCmd_InvalidPath(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, cmd.Execute())
}
