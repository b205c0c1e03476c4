package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.config")
	defer teardown()
	//
	conf := Default()
	require.NoError(t, conf.Validate())
	for _, file := range []string{DefaultTokenizer, DefaultGrammar, DefaultSemantics} {
		name, r, err := OpenDefault(file)
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		r.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, data, "embedded file %s is empty", name)
	}
	name, r, err := OpenDefault(DefaultGrammar)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "(embedded) grammar.txt", name)
	data, _ := io.ReadAll(r)
	assert.True(t, strings.Contains(string(data), "S  -> E S'"))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.config")
	defer teardown()
	//
	path := writeFile(t, "mathsym.toml", "variable = \"y\"\nstrict = true\nworkers = 2\n")
	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "y", conf.Variable)
	assert.True(t, conf.Strict)
	assert.Equal(t, 2, conf.Workers)
	assert.Equal(t, ">> ", conf.Prompt, "missing keys should keep defaults")
	assert.Equal(t, "", conf.Grammar)
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.config")
	defer teardown()
	//
	inputs := []string{
		"colour = \"blue\"\n",
		"workers = 0\n",
		"variable = \"\"\n",
		"variable = \n",
	}
	for _, input := range inputs {
		_, err := Load(writeFile(t, "mathsym.toml", input))
		var cerr *mathsym.ConfigError
		assert.True(t, errors.As(err, &cerr), "expected config error for %q, got %v", input, err)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestOpenDefaultMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.config")
	defer teardown()
	//
	_, _, err := OpenDefault("lexicon.txt")
	var cerr *mathsym.ConfigError
	assert.True(t, errors.As(err, &cerr))
}
