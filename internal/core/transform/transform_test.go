package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"kilometers.ai/mcpspaces/internal/core/catalogue"
	"kilometers.ai/mcpspaces/internal/core/testfixtures"
)

// TestRender_ByTransport tests fragment shapes for each transport
func TestRender_ByTransport(t *testing.T) {
	tests := []struct {
		name     string
		entry    catalogue.Entry
		expected Fragment
	}{
		{
			name:     "HTTP_ShouldRenderTypeAndURL",
			entry:    testfixtures.CreateHTTPEntry("example", "https://example.hf.space/mcp"),
			expected: URLFragment{Type: "http", URL: "https://example.hf.space/mcp"},
		},
		{
			name:     "WebSocket_ShouldRenderTypeAndURL",
			entry:    testfixtures.NewEntryBuilder().AsWebSocket("wss://example.hf.space/ws").Build(),
			expected: URLFragment{Type: "ws", URL: "wss://example.hf.space/ws"},
		},
		{
			name:  "Command_ShouldSplitOnWhitespace",
			entry: testfixtures.CreateCommandEntry("everything", "npx -y @modelcontextprotocol/server-everything stdio"),
			expected: CommandFragment{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-everything", "stdio"},
			},
		},
		{
			name:     "CommandWithoutArgs_ShouldHaveEmptyArgs",
			entry:    testfixtures.CreateCommandEntry("solo", "  server\t"),
			expected: CommandFragment{Command: "server", Args: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragment, err := Render(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fragment)
		})
	}
}

// TestRender_FragmentJSON tests the serialized fragment shapes
func TestRender_FragmentJSON(t *testing.T) {
	httpFragment, err := Render(testfixtures.CreateHTTPEntry("example", "https://example.hf.space/mcp"))
	require.NoError(t, err)
	data, err := json.Marshal(httpFragment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "http", "url": "https://example.hf.space/mcp"}`, string(data))

	cmdFragment, err := Render(testfixtures.CreateCommandEntry("solo", "server"))
	require.NoError(t, err)
	data, err = json.Marshal(cmdFragment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"command": "server", "args": []}`, string(data), "Args must never serialize as null")
}

// TestRender_UnsupportedTransport_ShouldFail tests rejection of unknown transports
func TestRender_UnsupportedTransport_ShouldFail(t *testing.T) {
	entry := testfixtures.NewEntryBuilder().
		WithID("owner/legacy").
		WithTransport(catalogue.Transport("sse")).
		Build()

	fragment, err := Render(entry)
	require.Error(t, err)
	assert.Nil(t, fragment)
	assert.True(t, errors.Is(err, ErrUnsupportedTransport))

	var unsupported *UnsupportedTransportError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "owner/legacy", unsupported.EntryID)
	assert.Equal(t, "sse", unsupported.Transport)
	assert.Equal(t, "unsupported transport 'sse' for owner/legacy", err.Error())
}

// TestRender_EmptyCommand_ShouldFail tests command entries without a command line
func TestRender_EmptyCommand_ShouldFail(t *testing.T) {
	entry := testfixtures.NewEntryBuilder().WithID("owner/blank").AsCommand("   ").Build()

	_, err := Render(entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCommand))
	assert.Contains(t, err.Error(), "owner/blank")
}

// TestBuild_DefaultCatalogue tests merging the full built-in catalogue
func TestBuild_DefaultCatalogue(t *testing.T) {
	cat := catalogue.Default()

	set, err := Build(cat.Entries())
	require.NoError(t, err)
	assert.Equal(t, cat.Len(), set.Len())
	assert.Equal(t, []string{"everything", "llama-3-8b-chat", "stable-diffusion", "phi-3-vision"}, set.Names())

	fragment, ok := set.Get("stable-diffusion")
	require.True(t, ok)
	assert.Equal(t, URLFragment{Type: "http", URL: "https://stabilityai-stable-diffusion.hf.space/mcp"}, fragment)
}

// TestBuild_DuplicateDisplayName_LastWriteWins tests merge semantics for repeated keys
func TestBuild_DuplicateDisplayName_LastWriteWins(t *testing.T) {
	entries := []catalogue.Entry{
		testfixtures.CreateHTTPEntry("dup", "https://first"),
		testfixtures.CreateHTTPEntry("other", "https://other"),
		testfixtures.CreateCommandEntry("dup", "second --flag"),
	}

	set, err := Build(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"dup", "other"}, set.Names(), "Overwritten key keeps its first position")

	fragment, _ := set.Get("dup")
	assert.Equal(t, CommandFragment{Command: "second", Args: []string{"--flag"}}, fragment)
}

// TestBuild_StopsOnFirstError tests that one bad entry aborts the whole merge
func TestBuild_StopsOnFirstError(t *testing.T) {
	entries := []catalogue.Entry{
		testfixtures.CreateHTTPEntry("ok", "https://ok"),
		testfixtures.NewEntryBuilder().WithTransport(catalogue.Transport("grpc")).Build(),
	}

	set, err := Build(entries)
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, ErrUnsupportedTransport))
}

// TestEncodeDocument_Format tests the on-disk layout
func TestEncodeDocument_Format(t *testing.T) {
	set := NewServerSet()
	set.Set("zeta", URLFragment{Type: "http", URL: "https://zeta.hf.space/mcp?a=1&b=2"})
	set.Set("alpha", CommandFragment{Command: "npx", Args: []string{"-y", "pkg"}})

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, set))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"servers\": {\n    \"zeta\": {"), "Unexpected layout:\n%s", out)
	assert.Less(t, strings.Index(out, `"zeta"`), strings.Index(out, `"alpha"`), "Keys must keep insertion order")
	assert.True(t, strings.HasSuffix(out, "}\n"))

	var generic map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &generic))
	assert.Equal(t, "https://zeta.hf.space/mcp?a=1&b=2", generic["servers"]["zeta"]["url"])
}

// TestEncodeDocument_NoHTMLEscaping tests that '&', '<' and '>' are written literally
func TestEncodeDocument_NoHTMLEscaping(t *testing.T) {
	set := NewServerSet()
	set.Set("a<b", URLFragment{Type: "http", URL: "https://x/mcp?a=1&b=2"})
	set.Set("cmd", CommandFragment{Command: "run", Args: []string{"--filter=<x>&y"}})

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, set))

	expected := `{
  "servers": {
    "a<b": {
      "type": "http",
      "url": "https://x/mcp?a=1&b=2"
    },
    "cmd": {
      "command": "run",
      "args": [
        "--filter=<x>&y"
      ]
    }
  }
}
`
	assert.Equal(t, expected, buf.String())
	assert.NotContains(t, buf.String(), `\u00`)

	decoded, err := DecodeDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"a<b", "cmd"}, decoded.Names())
}

// TestEncodeDocument_Empty tests an empty server set
func TestEncodeDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, NewServerSet()))
	assert.JSONEq(t, `{"servers": {}}`, buf.String())
}

// TestDecodeDocument_RejectsUnknownShapes tests parse errors
func TestDecodeDocument_RejectsUnknownShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "NotJSON", input: `{"servers":`},
		{name: "UnknownType", input: `{"servers": {"x": {"type": "sse", "url": "https://x"}}}`},
		{name: "NoCommandOrType", input: `{"servers": {"x": {"url": "https://x"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

// TestDecodeDocument_NullServers tests a document without servers
func TestDecodeDocument_NullServers(t *testing.T) {
	set, err := DecodeDocument(strings.NewReader(`{"servers": null}`))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

// Property-based tests using rapid

// TestBuild_PropertyBased_KeysFollowRequest tests that keys equal the deduplicated request in order
func TestBuild_PropertyBased_KeysFollowRequest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cat := testfixtures.CreateCatalogue(rapid.IntRange(1, 10).Draw(t, "size"))
		names := rapid.SliceOfN(rapid.SampledFrom(cat.Names()), 1, 25).Draw(t, "names")

		selected, err := cat.Select(names)
		require.NoError(t, err)
		set, err := Build(selected)
		require.NoError(t, err)

		var want []string
		seen := map[string]bool{}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				want = append(want, n)
			}
		}
		assert.Equal(t, want, set.Names())
	})
}

// TestRender_PropertyBased_CommandSplit tests that rendering a command loses no words
func TestRender_PropertyBased_CommandSplit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9@/._=-]{1,10}`), 1, 8).Draw(t, "words")
		sep := rapid.SampledFrom([]string{" ", "  ", "\t", " \t "}).Draw(t, "sep")

		fragment, err := Render(testfixtures.CreateCommandEntry("cmd", sep+strings.Join(words, sep)+sep))
		require.NoError(t, err)

		cmd, ok := fragment.(CommandFragment)
		require.True(t, ok)
		assert.Equal(t, words, append([]string{cmd.Command}, cmd.Args...))
	})
}

// TestDocument_PropertyBased_RoundTrip tests that encode then decode reproduces the set
func TestDocument_PropertyBased_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := rapid.SliceOfN(testfixtures.EntryGen(), 0, 10).Draw(t, "entries")

		set, err := Build(entries)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, EncodeDocument(&buf, set))

		decoded, err := DecodeDocument(&buf)
		require.NoError(t, err)

		assert.Equal(t, set.Names(), decoded.Names())
		set.Each(func(name string, fragment Fragment) {
			got, ok := decoded.Get(name)
			assert.True(t, ok, "missing %s", name)
			assert.Equal(t, fragment, got)
		})
	})
}
