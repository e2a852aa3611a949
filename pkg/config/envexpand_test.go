package config

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("MEMOBASE_LLM_API_KEY", "sk-test-123")
	t.Setenv("MEMOBASE_EMBEDDING_API_KEY", "sk-embed-456")
	t.Setenv("DB_HOST", "pg.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single variable",
			input: `llm_api_key: "{{.MEMOBASE_LLM_API_KEY}}"`,
			want:  `llm_api_key: "sk-test-123"`,
		},
		{
			name:  "several variables in one document",
			input: "llm_api_key: {{.MEMOBASE_LLM_API_KEY}}\nembedding_api_key: {{.MEMOBASE_EMBEDDING_API_KEY}}",
			want:  "llm_api_key: sk-test-123\nembedding_api_key: sk-embed-456",
		},
		{
			name:  "variable embedded in a larger value",
			input: `llm_base_url: "https://{{.DB_HOST}}/v1"`,
			want:  `llm_base_url: "https://pg.internal/v1"`,
		},
		{
			name:  "unset variable renders empty",
			input: `llm_api_key: "{{.MEMOBASE_NO_SUCH_VAR}}"`,
			want:  `llm_api_key: ""`,
		},
		{
			name:  "dollar signs survive untouched",
			input: `llm_api_key: "p@ss$word$"`,
			want:  `llm_api_key: "p@ss$word$"`,
		},
		{
			name:  "regex-looking values survive untouched",
			input: `description: "^secret.*$ and ${SHELL_STYLE} stay literal"`,
			want:  `description: "^secret.*$ and ${SHELL_STYLE} stay literal"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// Template-free input must come back as the same slice, not a render of it.
func TestExpandEnvTemplateFreePassThrough(t *testing.T) {
	input := []byte("language: en\nllm_style: openai\nbest_llm_model: gpt-4o-mini\n")
	got := expandEnv(input)
	assert.Equal(t, input, got)
}

func TestExpandEnvMalformedTemplatePassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed action", `llm_api_key: "{{.MEMOBASE_LLM_API_KEY"`},
		{"bad function call", `llm_api_key: "{{bogus .X}}"`},
		{"stray close", `llm_api_key: "value}} {{.Y"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandEnv([]byte(tt.input))
			assert.Equal(t, tt.input, string(got),
				"malformed templates must pass through for the YAML parser to report")
		})
	}
}

func TestExpandEnvEmptyInput(t *testing.T) {
	assert.Empty(t, expandEnv(nil))
	assert.Empty(t, expandEnv([]byte("")))
}

// The loader calls expandEnv immediately before yaml.Unmarshal; expanded
// secrets must land in the parsed struct.
func TestExpandEnvFeedsYAML(t *testing.T) {
	t.Setenv("MEMOBASE_LLM_API_KEY", "sk-yaml-789")

	expanded := expandEnv([]byte("llm_style: openai\nllm_api_key: \"{{.MEMOBASE_LLM_API_KEY}}\"\n"))

	var parsed struct {
		LLMStyle  string `yaml:"llm_style"`
		LLMAPIKey string `yaml:"llm_api_key"`
	}
	require.NoError(t, yaml.Unmarshal(expanded, &parsed))
	assert.Equal(t, "openai", parsed.LLMStyle)
	assert.Equal(t, "sk-yaml-789", parsed.LLMAPIKey)
}

func TestExpandEnvConcurrent(t *testing.T) {
	t.Setenv("MEMOBASE_LLM_API_KEY", "sk-race")
	input := []byte(`llm_api_key: "{{.MEMOBASE_LLM_API_KEY}}"`)
	want := `llm_api_key: "sk-race"`

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = string(expandEnv(input))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, fmt.Sprintf("goroutine %d", i))
	}
}
