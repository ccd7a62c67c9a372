package agent

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/etnz/stocksim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// echo answers every question with its upper case.
type echo struct{ asked []string }

func (e *echo) Ask(_ context.Context, parts ...*genai.Part) (*genai.Content, error) {
	e.asked = append(e.asked, parts[0].Text)
	return &genai.Content{Parts: []*genai.Part{{Text: strings.ToUpper(parts[0].Text)}}}, nil
}

type failing struct{}

func (failing) Ask(context.Context, ...*genai.Part) (*genai.Content, error) {
	return nil, errors.New("quota exceeded")
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	e := &echo{}
	a := New(&out, strings.NewReader("how risky?\n\nbye\nnever read\n"), e)

	require.NoError(t, a.Run(context.Background(), "comment my portfolio", "  "))

	assert.Equal(t, []string{"comment my portfolio", "how risky?"}, e.asked)
	assert.Contains(t, out.String(), "COMMENT MY PORTFOLIO")
	assert.Contains(t, out.String(), "HOW RISKY?")
	assert.NotContains(t, out.String(), "NEVER READ")
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	e := &echo{}
	a := New(&out, strings.NewReader("last question"), e)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"last question"}, e.asked)
}

func TestRunError(t *testing.T) {
	a := New(&bytes.Buffer{}, strings.NewReader("hello\n"), failing{})
	assert.ErrorContains(t, a.Run(context.Background()), "quota exceeded")
}

func TestRunPrint(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader("hi\n"), &echo{})
	a.Print = func(w io.Writer, markdown string) { w.Write([]byte("<" + markdown + ">")) }

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "<HI>")
}

func TestLibrary(t *testing.T) {
	p := stocksim.NewPortfolio()
	require.NoError(t, p.Deposit(1234))
	advisor := NewAdvisor("model", p, nil)

	tests := []struct {
		function string
		key      string
		want     string
	}{
		{"Portfolio", "output", "$1,234.00"},
		{"Outcome", "output", "Nothing was simulated."},
		{"RiskTiers", "output", "+/- 50%"},
		{"Unknown", "error", "unknown function Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			resp := advisor.Library(context.Background(), &genai.FunctionCall{ID: "1", Name: tt.function})
			require.NotNil(t, resp)
			assert.Equal(t, "1", resp.ID)
			assert.Equal(t, tt.function, resp.Name)
			assert.Contains(t, resp.Response[tt.key], tt.want)
		})
	}
}

func TestAdvisorDeclarations(t *testing.T) {
	advisor := NewAdvisor("gemini-2.5-flash", stocksim.NewPortfolio(), nil)
	assert.Equal(t, "gemini-2.5-flash", advisor.ModelName)

	require.Len(t, advisor.Config.Tools, 1)
	var names []string
	for _, d := range advisor.Config.Tools[0].FunctionDeclarations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Portfolio", "Outcome", "RiskTiers"}, names)
}

func TestAskNotStarted(t *testing.T) {
	_, err := NewAdvisor("model", stocksim.NewPortfolio(), nil).Ask(context.Background(), &genai.Part{Text: "hi"})
	assert.ErrorContains(t, err, "not started")
}
