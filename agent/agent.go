// Package agent implements a Gemini chat commenting on a simulated portfolio.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Asker answers a message within a conversation.
type Asker interface {
	Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error)
}

// Agent is the REPL session between the user and an Asker.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	asker Asker
	// Print writes an answer, as plain text by default.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading the user's input from r and writing answers to w.
func New(w io.Writer, r io.Reader, asker Asker) *Agent {
	return &Agent{
		w:     w,
		r:     bufio.NewReader(r),
		asker: asker,
		Print: func(w io.Writer, markdown string) { fmt.Fprintln(w, markdown) },
	}
}

const prompt = "advise> "

// Run starts the interactive session. The prompts are sent first, as if the
// user typed them. It returns when the user types "bye" or on end of input.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to pss advise. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				if err == io.EOF {
					fmt.Fprintln(a.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(line)
		}

		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.asker.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, text(content))
	}
}

// text concatenates the text parts of content.
func text(content *genai.Content) string {
	var b strings.Builder
	for _, part := range content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
