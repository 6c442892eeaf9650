package main

import (
	"context"
	"fmt"
	"io"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
)

// stdinArg reads the draft from standard input.
const stdinArg = "-"

// runText implements normalize, render and excerpt: format one draft and
// print a single part of the result to stdout.
func runText(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, positional, err := parseTextFlags(cmd, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: %s expects one file or \"-\"", ErrInvalidArgs, cmd)
	}

	d, err := readDraft(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	if flags.labelsOnly {
		fmt.Fprintln(env.Stdout, contentorch.NormalizeMarkdown(d.Content))
		return nil
	}

	logger := newLogger(env.Stderr, flags.common)
	res, err := contentorch.New(contentorch.WithLogger(logger)).Format(ctx, draftInput(d, logger))
	if err != nil {
		return err
	}

	switch cmd {
	case cmdNormalize:
		fmt.Fprintln(env.Stdout, res.Markdown)
	case cmdRender:
		fmt.Fprintln(env.Stdout, res.HTML)
	case cmdExcerpt:
		if res.Excerpt == "" {
			logger.Warn("no introduction section found")
			return nil
		}
		fmt.Fprintln(env.Stdout, res.Excerpt)
	}
	return nil
}

// readDraft loads a draft from path, or from r when path is "-".
func readDraft(path string, r io.Reader) (*draft.Draft, error) {
	if path != stdinArg {
		return draft.Load(path)
	}

	data, err := io.ReadAll(io.LimitReader(r, draft.MaxDraftSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(data) > draft.MaxDraftSize {
		return nil, fmt.Errorf("%w: stdin (max %d bytes)", draft.ErrDraftTooLarge, draft.MaxDraftSize)
	}
	return draft.Parse(stdinArg, data)
}
