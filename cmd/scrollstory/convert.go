package main

import (
	"fmt"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/jsonl"
	"github.com/spf13/cobra"
)

// Converter rewrites a story file in another format.
type Converter struct {
	Loader scrollstory.StoryLoader
	Saver  scrollstory.StorySaver
}

// Run reads in and writes it to out.
func (c *Converter) Run(in, out string) error {
	story, err := c.Loader.Load(in)
	if err != nil {
		return fmt.Errorf("load story: %w", err)
	}
	if err := c.Saver.Save(out, story); err != nil {
		return fmt.Errorf("save story: %w", err)
	}
	return nil
}

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <story.yaml|story.jsonl> <out.jsonl>",
		Short: "Rewrite a story as JSONL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := loaderFor(args[0])
			if err != nil {
				return err
			}
			c := &Converter{Loader: loader, Saver: jsonl.NewSaver()}
			if err := c.Run(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}
