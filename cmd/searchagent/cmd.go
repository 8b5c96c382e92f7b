package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mokiat/gog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/verityhq/searchagent/config"
	"github.com/verityhq/searchagent/engine"
	"github.com/verityhq/searchagent/entity"
	"github.com/verityhq/searchagent/exa"
	"github.com/verityhq/searchagent/internal/mylog"
	"github.com/verityhq/searchagent/tool"
)

func newCmd() *cobra.Command {
	var modelName string

	cmd := &cobra.Command{
		Use:   "searchagent [agent-file]",
		Short: "Interactive search agent backed by an LLM and the Exa search API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}

			logConfig := config.NewLogConfig()
			logger := mylog.NewLogger(logConfig.LogLevel, logConfig.LogHandler)

			var (
				agent entity.Agent
				err   error
			)
			if len(args) == 1 {
				if agent, err = config.LoadAgentFromFile(args[0]); err != nil {
					return err
				}
			} else {
				agent = config.DefaultAgent()
			}
			if modelName != "" {
				agent.ModelName = modelName
			}

			exaConfig := config.NewExaConfig()
			if err := exaConfig.Validate(); err != nil {
				return err
			}
			searcher := exa.NewClient(exaConfig.APIKey, exaConfig.APIUrl)

			toolManager, err := tool.NewToolManager(agent.Skills, logger, searcher, config.NewFireCrawlConfig())
			if err != nil {
				return errors.Wrapf(err, "failed to build tool manager")
			}

			model, err := engine.NewModel(agent.ModelName, logger)
			if err != nil {
				return err
			}

			session := engine.NewSession(&agent, model, toolManager, logger)

			logger.Info("agent ready",
				"name", agent.Name,
				"model", model.Name(),
				"tools", gog.Map(toolManager.GetTools(), func(t tool.Tool) string {
					return t.Definition().Name
				}),
			)

			if agent.Greeting != "" {
				fmt.Fprintln(cmd.OutOrStdout(), agent.Greeting)
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), "What do you want to search for? ")

				line, err := reader.ReadString('\n')
				if err == io.EOF && line == "" {
					fmt.Fprintln(cmd.OutOrStdout())
					return nil
				} else if err != nil && err != io.EOF {
					return errors.Wrapf(err, "failed to read input")
				}

				input := strings.TrimSpace(line)
				if input == "" {
					continue
				}
				if input == "exit" || input == "quit" {
					return nil
				}

				resp, turnErr := session.Turn(cmd.Context(), input)
				if turnErr != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "An error occurred: %v\n", turnErr)
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			}
		},
	}

	cmd.Flags().StringVarP(&modelName, "model", "m", "", "override the agent's model, e.g. anthropic/claude-sonnet-4-20250514")

	return cmd
}
