// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

func iiCommandAction(ctx context.Context, cmd *cli.Command) error {
	// iiCommandAction is the action handler for the "ii" subcommand. It
	// loads the project's issues once and launches an interactive console
	// to query them without round-tripping to the server.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "ii") {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	issues, err := fetchAllIssues(ctx, cmd, client, project, nil)
	if err != nil {
		return err
	}

	return runIiInteractiveConsole(issues)
}

// iiModel represents the Bubble Tea model for the ii console.
type iiModel struct {
	input          textinput.Model
	history        []string // Full history for navigation (includes file history)
	sessionHistory []string // Only commands from this session (matches with outputs)
	histIndex      int
	output         []string
	issues         []*tracker.Issue
}

func initialIiModel(issues []*tracker.Issue) iiModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	history := loadIiHistory(getIiHistoryFile())

	var output []string
	output = append(output, fmt.Sprintf("Interactive issue console loaded. %d issues found.", len(issues)))
	output = append(output, "Type 'help' for syntax, 'exit' or Ctrl+C to quit.")

	return iiModel{
		input:          ti,
		history:        history,
		sessionHistory: []string{},
		histIndex:      -1,
		output:         output,
		issues:         issues,
	}
}

func (m iiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m iiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := m.input.Value()
			if strings.TrimSpace(entry) != "" {
				if entry == "exit" || entry == "quit" {
					return m, tea.Quit
				}
				if entry == "help" {
					m.history = append(m.history, entry)
					m.sessionHistory = append(m.sessionHistory, entry)
					m.histIndex = -1
					m.output = append(m.output, getIiHelp())
					saveIiHistory(getIiHistoryFile(), m.history)
					m.input.SetValue("")
					return m, nil
				}

				result := processIssueQuery(m.issues, entry)

				m.history = append(m.history, entry)
				m.sessionHistory = append(m.sessionHistory, entry)
				m.histIndex = -1
				m.output = append(m.output, result)
				saveIiHistory(getIiHistoryFile(), m.history)
			}
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m iiModel) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#16A394"))

	var lines []string

	// Add the initial welcome messages first
	if len(m.output) >= 2 {
		lines = append(lines, m.output[0])
		lines = append(lines, m.output[1])
	}

	// Add each command from THIS SESSION with its corresponding output
	for i := 0; i < len(m.sessionHistory); i++ {
		lines = append(lines, promptStyle.Render("> ")+m.sessionHistory[i])

		// Account for the 2 initial messages
		if (i + 2) < len(m.output) {
			lines = append(lines, m.output[i+2])
		}
	}

	lines = append(lines, promptStyle.Render("> ")+m.input.View())

	return strings.Join(lines, "\n")
}

// getIiHelp returns the help text as a string
func getIiHelp() string {
	return `Query syntax:
  Queries are match expressions run against the loaded issues.

  1. Issue queries (bare expressions)
     login                            - Issues whose title contains "login"
     42                               - Issue number 42
     login|signup                     - Either term
     !wontfix                         - Issues whose title does not contain "wontfix"
     none                             - Always empty (issues always exist)

  2. Relationship queries (FIELD:EXPR or FIELD=EXPR)
     status:done                      - Issues in a status containing "done"
     release:1.2                      - Issues targeted at release 1.2
     assignee:none                    - Unassigned issues
     parent:!none                     - Issues that have a parent
     assignee:kim|lee                 - Assigned to either member

  Special queries:
     count                            - Number of loaded issues

  Navigation:
     ↑/↓ arrows                       - Navigate command history
     Ctrl+C                           - Exit

  Examples:
     status:progress                  - Everything in flight
     assignee:none|status:blocked     - Unassigned or blocked`
}

// getIiHistoryFile returns the path to the ii history file
func getIiHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tixctl_ii_history"
	}
	return filepath.Join(homeDir, ".tixctl_ii_history")
}

func loadIiHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history // Return empty history if file doesn't exist
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

func runIiInteractiveConsole(issues []*tracker.Issue) error {
	p := tea.NewProgram(initialIiModel(issues))
	_, err := p.Run()
	return err
}

func saveIiHistory(filename string, history []string) {
	// Keep only the last 1000 commands
	maxHistory := 1000
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		return // Silently fail if we can't save history
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := start; i < len(history); i++ {
		fmt.Fprintln(writer, history[i])
	}
	writer.Flush()
}

// iiCommandBuilder constructs the cli.Command for "ii" and wires up metadata,
// flags, and the action handler.
func iiCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ii",
		Hidden:    true,
		Usage:     "interactive issue console",
		UsageText: "tixctl ii [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("ii", meta.Config.Source),
			NewProjectFlag("ii", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: iiCommandAction,
	}
}
