// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/meta"
)

const bashCompletionScript = `# bash completion for tixctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tixctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "assign cmp ii iq login mq new pq rq show stq up completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --local -l --output -o --sort -s --titles -t --tldr"
  local scoped="--host --project -p --token"

    case "$cmd" in
    pq)
      local opts="$common --schema --host --token"
            ;;
        iq)
      local opts="$common --schema $scoped --limit --status --release --parent --assignee --search"
            ;;
        rq|mq|stq)
      local opts="$common --schema $scoped"
            ;;
        show)
      local opts="$common --schema $scoped"
            ;;
        new)
      local opts="--tldr $scoped --title --desc --status --release --assignee --parent"
            ;;
        assign)
      local opts="--tldr $scoped"
            ;;
        up)
      local opts="--tldr $scoped --title --desc --edit --status --release --parent"
            ;;
        cmp)
      local opts="--tldr $scoped --diff_filter"
            ;;
        ii)
      local opts="--tldr $scoped"
            ;;
        login)
      local opts="--tldr --host --token --encrypt --forget"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _tixctl tixctl
`

const zshCompletionScript = `#compdef tixctl

_tixctl() {
  local -a cmds
  cmds=(
    'assign:assign an issue to a member'
    'cmp:compare two issues'
    'ii:interactive issue console'
    'iq:issue query'
    'login:store an API token for a host'
    'mq:member query'
    'new:create an issue'
    'pq:project query'
    'rq:release query'
    'show:show one issue'
    'stq:status query'
    'up:update an issue'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[render timestamps in local time]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a scoped
  scoped=(
  '--host[host]'
  '(-p --project)'{-p,--project}'[project]'
  '--token[API token]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tixctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    pq)
      _arguments -C \
        $common \
        '--schema[dump schema]' \
        '--host[host]' \
        '--token[API token]'
      ;;
    iq)
      _arguments -C \
        $common \
        $scoped \
        '--schema[dump schema]' \
        '--limit[limit issues returned]:limit' \
        '--status[status match expression]' \
        '--release[release match expression]' \
        '--parent[parent match expression]' \
        '--assignee[assignee match expression]' \
        '--search[server-side search text]'
      ;;
    rq|mq|stq)
      _arguments -C \
        $common \
        $scoped \
        '--schema[dump schema]'
      ;;
    show)
      _arguments -C \
        $common \
        $scoped \
        '--schema[dump schema]' \
        '1:issue number'
      ;;
    new)
      _arguments -C \
        $scoped \
        '--title[issue title]' \
        '--desc[issue description]' \
        '--status[status match expression]' \
        '--release[release match expression]' \
        '--assignee[assignee match expression]' \
        '--parent[parent issue number or match expression]'
      ;;
    assign)
      _arguments -C \
        $scoped \
        '1:issue number' \
        '2:assignee match expression'
      ;;
    up)
      _arguments -C \
        $scoped \
        '--title[replacement title]' \
        '--desc[replacement description]' \
        '--edit[edit the current description in your editor]' \
        '--status[status match expression]' \
        '--release[release match expression]' \
        '--parent[parent issue number or match expression]' \
        '1:issue number'
      ;;
    cmp)
      _arguments -C \
        $scoped \
        '--diff_filter[keys to exclude from the diff]' \
        '1:issue number' \
        '2:issue number'
      ;;
    ii)
      _arguments -C $scoped
      ;;
    login)
      _arguments -C \
        '--host[host]' \
        '--token[API token]' \
        '--encrypt[encrypt the stored token]' \
        '--forget[remove the stored credential]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tixctl tixctl tixctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: tixctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tixctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
