package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"jungle/internal/config"
	"jungle/internal/session"
)

var errQuit = errors.New("quit")

// Controller runs shell commands against the games of one session manager.
// Commands only write to out, so the controller works without a terminal.
type Controller struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config

	games   *session.Manager
	current *session.Game
}

func NewController(cfg *config.Config, out io.Writer) *Controller {
	return &Controller{
		out:   out,
		cfg:   cfg,
		games: session.NewManager(),
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Loop reads commands until exit, EOF or an interrupt on an empty line.
func (c *Controller) Loop() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          c.cfg.Prompt,
		HistoryFile:     c.cfg.HistoryFile,
		AutoComplete:    completer,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return errors.Wrap(err, "init readline")
	}
	c.l = l
	c.out = l.Stdout()
	defer l.Close()

	c.showMessage("Dou Shou Qi. Type help for commands.")
	if err := c.Execute("new"); err != nil {
		return err
	}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		err = c.Execute(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			c.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop")
	return nil
}

// Execute runs one command line. It returns errQuit for exit.
func (c *Controller) Execute(line string) error {
	fields, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return errors.Wrap(err, "parse command")
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return errors.Errorf("unknown command %q, try help", fields[0])
	}
	log.Debug().Str("cmd", fields[0]).Strs("args", fields[1:]).Msg("shell-command")
	return cmd.run(c, fields[1:])
}

func (c *Controller) showMessage(msg string) {
	io.WriteString(c.out, msg)
	io.WriteString(c.out, "\n")
}

func (c *Controller) showError(err error) {
	c.showMessage("Error: " + err.Error())
}

func (c *Controller) showf(format string, args ...any) {
	c.showMessage(fmt.Sprintf(format, args...))
}

// cue rings the bell on captures, wins and rejected moves. Selecting a piece
// and plain moves stay silent.
func (c *Controller) cue(o session.Outcome) {
	if !c.cfg.Bell {
		return
	}
	switch o {
	case session.OutcomeCaptured, session.OutcomeWon, session.OutcomeRejected:
		io.WriteString(c.out, "\a")
	}
}

func (c *Controller) game() (*session.Game, error) {
	if c.current == nil {
		return nil, errors.New("no game selected, use new or use <id>")
	}
	return c.current, nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("new"),
	readline.PcItem("games"),
	readline.PcItem("use"),
	readline.PcItem("show"),
	readline.PcItem("debug"),
	readline.PcItem("fen"),
	readline.PcItem("load"),
	readline.PcItem("move"),
	readline.PcItem("click"),
	readline.PcItem("moves"),
	readline.PcItem("threats"),
	readline.PcItem("turn"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)
