package shell

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"jungle/internal/jungle"
	"jungle/internal/session"
)

type command struct {
	usage string
	help  string
	run   func(c *Controller, args []string) error
}

// commands is filled in init: help reads the table it belongs to.
var commands map[string]command

func init() {
	commands = map[string]command{
		"new":     {"new", "start a game from the standard position", (*Controller).newGame},
		"games":   {"games", "list games", (*Controller).listGames},
		"use":     {"use <id>", "switch to a game by id or id prefix", (*Controller).useGame},
		"show":    {"show", "draw the board", (*Controller).show},
		"debug":   {"debug", "print terrain|piece grid and hash", (*Controller).debugDump},
		"fen":     {"fen", "print the position notation", (*Controller).fen},
		"load":    {"load \"<notation>\"", "start a game from position notation", (*Controller).load},
		"move":    {"move <r> <c> <r> <c>", "move a piece", (*Controller).move},
		"click":   {"click <r> <c>", "select a piece, then click its destination", (*Controller).click},
		"moves":   {"moves [<r> <c>]", "list legal moves for the side to move or one piece", (*Controller).moves},
		"threats": {"threats", "list the side to move's pieces under attack", (*Controller).threats},
		"turn":    {"turn", "show whose turn it is", (*Controller).turn},
		"help":    {"help", "show this help", (*Controller).help},
		"exit":    {"exit", "leave the shell", (*Controller).exit},
		"quit":    {"quit", "leave the shell", (*Controller).exit},
	}
}

var helpOrder = []string{
	"new", "games", "use", "show", "debug", "fen", "load",
	"move", "click", "moves", "threats", "turn", "help", "exit",
}

func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, errors.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

func (c *Controller) newGame(args []string) error {
	c.current = c.games.NewGame()
	c.showf("game %s", c.current.ID)
	return c.show(nil)
}

func (c *Controller) load(args []string) error {
	if len(args) == 0 {
		return errors.New("load needs position notation")
	}
	b, err := jungle.DecodeBoard(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.current = c.games.Add(b)
	c.showf("game %s", c.current.ID)
	return c.show(nil)
}

func (c *Controller) listGames(args []string) error {
	for _, g := range c.games.List() {
		marker := " "
		if g == c.current {
			marker = "*"
		}
		c.showf("%s %s %-9s %s", marker, g.ID, g.Status(), g.Board.Encode())
	}
	return nil
}

func (c *Controller) useGame(args []string) error {
	if len(args) != 1 {
		return errors.New("use needs a game id")
	}
	g, err := c.games.Find(args[0])
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	c.current = g
	return c.show(nil)
}

func (c *Controller) show(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	c.showMessage(strings.TrimSuffix(g.Board.Diagram(), "\n"))
	if sel, ok := g.Selected(); ok {
		c.showf("selected %s", sel)
	}
	if st := g.Status(); st != session.StatusOngoing {
		c.showf("game over: %s", st)
	}
	return nil
}

func (c *Controller) debugDump(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	c.showMessage(strings.TrimSuffix(g.Board.String(), "\n"))
	return nil
}

func (c *Controller) fen(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	c.showMessage(g.Board.Encode())
	return nil
}

func (c *Controller) move(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	v, err := parseInts(args, 4)
	if err != nil {
		return err
	}
	out, err := g.Play(jungle.Square{Row: v[0], Col: v[1]}, jungle.Square{Row: v[2], Col: v[3]})
	return c.report(g, out, err)
}

func (c *Controller) click(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	v, err := parseInts(args, 2)
	if err != nil {
		return err
	}
	out, err := g.Click(v[0], v[1])
	return c.report(g, out, err)
}

func (c *Controller) report(g *session.Game, out session.Outcome, err error) error {
	c.cue(out)
	if err != nil {
		return err
	}
	switch out {
	case session.OutcomeNone:
		c.showMessage("nothing selected")
		return nil
	case session.OutcomeSelected:
		sel, _ := g.Selected()
		c.showf("selected %s", sel)
		return nil
	}
	c.showMessage(out.String())
	return c.show(nil)
}

func (c *Controller) moves(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	var ms []jungle.Move
	switch len(args) {
	case 0:
		ms = g.Board.LegalMoves(g.Board.Turn())
	case 2:
		v, err := parseInts(args, 2)
		if err != nil {
			return err
		}
		ms = g.Board.LegalMovesFrom(v[0], v[1])
	default:
		return errors.New("moves takes no arguments or <r> <c>")
	}
	if len(ms) == 0 {
		c.showMessage("no legal moves")
		return nil
	}
	c.showMessage(strings.Join(lo.Map(ms, func(m jungle.Move, _ int) string { return m.String() }), " "))
	return nil
}

func (c *Controller) threats(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	sqs := g.Board.Threatened(g.Board.Turn())
	if len(sqs) == 0 {
		c.showMessage("no pieces under attack")
		return nil
	}
	c.showMessage(strings.Join(lo.Map(sqs, func(s jungle.Square, _ int) string {
		return s.String() + " " + g.Board.PieceAt(s.Row, s.Col).String()
	}), " "))
	return nil
}

func (c *Controller) turn(args []string) error {
	g, err := c.game()
	if err != nil {
		return err
	}
	c.showf("%s to move (red %d, black %d)", g.Board.Turn(), g.Board.CountRed(), g.Board.CountBlack())
	return nil
}

func (c *Controller) help(args []string) error {
	for _, name := range helpOrder {
		cmd := commands[name]
		c.showf("  %-24s %s", cmd.usage, cmd.help)
	}
	return nil
}

func (c *Controller) exit(args []string) error { return errQuit }
