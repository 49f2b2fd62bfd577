package main

import (
	"fmt"
	"io"
	"reversi/game"
	"reversi/gamemaster"
	"strings"

	"github.com/muesli/termenv"
)

// boardRenderer draws boards on a terminal, colouring discs and highlighting the last placement.
type boardRenderer struct {
	out *termenv.Output
}

func newBoardRenderer(w io.Writer) *boardRenderer {
	return &boardRenderer{out: termenv.NewOutput(w)}
}

func (r *boardRenderer) Render(u gamemaster.Update) {
	if u.Pass {
		fmt.Fprintf(r.out, "%d. %s passes\n", u.Turn, u.Player)
	} else {
		fmt.Fprintf(r.out, "%d. %s plays %s\n", u.Turn, u.Player, u.Position)
	}
	fmt.Fprint(r.out, r.board(u.Board, u.Position, !u.Pass))
}

func (r *boardRenderer) board(b game.Board, last game.Position, highlight bool) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < game.Size; col++ {
			pos := game.Position{Row: row, Col: col}
			sb.WriteByte(' ')
			sb.WriteString(r.cell(b.At(pos), highlight && pos == last))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "black %d  white %d\n\n", b.Count(game.Black), b.Count(game.White))
	return sb.String()
}

func (r *boardRenderer) cell(c game.Color, last bool) string {
	style := r.out.String(string(c.Symbol()))
	switch c {
	case game.Black:
		style = style.Foreground(r.out.Color("1")).Bold()
	case game.White:
		style = style.Foreground(r.out.Color("4")).Bold()
	default:
		style = style.Faint()
	}
	if last {
		style = style.Underline()
	}
	return style.String()
}
