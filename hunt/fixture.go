package hunt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// fixtureChar and friends mirror block.Char/Line/Block closely enough to
// round-trip through JSON for tests and the diagnostic CLI, which build
// block trees from small hand-written fixtures rather than a real PDF
// parser (out of scope — see SPEC_FULL.md).
type fixtureChar struct {
	Rune string  `json:"rune"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

type fixtureLine struct {
	Chars []fixtureChar `json:"chars"`
}

type fixtureBlock struct {
	Kind     string         `json:"kind"`
	Rect     *fixtureRect   `json:"rect,omitempty"`
	Lines    []fixtureLine  `json:"lines,omitempty"`
	Children []fixtureBlock `json:"children,omitempty"`
}

type fixtureRect struct {
	X0, Y0, X1, Y1 float64
}

// LoadFixture parses a JSON-encoded block tree from r and builds the
// corresponding *block.Block subtree.
func LoadFixture(r io.Reader) (*block.Block, error) {
	var fb fixtureBlock
	if err := json.NewDecoder(r).Decode(&fb); err != nil {
		return nil, fmt.Errorf("hunt: decoding fixture: %w", err)
	}
	return buildFixture(fb), nil
}

func buildFixture(fb fixtureBlock) *block.Block {
	switch fb.Kind {
	case "text":
		lines := make([]block.Line, 0, len(fb.Lines))
		for _, fl := range fb.Lines {
			lines = append(lines, buildLine(fl))
		}
		return block.NewTextBlock(lines)
	case "vector":
		return block.NewVectorBlock(rectOf(fb.Rect))
	default:
		b := block.NewStructuralBlock(block.TagNone)
		children := make([]*block.Block, 0, len(fb.Children))
		for _, fc := range fb.Children {
			children = append(children, buildFixture(fc))
		}
		b.ReplaceChildren(children)
		return b
	}
}

func buildLine(fl fixtureLine) block.Line {
	chars := make([]block.Char, 0, len(fl.Chars))
	r := geom.EmptyRect
	for _, fc := range fl.Chars {
		rect := geom.Rect{X0: fc.X0, Y0: fc.Y0, X1: fc.X1, Y1: fc.Y1}
		var rn rune
		for _, c := range fc.Rune {
			rn = c
			break
		}
		chars = append(chars, block.Char{Rune: rn, Rect: rect})
		r = r.Union(rect)
	}
	return block.Line{Chars: chars, Rect: r}
}

func rectOf(fr *fixtureRect) geom.Rect {
	if fr == nil {
		return geom.EmptyRect
	}
	return geom.Rect{X0: fr.X0, Y0: fr.Y0, X1: fr.X1, Y1: fr.Y1}
}
