package mathspan

import "fmt"

// Strategy names the math handling strategy chosen in site configuration.
type Strategy string

const (
	// StrategyProtect swaps spans for placeholders around markdown
	// conversion and restores the raw delimiters afterwards.
	StrategyProtect Strategy = "protect"
	// StrategyEmbed renders spans to markup before markdown conversion.
	StrategyEmbed Strategy = "embed"
)

// RestoreFunc post-processes rendered HTML after markdown conversion,
// replacing placeholder tokens with the strategy's final markup.
type RestoreFunc func(html string) string

// Transformer is the single capability both strategies implement: transform
// math spans in markdown body text, returning the transformed text and the
// post-conversion restore step.
type Transformer interface {
	Transform(body string) (string, RestoreFunc)
}

// New returns the Transformer for a configured strategy. An empty strategy
// defaults to protect-and-restore; an unknown one is an error so config
// problems surface at load time rather than mid-build.
func New(s Strategy, render Renderer) (Transformer, error) {
	switch s {
	case StrategyProtect, "":
		return Protector{}, nil
	case StrategyEmbed:
		if render == nil {
			render = MathJaxMarkup
		}
		return Embedder{Render: render}, nil
	default:
		return nil, fmt.Errorf("unknown math strategy %q", s)
	}
}
