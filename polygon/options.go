// SPDX-License-Identifier: MIT

package polygon

import "go.uber.org/zap"

// AnyBorder selects every edge in Bordering regardless of its tag.
// Any negative value behaves the same way.
const AnyBorder = -1

// Option configures New. Options are applied in order; later ones win.
type Option func(*options)

// options holds the resolved configuration; unexported so New is the only
// way to build a Polygon.
type options struct {
	borderTypes []int // nil when absent
	logger      *zap.Logger
}

// WithBorderTypes attaches one tag per edge: tags[i] belongs to the edge
// starting at vertex i. The count must equal the vertex count; New checks.
// The slice is copied.
func WithBorderTypes(tags ...int) Option {
	return func(o *options) {
		if tags == nil {
			o.borderTypes = nil
			return
		}
		o.borderTypes = append(make([]int, 0, len(tags)), tags...)
	}
}

// WithLogger routes construction diagnostics to l at debug level.
// A nil logger is replaced by zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
