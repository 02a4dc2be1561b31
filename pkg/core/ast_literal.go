package core

import (
	"github.com/shopspring/decimal"
)

// ---------- Literal Types ----------

// StringLiteral is a character string constant, already unquoted.
type StringLiteral struct {
	BaseNode
	Value string
}

func (*StringLiteral) expressionNode() {}
func (*StringLiteral) literalNode()    {}

// Children implements Node.
func (*StringLiteral) Children() []Node { return nil }

func (s *StringLiteral) equal(other Node) bool {
	o, ok := other.(*StringLiteral)
	return ok && s.Value == o.Value
}

func (s *StringLiteral) hash(h *hasher) {
	h.tag("StringLiteral")
	h.str(s.Value)
}

// LongLiteral is an exact integer constant that fits in 64 bits.
type LongLiteral struct {
	BaseNode
	Value int64
}

func (*LongLiteral) expressionNode() {}
func (*LongLiteral) literalNode()    {}

// Children implements Node.
func (*LongLiteral) Children() []Node { return nil }

func (l *LongLiteral) equal(other Node) bool {
	o, ok := other.(*LongLiteral)
	return ok && l.Value == o.Value
}

func (l *LongLiteral) hash(h *hasher) {
	h.tag("LongLiteral")
	h.uint(uint64(l.Value))
}

// DoubleLiteral is an approximate numeric constant.
type DoubleLiteral struct {
	BaseNode
	Value float64
}

func (*DoubleLiteral) expressionNode() {}
func (*DoubleLiteral) literalNode()    {}

// Children implements Node.
func (*DoubleLiteral) Children() []Node { return nil }

func (d *DoubleLiteral) equal(other Node) bool {
	o, ok := other.(*DoubleLiteral)
	return ok && d.Value == o.Value
}

func (d *DoubleLiteral) hash(h *hasher) {
	h.tag("DoubleLiteral")
	if d.Value == 0 {
		// -0 and +0 are equal and must hash alike.
		h.float(0)
		return
	}
	h.float(d.Value)
}

// DecimalLiteral is an exact numeric constant with a fractional part.
// Precision and scale come from the digits as written, so 1.50 and 1.5 differ.
type DecimalLiteral struct {
	BaseNode
	Value     decimal.Decimal
	Precision int
	Scale     int
}

// NewDecimalLiteral parses digits such as "12.340" into a DecimalLiteral.
// The text must not carry a sign or an exponent.
func NewDecimalLiteral(base BaseNode, text string) (*DecimalLiteral, error) {
	value, err := decimal.NewFromString(text)
	if err != nil {
		loc := base.Loc
		return nil, Errorf(UnsupportedLiteral, loc, ErrMsgInvalidNumber, text).WithCause(err)
	}
	intDigits, fracDigits := 0, 0
	seenPoint := false
	for _, r := range text {
		switch {
		case r == '.':
			seenPoint = true
		case seenPoint:
			fracDigits++
		default:
			intDigits++
		}
	}
	// Leading zeros of the integer part do not count toward precision.
	precision := fracDigits + significantIntDigits(text, intDigits)
	if precision == 0 {
		precision = 1
	}
	return &DecimalLiteral{BaseNode: base, Value: value, Precision: precision, Scale: fracDigits}, nil
}

func significantIntDigits(text string, intDigits int) int {
	n := intDigits
	for i := 0; i < len(text) && text[i] == '0' && n > 0; i++ {
		n--
	}
	return n
}

// Text renders the value with exactly Scale fractional digits. A zero scale
// keeps the trailing point ("12.") so the text still reads as a decimal.
func (d *DecimalLiteral) Text() string {
	if d.Scale == 0 {
		return d.Digits() + "."
	}
	return d.Digits()
}

// Digits renders the value with exactly Scale fractional digits and no
// trailing point.
func (d *DecimalLiteral) Digits() string {
	return d.Value.StringFixed(int32(d.Scale))
}

func (*DecimalLiteral) expressionNode() {}
func (*DecimalLiteral) literalNode()    {}

// Children implements Node.
func (*DecimalLiteral) Children() []Node { return nil }

func (d *DecimalLiteral) equal(other Node) bool {
	o, ok := other.(*DecimalLiteral)
	return ok && d.Precision == o.Precision && d.Scale == o.Scale && d.Value.Equal(o.Value)
}

func (d *DecimalLiteral) hash(h *hasher) {
	h.tag("DecimalLiteral")
	h.str(d.Text())
	h.int(d.Precision)
	h.int(d.Scale)
}

// BooleanLiteral is TRUE or FALSE.
type BooleanLiteral struct {
	BaseNode
	Value bool
}

func (*BooleanLiteral) expressionNode() {}
func (*BooleanLiteral) literalNode()    {}

// Children implements Node.
func (*BooleanLiteral) Children() []Node { return nil }

func (b *BooleanLiteral) equal(other Node) bool {
	o, ok := other.(*BooleanLiteral)
	return ok && b.Value == o.Value
}

func (b *BooleanLiteral) hash(h *hasher) {
	h.tag("BooleanLiteral")
	h.bool(b.Value)
}

// NullLiteral is the NULL constant.
type NullLiteral struct {
	BaseNode
}

func (*NullLiteral) expressionNode() {}
func (*NullLiteral) literalNode()    {}

// Children implements Node.
func (*NullLiteral) Children() []Node { return nil }

func (*NullLiteral) equal(other Node) bool {
	_, ok := other.(*NullLiteral)
	return ok
}

func (*NullLiteral) hash(h *hasher) {
	h.tag("NullLiteral")
}
