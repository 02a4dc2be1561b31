package sparksql

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Lexer tokenizes Spark SQL. Backticks delimit identifiers; both quote
// characters delimit strings. Numbers may carry a type suffix (1L, 1.5BD, 2D).
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `--[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "Keyword", Pattern: token.KeywordPattern("ANY_VALUE", "IGNORE")},
	{Name: "Number", Pattern: `(?i)(?:\d+\.\d*|\.\d+|\d+)(?:E[+-]?\d+)?(?:BD|[DLSY])?`},
	{Name: "String", Pattern: `'(?:[^']|'')*'|"(?:[^"]|"")*"`},
	{Name: "BacktickIdent", Pattern: "`(?:[^`]|``)*`"},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Operator", Pattern: `==|<>|!=|<=|>=|\|\||[-+*/%=<>(),.;?]`},
})

var options = []participle.Option{
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(1024),
}

var (
	statementParser  = participle.MustBuild[SingleStatement](options...)
	expressionParser = participle.MustBuild[SingleExpression](options...)
)

// ---------- Entry Productions ----------

// SingleStatement is one statement with an optional trailing semicolon.
type SingleStatement struct {
	Pos       lexer.Position
	Statement *Statement `@@ ";"?`
}

// SingleExpression is a standalone named expression. Spark accepts an alias
// here, which has no canonical counterpart and is rejected by the builder.
type SingleExpression struct {
	Pos        lexer.Position
	Expression *Expression `@@`
	Alias      *Identifier `( "AS"? @@ )?`
}

// ---------- Statements ----------

type Statement struct {
	Pos     lexer.Position
	Explain *Statement `  "EXPLAIN" @@`
	Query   *Query     `| @@`
}

type Query struct {
	Pos     lexer.Position
	Body    *QueryTerm  `@@`
	OrderBy []*SortItem `( "ORDER" "BY" @@ ( "," @@ )* )?`
	Limit   *Limit      `( "LIMIT" @@ )?`
}

type QueryTerm struct {
	Pos      lexer.Position
	Spec     *QuerySpecification `  @@`
	Subquery *Query              `| "(" @@ ")"`
}

type QuerySpecification struct {
	Pos      lexer.Position
	Select   bool          `@"SELECT"`
	Distinct bool          `( @"DISTINCT" | "ALL" )?`
	Items    []*SelectItem `@@ ( "," @@ )*`
	From     []*Relation   `( "FROM" @@ ( "," @@ )* )?`
	Where    *Expression   `( "WHERE" @@ )?`
	GroupBy  []*Expression `( "GROUP" "BY" @@ ( "," @@ )* )?`
	Having   *Expression   `( "HAVING" @@ )?`
}

type SelectItem struct {
	Pos    lexer.Position
	Star   *Star        `  @@`
	Column *NamedColumn `| @@`
}

type Star struct {
	Pos       lexer.Position
	Qualifier []*Identifier `( @@ "." )*`
	Star      bool          `@"*"`
}

type NamedColumn struct {
	Pos        lexer.Position
	Expression *Expression `@@`
	Alias      *Identifier `( "AS"? @@ )?`
}

type SortItem struct {
	Pos       lexer.Position
	Key       *Expression `@@`
	Direction string      `@( "ASC" | "DESC" )?`
	Nulls     string      `( "NULLS" @( "FIRST" | "LAST" ) )?`
}

type Limit struct {
	Pos   lexer.Position
	All   bool    `  @"ALL"`
	Count *string `| @Number`
}

// ---------- Relations ----------

type Relation struct {
	Pos   lexer.Position
	Left  *RelationPrimary `@@`
	Joins []*JoinRelation  `@@*`
}

type JoinRelation struct {
	Pos       lexer.Position
	Type      string           `( @( "CROSS" | "INNER" | "LEFT" | "RIGHT" | "FULL" ) "OUTER"? )?`
	Join      bool             `@"JOIN"`
	Right     *RelationPrimary `@@`
	Condition *Expression      `( "ON" @@ )?`
}

type RelationPrimary struct {
	Pos      lexer.Position
	Subquery *Query         `( "(" @@ ")"`
	Table    *QualifiedName `| @@ )`
	Alias    *Identifier    `( "AS"? @@ )?`
}

// ---------- Expressions ----------

type Expression struct {
	Pos   lexer.Position
	Left  *AndExpression   `@@`
	Right []*AndExpression `( "OR" @@ )*`
}

type AndExpression struct {
	Pos   lexer.Position
	Left  *NotExpression   `@@`
	Right []*NotExpression `( "AND" @@ )*`
}

type NotExpression struct {
	Pos       lexer.Position
	Not       *NotExpression `  "NOT" @@`
	Predicate *Predicate     `| @@`
}

type Predicate struct {
	Pos        lexer.Position
	Value      *ValueExpression `@@`
	Comparison *Comparison      `( @@`
	Between    *Between         `| @@`
	In         *In              `| @@`
	Like       *Like            `| @@`
	IsNull     *IsNull          `| @@ )?`
}

type Comparison struct {
	Pos      lexer.Position
	Operator string           `@( "==" | "=" | "<>" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right    *ValueExpression `@@`
}

type Between struct {
	Pos   lexer.Position
	Not   bool             `@"NOT"? "BETWEEN"`
	Lower *ValueExpression `@@ "AND"`
	Upper *ValueExpression `@@`
}

type In struct {
	Pos      lexer.Position
	Not      bool          `@"NOT"? "IN" "("`
	Subquery *Query        `( @@`
	Values   []*Expression `| @@ ( "," @@ )* ) ")"`
}

type Like struct {
	Pos     lexer.Position
	Not     bool             `@"NOT"? "LIKE"`
	Pattern *ValueExpression `@@`
	Escape  *string          `( "ESCAPE" @String )?`
}

type IsNull struct {
	Pos lexer.Position
	Is  bool `@"IS"`
	Not bool `@"NOT"? "NULL"`
}

type ValueExpression struct {
	Pos   lexer.Position
	Left  *Term         `@@`
	Right []*AdditiveOp `@@*`
}

type AdditiveOp struct {
	Pos      lexer.Position
	Operator string `@( "+" | "-" | "||" )`
	Right    *Term  `@@`
}

type Term struct {
	Pos   lexer.Position
	Left  *Unary              `@@`
	Right []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Pos      lexer.Position
	Operator string `@( "*" | "/" | "%" )`
	Right    *Unary `@@`
}

type Unary struct {
	Pos     lexer.Position
	Sign    string   `  @( "-" | "+" )`
	Operand *Unary   `  @@`
	Primary *Primary `| @@`
}

type Primary struct {
	Pos       lexer.Position
	Null      bool           `  @"NULL"`
	True      bool           `| @"TRUE"`
	False     bool           `| @"FALSE"`
	Number    *string        `| @Number`
	String    *string        `| @String`
	Parameter bool           `| @"?"`
	Cast      *Cast          `| @@`
	Case      *Case          `| @@`
	AnyValue  *AnyValue      `| @@`
	Subquery  *Query         `| "(" @@ ")"`
	Paren     *Expression    `| "(" @@ ")"`
	Call      *FunctionCall  `| @@`
	Column    *QualifiedName `| @@`
}

// AnyValue accepts ANY_VALUE(x), ANY_VALUE(x IGNORE NULLS),
// ANY_VALUE(x, isIgnoreNull) and ANY_VALUE(x) IGNORE NULLS.
type AnyValue struct {
	Pos         lexer.Position
	Keyword     bool        `@"ANY_VALUE" "("`
	Value       *Expression `@@`
	IgnoreNulls bool        `( @"IGNORE" "NULLS"`
	Flag        *Expression `| "," @@ )? ")"`
	Trailing    bool        `( @"IGNORE" "NULLS" )?`
}

type Cast struct {
	Pos   lexer.Position
	Kind  string      `@( "CAST" | "TRY_CAST" ) "("`
	Value *Expression `@@ "AS"`
	Type  *Type       `@@ ")"`
}

type Type struct {
	Pos    lexer.Position
	Name   []string `@Ident+`
	Params []string `( "(" @Number ( "," @Number )* ")" )?`
}

type Case struct {
	Pos     lexer.Position
	Operand *Expression `"CASE" @@?`
	Whens   []*When     `@@+`
	Else    *Expression `( "ELSE" @@ )? "END"`
}

type When struct {
	Pos       lexer.Position
	Condition *Expression `"WHEN" @@`
	Result    *Expression `"THEN" @@`
}

type FunctionCall struct {
	Pos      lexer.Position
	Name     *QualifiedName `@@ "("`
	Star     bool           `( @"*"`
	Distinct bool           `| ( @"DISTINCT" | "ALL" )?`
	Args     []*Expression  `  @@ ( "," @@ )* )? ")"`
}

type QualifiedName struct {
	Pos   lexer.Position
	Parts []*Identifier `@@ ( "." @@ )*`
}

type Identifier struct {
	Pos      lexer.Position
	Name     *string `  @Ident`
	Backtick *string `| @BacktickIdent`
}
