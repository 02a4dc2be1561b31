package trino

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Lexer tokenizes Trino SQL. Double quotes delimit identifiers.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `--[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "Keyword", Pattern: token.KeywordPattern()},
	{Name: "Number", Pattern: `(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Operator", Pattern: `<>|!=|<=|>=|\|\||[-+*/%=<>(),.;?]`},
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

// SingleExpression is one standalone expression.
type SingleExpression struct {
	Pos        lexer.Position
	Expression *Expression `@@`
}

// ---------- Statements ----------

type Statement struct {
	Pos     lexer.Position
	Explain *Statement `  "EXPLAIN" @@`
	Query   *Query     `| @@`
}

type Query struct {
	Pos     lexer.Position
	Body    *QueryPrimary `@@`
	OrderBy []*SortItem   `( "ORDER" "BY" @@ ( "," @@ )* )?`
	Limit   *Limit        `( "LIMIT" @@ )?`
}

type QueryPrimary struct {
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
	All    *AllColumns   `  @@`
	Column *SingleColumn `| @@`
}

type AllColumns struct {
	Pos    lexer.Position
	Prefix []*Identifier `( @@ "." )*`
	Star   bool          `@"*"`
}

type SingleColumn struct {
	Pos        lexer.Position
	Expression *Expression `@@`
	Alias      *Identifier `( "AS"? @@ )?`
}

type SortItem struct {
	Pos      lexer.Position
	Key      *Expression `@@`
	Ordering string      `@( "ASC" | "DESC" )?`
	Nulls    string      `( "NULLS" @( "FIRST" | "LAST" ) )?`
}

type Limit struct {
	Pos   lexer.Position
	All   bool    `  @"ALL"`
	Count *string `| @Number`
}

// ---------- Relations ----------

type Relation struct {
	Pos   lexer.Position
	Left  *AliasedRelation `@@`
	Joins []*Join          `@@*`
}

type Join struct {
	Pos      lexer.Position
	Type     string           `( @( "CROSS" | "INNER" | "LEFT" | "RIGHT" | "FULL" ) "OUTER"? )?`
	Join     bool             `@"JOIN"`
	Right    *AliasedRelation `@@`
	Criteria *Expression      `( "ON" @@ )?`
}

type AliasedRelation struct {
	Pos      lexer.Position
	Subquery *Query         `( "(" @@ ")"`
	Table    *QualifiedName `| @@ )`
	Alias    *Identifier    `( "AS"? @@ )?`
}

// ---------- Expressions ----------

type Expression struct {
	Pos   lexer.Position
	Left  *AndCondition   `@@`
	Right []*AndCondition `( "OR" @@ )*`
}

type AndCondition struct {
	Pos   lexer.Position
	Left  *NotCondition   `@@`
	Right []*NotCondition `( "AND" @@ )*`
}

type NotCondition struct {
	Pos       lexer.Position
	Not       *NotCondition `  "NOT" @@`
	Predicate *Predicate    `| @@`
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
	Operator string           `@( "=" | "<>" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right    *ValueExpression `@@`
}

type Between struct {
	Pos lexer.Position
	Not bool             `@"NOT"? "BETWEEN"`
	Min *ValueExpression `@@ "AND"`
	Max *ValueExpression `@@`
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
	Escape  *ValueExpression `( "ESCAPE" @@ )?`
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
	Left  *Factor             `@@`
	Right []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Pos      lexer.Position
	Operator string  `@( "*" | "/" | "%" )`
	Right    *Factor `@@`
}

type Factor struct {
	Pos     lexer.Position
	Sign    string   `  @( "-" | "+" )`
	Operand *Factor  `  @@`
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
	Subquery  *Query         `| "(" @@ ")"`
	Paren     *Expression    `| "(" @@ ")"`
	Call      *FunctionCall  `| @@`
	Column    *QualifiedName `| @@`
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
	Pos    lexer.Position
	Name   *string `  @Ident`
	Quoted *string `| @QuotedIdent`
}
