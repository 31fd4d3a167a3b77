package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bawdo/sqlfn/managers"
	"github.com/bawdo/sqlfn/nodes"
	"github.com/bawdo/sqlfn/visitors"
)

var errNoQuery = errors.New("no query defined (use 'from <table>' first)")

// renderer is a dialect visitor that collects bind parameters.
type renderer interface {
	nodes.Visitor
	nodes.Parameterizer
}

// commandEntry maps a shell prefix to its handler.
type commandEntry struct {
	prefix  string
	handler func(args string) error
}

// Session holds the shell state: the tables seen so far, the current
// query, the active dialect and the optional database connection.
type Session struct {
	tables       map[string]*nodes.Table
	query        *managers.SelectManager
	engine       string
	visitor      renderer
	parameterize bool
	pretty       bool
	commands     []commandEntry // sorted by prefix length desc
	conn         *dbConn        // nil when disconnected
	out          io.Writer
}

// NewSession creates a session rendering for engine.
func NewSession(engine string) *Session {
	s := &Session{
		tables:       make(map[string]*nodes.Table),
		parameterize: true,
		out:          os.Stdout,
	}
	s.setEngine(engine)
	s.initCommands()
	return s
}

func (s *Session) initCommands() {
	s.commands = []commandEntry{
		{prefix: "expr ", handler: s.cmdExpr},
		{prefix: "from ", handler: s.cmdFrom},
		{prefix: "select ", handler: s.cmdSelect},
		{prefix: "where ", handler: s.cmdWhere},
		{prefix: "order ", handler: s.cmdOrder},
		{prefix: "limit ", handler: s.cmdLimit},
		{prefix: "engine ", handler: s.cmdEngine},
		{prefix: "connect ", handler: s.cmdConnect},
		{prefix: "sql ", handler: s.cmdRawSQL},
		{prefix: "disconnect", handler: func(string) error { return s.cmdDisconnect() }},
		{prefix: "params", handler: func(string) error { return s.cmdParameterize() }},
		{prefix: "format", handler: func(string) error { return s.cmdFormat() }},
		{prefix: "reset", handler: func(string) error { return s.cmdReset() }},
		{prefix: "show", handler: func(string) error { return s.cmdShow() }},
		{prefix: "dot", handler: func(string) error { return s.cmdDot() }},
		{prefix: "run", handler: func(string) error { return s.cmdRun() }},
		{prefix: "help", handler: func(string) error { s.cmdHelp(); return nil }},
	}
	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames lists the command words for tab completion.
func (s *Session) commandNames() []string {
	names := []string{"exit", "quit"}
	for _, cmd := range s.commands {
		names = append(names, strings.TrimRight(cmd.prefix, " "))
	}
	sort.Strings(names)
	return names
}

func (s *Session) setEngine(engine string) {
	s.engine = engine
	var opts []visitors.Option
	if !s.parameterize {
		opts = append(opts, visitors.WithoutParams())
	}
	switch engine {
	case "mysql":
		s.visitor = visitors.NewMySQLVisitor(opts...)
	case "sqlite":
		s.visitor = visitors.NewSQLiteVisitor(opts...)
	default:
		s.engine = "postgres"
		s.visitor = visitors.NewPostgresVisitor(opts...)
	}
	if s.pretty {
		s.visitor = visitors.NewFormattingVisitor(s.visitor)
	}
}

// Execute parses and runs a single shell command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(strings.TrimSpace(line[len(cmd.prefix):]))
			}
		} else if lower == cmd.prefix {
			return cmd.handler("")
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

func (s *Session) ensureTable(name string) *nodes.Table {
	if t, ok := s.tables[name]; ok {
		return t
	}
	t := nodes.NewTable(name)
	s.tables[name] = t
	return t
}

// resolveColumn qualifies bare column names with the FROM table.
func (s *Session) resolveColumn(table, column string) (*nodes.Attribute, error) {
	if table != "" {
		return s.ensureTable(table).Col(column), nil
	}
	if s.query != nil {
		if t, ok := s.query.Core.From.(*nodes.Table); ok {
			return t.Col(column), nil
		}
	}
	return nil, fmt.Errorf("column %q needs a table (use table.%s or 'from <table>')", column, column)
}

func (s *Session) parser(input string) *parser {
	return newParser(input, s.resolveColumn)
}

// --- Command handlers ---

// cmdExpr renders a standalone expression without a query.
func (s *Session) cmdExpr(args string) error {
	p := s.parser(args)
	node, err := p.parseCondition()
	if err != nil {
		return fmt.Errorf("expr: %w", err)
	}
	if err := p.expectEnd(); err != nil {
		return fmt.Errorf("expr: %w", err)
	}
	return s.printSQL(node)
}

func (s *Session) cmdFrom(args string) error {
	if args == "" {
		return errors.New("usage: from <table>")
	}
	s.query = managers.NewSelectManager(s.ensureTable(args))
	_, _ = fmt.Fprintf(s.out, "  Query FROM %q\n", args)
	return nil
}

func (s *Session) cmdSelect(args string) error {
	if s.query == nil {
		return errNoQuery
	}
	var projs []nodes.Node
	for _, part := range splitTopLevelCommas(args) {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case part == "*":
			projs = append(projs, nodes.Star())
			continue
		case strings.HasSuffix(part, ".*"):
			projs = append(projs, s.ensureTable(strings.TrimSuffix(part, ".*")).Star())
			continue
		}
		node, err := s.parseProjection(part)
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		projs = append(projs, node)
	}
	s.query.Select(projs...)
	_, _ = fmt.Fprintf(s.out, "  Projections set (%d columns)\n", len(projs))
	return nil
}

func (s *Session) parseProjection(input string) (nodes.Node, error) {
	p := s.parser(input)
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	alias, err := p.parseAlias()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	node := asNode(v)
	if alias == "" {
		return node, nil
	}
	if fn, ok := node.(*nodes.FunctionNode); ok {
		return fn.As(alias), nil
	}
	return nodes.NewAliasNode(node, alias), nil
}

func (s *Session) cmdWhere(args string) error {
	if s.query == nil {
		return errNoQuery
	}
	p := s.parser(args)
	cond, err := p.parseCondition()
	if err != nil {
		return fmt.Errorf("where: %w", err)
	}
	if err := p.expectEnd(); err != nil {
		return fmt.Errorf("where: %w", err)
	}
	s.query.Where(cond)
	_, _ = fmt.Fprintln(s.out, "  WHERE condition added")
	return nil
}

func (s *Session) cmdOrder(args string) error {
	if s.query == nil {
		return errNoQuery
	}
	dir := nodes.Asc
	lower := strings.ToLower(args)
	switch {
	case strings.HasSuffix(lower, " desc"):
		dir = nodes.Desc
		args = args[:len(args)-len(" desc")]
	case strings.HasSuffix(lower, " asc"):
		args = args[:len(args)-len(" asc")]
	}
	p := s.parser(args)
	v, err := p.parseExpr()
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	if err := p.expectEnd(); err != nil {
		return fmt.Errorf("order: %w", err)
	}
	s.query.Order(&nodes.OrderingNode{Expr: asNode(v), Direction: dir})
	_, _ = fmt.Fprintln(s.out, "  ORDER BY added")
	return nil
}

func (s *Session) cmdLimit(args string) error {
	if s.query == nil {
		return errNoQuery
	}
	n, err := strconv.Atoi(args)
	if err != nil || n < 0 {
		return fmt.Errorf("limit: invalid number %q", args)
	}
	s.query.Limit(n)
	_, _ = fmt.Fprintf(s.out, "  LIMIT %d\n", n)
	return nil
}

func (s *Session) cmdEngine(args string) error {
	engine := strings.ToLower(args)
	if !isValidEngine(engine) {
		return fmt.Errorf("unknown engine %q (postgres, mysql, sqlite)", args)
	}
	s.setEngine(engine)
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", s.engine)
	return nil
}

func (s *Session) cmdParameterize() error {
	s.parameterize = !s.parameterize
	s.setEngine(s.engine)
	if s.parameterize {
		_, _ = fmt.Fprintln(s.out, "  Parameterized queries enabled")
	} else {
		_, _ = fmt.Fprintln(s.out, "  Parameterized queries disabled")
	}
	return nil
}

func (s *Session) cmdFormat() error {
	s.pretty = !s.pretty
	s.setEngine(s.engine)
	if s.pretty {
		_, _ = fmt.Fprintln(s.out, "  Multi-line output enabled")
	} else {
		_, _ = fmt.Fprintln(s.out, "  Multi-line output disabled")
	}
	return nil
}

func (s *Session) cmdReset() error {
	s.query = nil
	_, _ = fmt.Fprintln(s.out, "  Query reset")
	return nil
}

func (s *Session) cmdShow() error {
	if s.query == nil {
		return errNoQuery
	}
	sql, params, err := s.query.ToSQL(s.visitor)
	if err != nil {
		return err
	}
	s.printRendered(sql, params)
	return nil
}

// cmdDot prints the current query's AST as a Graphviz digraph.
func (s *Session) cmdDot() error {
	if s.query == nil {
		return errNoQuery
	}
	dv := visitors.NewDotVisitor()
	s.query.Core.Accept(dv)
	_, _ = fmt.Fprint(s.out, dv.ToDot())
	return nil
}

func (s *Session) printSQL(n nodes.Node) error {
	sql, params, err := managers.NewSelectManager(nil).Select(n).ToSQL(s.visitor)
	if err != nil {
		return err
	}
	s.printRendered(strings.TrimPrefix(sql, "SELECT "), params)
	return nil
}

func (s *Session) printRendered(sql string, params []any) {
	_, _ = fmt.Fprintf(s.out, "  %s\n", sql)
	if len(params) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %v\n", params)
	}
}

func (s *Session) cmdConnect(args string) error {
	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}
	conn, err := connect(s.engine, args)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sanitizeDSN(args), s.engine)
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

// cmdRawSQL runs a statement verbatim, for creating scratch tables.
func (s *Session) cmdRawSQL(args string) error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	n, err := s.conn.exec(args)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  OK (%d rows affected)\n", n)
	return nil
}

// cmdRun executes the current query against the connected database.
func (s *Session) cmdRun() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	if s.query == nil {
		return errNoQuery
	}
	if s.conn.engine != s.engine {
		_, _ = fmt.Fprintf(s.out, "  Warning: connected to %s but engine is set to %s\n", s.conn.engine, s.engine)
	}
	sql, params, err := s.query.ToSQL(s.visitor)
	if err != nil {
		return err
	}
	s.printRendered(sql+";", params)

	result, err := s.conn.execQuery(sql, params)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Expressions:
    expr <expression>         Render an expression for the current engine
                              e.g. expr LOCATE(users.email, '@') > 0

  Query Building:
    from <table>              Start a new query (sets FROM)
    select <expr> [as a], ... Set projections
    where <condition>         Add a WHERE condition
    order <expr> [asc|desc]   Add ORDER BY
    limit <n>                 Set LIMIT
    show                      Render the current query
    dot                       Print the query AST as Graphviz DOT
    reset                     Discard the current query

  Values:
    42, -7                    integers (passed to functions verbatim)
    'text'                    strings
    date '2024-03-15'         dates
    timestamp '2024-03-15 13:45:00'  timestamps (truncated to a date in calls)
    interval '90m'            durations (seconds in calls)

  Settings:
    engine <name>             postgres, mysql or sqlite
    params                    Toggle parameterized rendering
    format                    Toggle one-clause-per-line output

  Database:
    connect <dsn>             Connect using the current engine
    disconnect                Close the connection
    sql <statement>           Run a statement verbatim
    run                       Execute the current query

    exit | quit               Leave the shell`)
}

func isValidEngine(engine string) bool {
	_, ok := driverName[engine]
	return ok
}
