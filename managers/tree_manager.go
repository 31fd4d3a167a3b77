package managers

import (
	"fmt"
	"strings"

	"github.com/bawdo/sqlfn/nodes"
)

// toSQLParams resets a parameterizer (if present), renders root with v and
// returns SQL + params. Rendering-time panics raised by the visitors for
// invalid identifiers or literal types are returned as errors.
func toSQLParams(v nodes.Visitor, root nodes.Node) (sql string, params []any, err error) {
	p, _ := v.(nodes.Parameterizer)
	if p != nil {
		p.Reset()
	}

	defer func() {
		if r := recover(); r != nil {
			msg, ok := r.(string)
			if !ok || !strings.HasPrefix(msg, "sqlfn: ") {
				panic(r)
			}
			sql, params, err = "", nil, fmt.Errorf("render: %s", strings.TrimPrefix(msg, "sqlfn: "))
		}
	}()

	sql = root.Accept(v)
	if p != nil {
		params = p.Params()
	}
	return sql, params, nil
}
