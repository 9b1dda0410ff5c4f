package repository

import (
	"strconv"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// query accumulates positional arguments and ANDed predicates.
type query struct {
	conds []string
	args  []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)

	return "$" + strconv.Itoa(len(q.args))
}

func (q *query) and(cond string) {
	q.conds = append(q.conds, cond)
}

// search matches term as a case-insensitive substring of any of the columns.
func (q *query) search(term string, columns ...string) {
	p := q.arg("%" + likeEscaper.Replace(term) + "%")

	ors := make([]string, 0, len(columns))
	for _, c := range columns {
		ors = append(ors, c+` ILIKE `+p+` ESCAPE '\'`)
	}

	q.and("(" + strings.Join(ors, " OR ") + ")")
}

func (q *query) where() string {
	if len(q.conds) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(q.conds, " AND ")
}

func (q *query) page(limit, offset int) string {
	var b strings.Builder

	b.WriteString(" ORDER BY created_at DESC, id DESC")
	if limit > 0 {
		b.WriteString(" LIMIT " + q.arg(limit))
	}
	if offset > 0 {
		b.WriteString(" OFFSET " + q.arg(offset))
	}

	return b.String()
}

// setList builds the SET clause of a partial update.
type setList struct {
	q    *query
	cols []string
}

func (s *setList) add(col string, v any) {
	s.cols = append(s.cols, col+" = "+s.q.arg(v))
}

// addCast is add for parameters that need an explicit conversion, e.g. "::text::numeric".
func (s *setList) addCast(col string, v any, cast string) {
	s.cols = append(s.cols, col+" = "+s.q.arg(v)+cast)
}

func (s *setList) String() string {
	cols := append(s.cols[:len(s.cols):len(s.cols)], "updated_at = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')")

	return strings.Join(cols, ", ")
}
