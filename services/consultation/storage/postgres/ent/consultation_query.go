// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/note"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
)

// ConsultationQuery is the builder for querying Consultation entities.
type ConsultationQuery struct {
	config
	ctx            *QueryContext
	order          []consultation.OrderOption
	inters         []Interceptor
	predicates     []predicate.Consultation
	withNote       *NoteQuery
	withSummary    *SummaryQuery
	withRecordings *RecordingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ConsultationQuery builder.
func (_q *ConsultationQuery) Where(ps ...predicate.Consultation) *ConsultationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ConsultationQuery) Limit(limit int) *ConsultationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ConsultationQuery) Offset(offset int) *ConsultationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ConsultationQuery) Unique(unique bool) *ConsultationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ConsultationQuery) Order(o ...consultation.OrderOption) *ConsultationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNote chains the current query on the "note" edge.
func (_q *ConsultationQuery) QueryNote() *NoteQuery {
	query := (&NoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(consultation.Table, consultation.FieldID, selector),
			sqlgraph.To(note.Table, note.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, consultation.NoteTable, consultation.NoteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySummary chains the current query on the "summary" edge.
func (_q *ConsultationQuery) QuerySummary() *SummaryQuery {
	query := (&SummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(consultation.Table, consultation.FieldID, selector),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, consultation.SummaryTable, consultation.SummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecordings chains the current query on the "recordings" edge.
func (_q *ConsultationQuery) QueryRecordings() *RecordingQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(consultation.Table, consultation.FieldID, selector),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, consultation.RecordingsTable, consultation.RecordingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Consultation entity from the query.
// Returns a *NotFoundError when no Consultation was found.
func (_q *ConsultationQuery) First(ctx context.Context) (*Consultation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{consultation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ConsultationQuery) FirstX(ctx context.Context) *Consultation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Consultation ID from the query.
// Returns a *NotFoundError when no Consultation ID was found.
func (_q *ConsultationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{consultation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ConsultationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Consultation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Consultation entity is found.
// Returns a *NotFoundError when no Consultation entities are found.
func (_q *ConsultationQuery) Only(ctx context.Context) (*Consultation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{consultation.Label}
	default:
		return nil, &NotSingularError{consultation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ConsultationQuery) OnlyX(ctx context.Context) *Consultation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Consultation ID in the query.
// Returns a *NotSingularError when more than one Consultation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ConsultationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{consultation.Label}
	default:
		err = &NotSingularError{consultation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ConsultationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Consultations.
func (_q *ConsultationQuery) All(ctx context.Context) ([]*Consultation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Consultation, *ConsultationQuery]()
	return withInterceptors[[]*Consultation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ConsultationQuery) AllX(ctx context.Context) []*Consultation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Consultation IDs.
func (_q *ConsultationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(consultation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ConsultationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ConsultationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ConsultationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ConsultationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ConsultationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ConsultationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ConsultationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ConsultationQuery) Clone() *ConsultationQuery {
	if _q == nil {
		return nil
	}
	return &ConsultationQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]consultation.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Consultation{}, _q.predicates...),
		withNote:       _q.withNote.Clone(),
		withSummary:    _q.withSummary.Clone(),
		withRecordings: _q.withRecordings.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNote tells the query-builder to eager-load the nodes that are connected to
// the "note" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConsultationQuery) WithNote(opts ...func(*NoteQuery)) *ConsultationQuery {
	query := (&NoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNote = query
	return _q
}

// WithSummary tells the query-builder to eager-load the nodes that are connected to
// the "summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConsultationQuery) WithSummary(opts ...func(*SummaryQuery)) *ConsultationQuery {
	query := (&SummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSummary = query
	return _q
}

// WithRecordings tells the query-builder to eager-load the nodes that are connected to
// the "recordings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConsultationQuery) WithRecordings(opts ...func(*RecordingQuery)) *ConsultationQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecordings = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Consultation.Query().
//		GroupBy(consultation.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ConsultationQuery) GroupBy(field string, fields ...string) *ConsultationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ConsultationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = consultation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.Consultation.Query().
//		Select(consultation.FieldTitle).
//		Scan(ctx, &v)
func (_q *ConsultationQuery) Select(fields ...string) *ConsultationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ConsultationSelect{ConsultationQuery: _q}
	sbuild.label = consultation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ConsultationSelect configured with the given aggregations.
func (_q *ConsultationQuery) Aggregate(fns ...AggregateFunc) *ConsultationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ConsultationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !consultation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ConsultationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Consultation, error) {
	var (
		nodes       = []*Consultation{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withNote != nil,
			_q.withSummary != nil,
			_q.withRecordings != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Consultation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Consultation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withNote; query != nil {
		if err := _q.loadNote(ctx, query, nodes, nil,
			func(n *Consultation, e *Note) { n.Edges.Note = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSummary; query != nil {
		if err := _q.loadSummary(ctx, query, nodes, nil,
			func(n *Consultation, e *Summary) { n.Edges.Summary = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecordings; query != nil {
		if err := _q.loadRecordings(ctx, query, nodes,
			func(n *Consultation) { n.Edges.Recordings = []*Recording{} },
			func(n *Consultation, e *Recording) { n.Edges.Recordings = append(n.Edges.Recordings, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ConsultationQuery) loadNote(ctx context.Context, query *NoteQuery, nodes []*Consultation, init func(*Consultation), assign func(*Consultation, *Note)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Consultation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(note.FieldConsultationID)
	}
	query.Where(predicate.Note(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(consultation.NoteColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConsultationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "consultation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ConsultationQuery) loadSummary(ctx context.Context, query *SummaryQuery, nodes []*Consultation, init func(*Consultation), assign func(*Consultation, *Summary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Consultation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(summary.FieldConsultationID)
	}
	query.Where(predicate.Summary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(consultation.SummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConsultationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "consultation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ConsultationQuery) loadRecordings(ctx context.Context, query *RecordingQuery, nodes []*Consultation, init func(*Consultation), assign func(*Consultation, *Recording)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Consultation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recording.FieldConsultationID)
	}
	query.Where(predicate.Recording(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(consultation.RecordingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConsultationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "consultation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ConsultationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ConsultationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consultation.FieldID)
		for i := range fields {
			if fields[i] != consultation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ConsultationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(consultation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = consultation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ConsultationGroupBy is the group-by builder for Consultation entities.
type ConsultationGroupBy struct {
	selector
	build *ConsultationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ConsultationGroupBy) Aggregate(fns ...AggregateFunc) *ConsultationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ConsultationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConsultationQuery, *ConsultationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ConsultationGroupBy) sqlScan(ctx context.Context, root *ConsultationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ConsultationSelect is the builder for selecting fields of Consultation entities.
type ConsultationSelect struct {
	*ConsultationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ConsultationSelect) Aggregate(fns ...AggregateFunc) *ConsultationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ConsultationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConsultationQuery, *ConsultationSelect](ctx, _s.ConsultationQuery, _s, _s.inters, v)
}

func (_s *ConsultationSelect) sqlScan(ctx context.Context, root *ConsultationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
