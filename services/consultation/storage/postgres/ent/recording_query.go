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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// RecordingQuery is the builder for querying Recording entities.
type RecordingQuery struct {
	config
	ctx               *QueryContext
	order             []recording.OrderOption
	inters            []Interceptor
	predicates        []predicate.Recording
	withConsultation  *ConsultationQuery
	withTranscription *TranscriptionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecordingQuery builder.
func (_q *RecordingQuery) Where(ps ...predicate.Recording) *RecordingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecordingQuery) Limit(limit int) *RecordingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecordingQuery) Offset(offset int) *RecordingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecordingQuery) Unique(unique bool) *RecordingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecordingQuery) Order(o ...recording.OrderOption) *RecordingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryConsultation chains the current query on the "consultation" edge.
func (_q *RecordingQuery) QueryConsultation() *ConsultationQuery {
	query := (&ConsultationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recording.Table, recording.FieldID, selector),
			sqlgraph.To(consultation.Table, consultation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recording.ConsultationTable, recording.ConsultationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTranscription chains the current query on the "transcription" edge.
func (_q *RecordingQuery) QueryTranscription() *TranscriptionQuery {
	query := (&TranscriptionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recording.Table, recording.FieldID, selector),
			sqlgraph.To(transcription.Table, transcription.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, recording.TranscriptionTable, recording.TranscriptionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Recording entity from the query.
// Returns a *NotFoundError when no Recording was found.
func (_q *RecordingQuery) First(ctx context.Context) (*Recording, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recording.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecordingQuery) FirstX(ctx context.Context) *Recording {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Recording ID from the query.
// Returns a *NotFoundError when no Recording ID was found.
func (_q *RecordingQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recording.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecordingQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Recording entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Recording entity is found.
// Returns a *NotFoundError when no Recording entities are found.
func (_q *RecordingQuery) Only(ctx context.Context) (*Recording, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recording.Label}
	default:
		return nil, &NotSingularError{recording.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecordingQuery) OnlyX(ctx context.Context) *Recording {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Recording ID in the query.
// Returns a *NotSingularError when more than one Recording ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecordingQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recording.Label}
	default:
		err = &NotSingularError{recording.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecordingQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Recordings.
func (_q *RecordingQuery) All(ctx context.Context) ([]*Recording, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Recording, *RecordingQuery]()
	return withInterceptors[[]*Recording](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecordingQuery) AllX(ctx context.Context) []*Recording {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Recording IDs.
func (_q *RecordingQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recording.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecordingQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecordingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecordingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecordingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecordingQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecordingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecordingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecordingQuery) Clone() *RecordingQuery {
	if _q == nil {
		return nil
	}
	return &RecordingQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]recording.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Recording{}, _q.predicates...),
		withConsultation:  _q.withConsultation.Clone(),
		withTranscription: _q.withTranscription.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithConsultation tells the query-builder to eager-load the nodes that are connected to
// the "consultation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecordingQuery) WithConsultation(opts ...func(*ConsultationQuery)) *RecordingQuery {
	query := (&ConsultationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConsultation = query
	return _q
}

// WithTranscription tells the query-builder to eager-load the nodes that are connected to
// the "transcription" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecordingQuery) WithTranscription(opts ...func(*TranscriptionQuery)) *RecordingQuery {
	query := (&TranscriptionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTranscription = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Recording.Query().
//		GroupBy(recording.FieldFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RecordingQuery) GroupBy(field string, fields ...string) *RecordingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecordingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recording.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//	}
//
//	client.Recording.Query().
//		Select(recording.FieldFilename).
//		Scan(ctx, &v)
func (_q *RecordingQuery) Select(fields ...string) *RecordingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecordingSelect{RecordingQuery: _q}
	sbuild.label = recording.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecordingSelect configured with the given aggregations.
func (_q *RecordingQuery) Aggregate(fns ...AggregateFunc) *RecordingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecordingQuery) prepareQuery(ctx context.Context) error {
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
		if !recording.ValidColumn(f) {
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

func (_q *RecordingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Recording, error) {
	var (
		nodes       = []*Recording{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withConsultation != nil,
			_q.withTranscription != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Recording).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Recording{config: _q.config}
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
	if query := _q.withConsultation; query != nil {
		if err := _q.loadConsultation(ctx, query, nodes, nil,
			func(n *Recording, e *Consultation) { n.Edges.Consultation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTranscription; query != nil {
		if err := _q.loadTranscription(ctx, query, nodes, nil,
			func(n *Recording, e *Transcription) { n.Edges.Transcription = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecordingQuery) loadConsultation(ctx context.Context, query *ConsultationQuery, nodes []*Recording, init func(*Recording), assign func(*Recording, *Consultation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Recording)
	for i := range nodes {
		fk := nodes[i].ConsultationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(consultation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "consultation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecordingQuery) loadTranscription(ctx context.Context, query *TranscriptionQuery, nodes []*Recording, init func(*Recording), assign func(*Recording, *Transcription)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Recording)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(transcription.FieldRecordingID)
	}
	query.Where(predicate.Transcription(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recording.TranscriptionColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecordingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recording_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RecordingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecordingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for i := range fields {
			if fields[i] != recording.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withConsultation != nil {
			_spec.Node.AddColumnOnce(recording.FieldConsultationID)
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

func (_q *RecordingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recording.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recording.Columns
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

// RecordingGroupBy is the group-by builder for Recording entities.
type RecordingGroupBy struct {
	selector
	build *RecordingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecordingGroupBy) Aggregate(fns ...AggregateFunc) *RecordingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecordingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecordingQuery, *RecordingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecordingGroupBy) sqlScan(ctx context.Context, root *RecordingQuery, v any) error {
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

// RecordingSelect is the builder for selecting fields of Recording entities.
type RecordingSelect struct {
	*RecordingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecordingSelect) Aggregate(fns ...AggregateFunc) *RecordingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecordingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecordingQuery, *RecordingSelect](ctx, _s.RecordingQuery, _s, _s.inters, v)
}

func (_s *RecordingSelect) sqlScan(ctx context.Context, root *RecordingQuery, v any) error {
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
