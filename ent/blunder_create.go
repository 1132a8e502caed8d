// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/blunder"
)

// BlunderCreate is the builder for creating a Blunder entity.
type BlunderCreate struct {
	config
	mutation *BlunderMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *BlunderCreate) SetSource(v string) *BlunderCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetMoveNumber sets the "move_number" field.
func (_c *BlunderCreate) SetMoveNumber(v int) *BlunderCreate {
	_c.mutation.SetMoveNumber(v)
	return _c
}

// SetPlayerColor sets the "player_color" field.
func (_c *BlunderCreate) SetPlayerColor(v string) *BlunderCreate {
	_c.mutation.SetPlayerColor(v)
	return _c
}

// SetMoveSan sets the "move_san" field.
func (_c *BlunderCreate) SetMoveSan(v string) *BlunderCreate {
	_c.mutation.SetMoveSan(v)
	return _c
}

// SetPositionFen sets the "position_fen" field.
func (_c *BlunderCreate) SetPositionFen(v string) *BlunderCreate {
	_c.mutation.SetPositionFen(v)
	return _c
}

// SetEvalDrop sets the "eval_drop" field.
func (_c *BlunderCreate) SetEvalDrop(v int) *BlunderCreate {
	_c.mutation.SetEvalDrop(v)
	return _c
}

// SetBestMoveSan sets the "best_move_san" field.
func (_c *BlunderCreate) SetBestMoveSan(v string) *BlunderCreate {
	_c.mutation.SetBestMoveSan(v)
	return _c
}

// SetMotif sets the "motif" field.
func (_c *BlunderCreate) SetMotif(v string) *BlunderCreate {
	_c.mutation.SetMotif(v)
	return _c
}

// SetNillableMotif sets the "motif" field if the given value is not nil.
func (_c *BlunderCreate) SetNillableMotif(v *string) *BlunderCreate {
	if v != nil {
		_c.SetMotif(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *BlunderCreate) SetSeverity(v string) *BlunderCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *BlunderCreate) SetNillableSeverity(v *string) *BlunderCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *BlunderCreate) SetExplanation(v string) *BlunderCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *BlunderCreate) SetNillableExplanation(v *string) *BlunderCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlunderCreate) SetCreatedAt(v time.Time) *BlunderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlunderCreate) SetNillableCreatedAt(v *time.Time) *BlunderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BlunderMutation object of the builder.
func (_c *BlunderCreate) Mutation() *BlunderMutation {
	return _c.mutation
}

// Save creates the Blunder in the database.
func (_c *BlunderCreate) Save(ctx context.Context) (*Blunder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlunderCreate) SaveX(ctx context.Context) *Blunder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlunderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlunderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlunderCreate) defaults() {
	if _, ok := _c.mutation.Motif(); !ok {
		v := blunder.DefaultMotif
		_c.mutation.SetMotif(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := blunder.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := blunder.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blunder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlunderCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Blunder.source"`)}
	}
	if _, ok := _c.mutation.MoveNumber(); !ok {
		return &ValidationError{Name: "move_number", err: errors.New(`ent: missing required field "Blunder.move_number"`)}
	}
	if _, ok := _c.mutation.PlayerColor(); !ok {
		return &ValidationError{Name: "player_color", err: errors.New(`ent: missing required field "Blunder.player_color"`)}
	}
	if _, ok := _c.mutation.MoveSan(); !ok {
		return &ValidationError{Name: "move_san", err: errors.New(`ent: missing required field "Blunder.move_san"`)}
	}
	if _, ok := _c.mutation.PositionFen(); !ok {
		return &ValidationError{Name: "position_fen", err: errors.New(`ent: missing required field "Blunder.position_fen"`)}
	}
	if _, ok := _c.mutation.EvalDrop(); !ok {
		return &ValidationError{Name: "eval_drop", err: errors.New(`ent: missing required field "Blunder.eval_drop"`)}
	}
	if _, ok := _c.mutation.BestMoveSan(); !ok {
		return &ValidationError{Name: "best_move_san", err: errors.New(`ent: missing required field "Blunder.best_move_san"`)}
	}
	if _, ok := _c.mutation.Motif(); !ok {
		return &ValidationError{Name: "motif", err: errors.New(`ent: missing required field "Blunder.motif"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Blunder.severity"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Blunder.explanation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blunder.created_at"`)}
	}
	return nil
}

func (_c *BlunderCreate) sqlSave(ctx context.Context) (*Blunder, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlunderCreate) createSpec() (*Blunder, *sqlgraph.CreateSpec) {
	var (
		_node = &Blunder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blunder.Table, sqlgraph.NewFieldSpec(blunder.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(blunder.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.MoveNumber(); ok {
		_spec.SetField(blunder.FieldMoveNumber, field.TypeInt, value)
		_node.MoveNumber = value
	}
	if value, ok := _c.mutation.PlayerColor(); ok {
		_spec.SetField(blunder.FieldPlayerColor, field.TypeString, value)
		_node.PlayerColor = value
	}
	if value, ok := _c.mutation.MoveSan(); ok {
		_spec.SetField(blunder.FieldMoveSan, field.TypeString, value)
		_node.MoveSan = value
	}
	if value, ok := _c.mutation.PositionFen(); ok {
		_spec.SetField(blunder.FieldPositionFen, field.TypeString, value)
		_node.PositionFen = value
	}
	if value, ok := _c.mutation.EvalDrop(); ok {
		_spec.SetField(blunder.FieldEvalDrop, field.TypeInt, value)
		_node.EvalDrop = value
	}
	if value, ok := _c.mutation.BestMoveSan(); ok {
		_spec.SetField(blunder.FieldBestMoveSan, field.TypeString, value)
		_node.BestMoveSan = value
	}
	if value, ok := _c.mutation.Motif(); ok {
		_spec.SetField(blunder.FieldMotif, field.TypeString, value)
		_node.Motif = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(blunder.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(blunder.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blunder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BlunderCreateBulk is the builder for creating many Blunder entities in bulk.
type BlunderCreateBulk struct {
	config
	err      error
	builders []*BlunderCreate
}

// Save creates the Blunder entities in the database.
func (_c *BlunderCreateBulk) Save(ctx context.Context) ([]*Blunder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Blunder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlunderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlunderCreateBulk) SaveX(ctx context.Context) []*Blunder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlunderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlunderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
