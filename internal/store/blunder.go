package store

import (
	"context"
	"fmt"

	"github.com/abhisek/chesscoach/ent"
	"github.com/abhisek/chesscoach/ent/blunder"
)

// blunderRepo implements BlunderRepo using the ent client.
type blunderRepo struct {
	client *ent.Client
}

func (r *blunderRepo) Save(ctx context.Context, rec *BlunderRecord) error {
	_, err := r.client.Blunder.Create().
		SetSource(rec.Source).
		SetMoveNumber(rec.MoveNumber).
		SetPlayerColor(rec.PlayerColor).
		SetMoveSan(rec.MoveSAN).
		SetPositionFen(rec.PositionFEN).
		SetEvalDrop(rec.EvalDrop).
		SetBestMoveSan(rec.BestMoveSAN).
		SetMotif(rec.Motif).
		SetSeverity(rec.Severity).
		SetExplanation(rec.Explanation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save blunder: %w", err)
	}
	return nil
}

func (r *blunderRepo) BySource(ctx context.Context, source string) ([]*BlunderRecord, error) {
	rows, err := r.client.Blunder.Query().
		Where(blunder.Source(source)).
		Order(ent.Asc(blunder.FieldMoveNumber), ent.Asc(blunder.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query blunders: %w", err)
	}

	out := make([]*BlunderRecord, len(rows))
	for i, row := range rows {
		out[i] = entBlunderToRecord(row)
	}
	return out, nil
}

func (r *blunderRepo) DeleteBySource(ctx context.Context, source string) (int, error) {
	n, err := r.client.Blunder.Delete().
		Where(blunder.Source(source)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete blunders: %w", err)
	}
	return n, nil
}

func entBlunderToRecord(row *ent.Blunder) *BlunderRecord {
	return &BlunderRecord{
		ID:          row.ID,
		Source:      row.Source,
		MoveNumber:  row.MoveNumber,
		PlayerColor: row.PlayerColor,
		MoveSAN:     row.MoveSan,
		PositionFEN: row.PositionFen,
		EvalDrop:    row.EvalDrop,
		BestMoveSAN: row.BestMoveSan,
		Motif:       row.Motif,
		Severity:    row.Severity,
		Explanation: row.Explanation,
		CreatedAt:   row.CreatedAt,
	}
}
