package models

import "time"

type OperationKind string

const (
	OpInject  OperationKind = "inject"
	OpExtract OperationKind = "extract"
)

// Operation is one recorded inject or extract run.
type Operation struct {
	ID          uint32        `db:"id" json:"id"`
	Kind        OperationKind `db:"kind" json:"kind"`
	Source      string        `db:"source" json:"source"`
	Output      string        `db:"output" json:"output"`
	PayloadSize int64         `db:"payload_size" json:"payload_size"`
	OutputSize  int64         `db:"output_size" json:"output_size"`
	Chunks      int           `db:"chunks" json:"chunks"`
	ValidChunks int           `db:"valid_chunks" json:"valid_chunks"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
