package model

import (
	"sort"
	"strconv"
	"strings"
)

// StageID identifies one of the seven ordered stages
type StageID int

// StageCount is the number of stages a player must complete
const StageCount = 7

// StageType determines how a submitted answer is compared
type StageType string

const (
	StageTypeCode   StageType = "code"
	StageTypeCipher StageType = "cipher"
	StageTypeMemory StageType = "memory"
	StageTypePuzzle StageType = "puzzle"
	StageTypeRiddle StageType = "riddle"
	StageTypeFinal  StageType = "final"
)

// PuzzleCompletedSentinel is the literal the client submits once its local
// tile arrangement matches the solved state. The tile check itself happens
// client-side; the server accepts the sentinel as proof of completion.
const PuzzleCompletedSentinel = "COMPLETED"

// StageDefinition holds the server-side secrets for one stage.
// Definitions must never be serialized to clients; only boolean correctness
// results and recorded first letters cross the boundary.
type StageDefinition struct {
	ID   StageID   `json:"id"`
	Type StageType `json:"type"`

	// Answers are the accepted values for code, cipher and riddle stages.
	// Cipher answers are the decoded plaintext, never the displayed cipher.
	Answers []string `json:"answers,omitempty"`

	// Sequence is the expected index sequence for memory stages
	Sequence []int `json:"sequence,omitempty"`

	// AccessCode gates entry into a stage's challenge. Empty means ungated.
	AccessCode string `json:"access_code,omitempty"`
}

// HasLetter reports whether the stage type yields a first letter for the
// final-stage code. Memory and puzzle stages have no natural answer string
// to take a letter from; they contribute nothing.
func (d *StageDefinition) HasLetter() bool {
	switch d.Type {
	case StageTypeCode, StageTypeCipher, StageTypeRiddle:
		return true
	default:
		return false
	}
}

// JoinSequence renders a memory sequence in submission form, e.g. "0,3,1,4,2,5"
func JoinSequence(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// AllStageIDs returns the stage ids in unlock order
func AllStageIDs() []StageID {
	ids := make([]StageID, StageCount)
	for i := range ids {
		ids[i] = StageID(i + 1)
	}
	return ids
}

// IsCompleteSet reports whether the given completed stages cover all stages
func IsCompleteSet(completed []StageID) bool {
	seen := make(map[StageID]struct{}, len(completed))
	for _, id := range completed {
		seen[id] = struct{}{}
	}
	for _, id := range AllStageIDs() {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

// SortStageIDs sorts stage ids ascending in place
func SortStageIDs(ids []StageID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
