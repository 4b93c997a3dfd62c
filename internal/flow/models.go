package flow

import (
	"github.com/ethereum/go-ethereum/common"
)

type Step int

const (
	StepIdle Step = iota
	StepFirst
	StepSecond
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepFirst:
		return "first"
	case StepSecond:
		return "second"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// ContractRef is a call argument that is replaced by the deployment address
// of the named contract on the connected network before submission.
type ContractRef string

// Call describes one write: a logical contract, a method on it and its arguments.
type Call struct {
	Contract string
	Method   string
	Args     []any
}

type Definition struct {
	Kind   Kind
	First  Call
	Second Call
}

// State is a snapshot of a flow. An empty LastError means no error.
type State struct {
	Step         Step
	Step1TxID    *common.Hash
	Step2TxID    *common.Hash
	Step1Pending bool
	Step2Pending bool
	LastError    string
}

func (s State) clone() State {
	out := s
	if s.Step1TxID != nil {
		h := *s.Step1TxID
		out.Step1TxID = &h
	}
	if s.Step2TxID != nil {
		h := *s.Step2TxID
		out.Step2TxID = &h
	}
	return out
}
