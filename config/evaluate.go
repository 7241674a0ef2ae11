package config

import "slices"

type evaluationState uint8

const (
	stateUnstarted evaluationState = iota
	stateBound
)

// Evaluation is a fluent assertion chain over the value bound to one key.
//
// A session starts Unstarted and becomes Bound through Evaluate or
// EvaluatePath. Assertions on an Unstarted session record
// ErrNoEvaluationKey. Once an assertion fails, the remaining assertions in
// the chain are skipped and Err returns that first failure. Calling Evaluate
// again rebinds the session and clears the recorded error.
//
// A nil *Evaluation behaves as an Unstarted session that cannot be bound.
type Evaluation struct {
	handle  *Handle
	state   evaluationState
	key     Key
	value   any
	present bool
	err     error
}

// Evaluate binds the session to a dotted key.
func (e *Evaluation) Evaluate(key string) *Evaluation {
	return e.EvaluatePath(ParseKey(key))
}

// EvaluatePath binds the session to an explicit Key.
func (e *Evaluation) EvaluatePath(key Key) *Evaluation {
	if e == nil {
		return nil
	}

	e.key = slices.Clone(key)
	e.value, e.present = e.handle.LookupPath(key)
	e.state = stateBound
	e.err = nil

	return e
}

// Key returns the bound key, or nil when the session is Unstarted.
func (e *Evaluation) Key() Key {
	if e == nil || e.state != stateBound {
		return nil
	}

	return slices.Clone(e.key)
}

// Value returns the bound value; nil when the key is missing or null.
func (e *Evaluation) Value() any {
	if e == nil {
		return nil
	}

	return e.value
}

// Err returns the first failure recorded by the chain.
func (e *Evaluation) Err() error {
	if e == nil {
		return ErrNoEvaluationKey
	}

	return e.err
}

// IsRequired fails with ErrRequired when the value is missing or null.
// An empty string is present.
func (e *Evaluation) IsRequired() *Evaluation {
	return e.check(ErrRequired, "is empty", func() bool {
		return e.present
	})
}

// IsString fails with ErrType unless the value is a string.
func (e *Evaluation) IsString() *Evaluation {
	return e.check(ErrType, "is not a string", func() bool {
		_, ok := e.value.(string)

		return ok
	})
}

// IsNumeric fails with ErrType unless the value is a number or a string holding a decimal number.
func (e *Evaluation) IsNumeric() *Evaluation {
	return e.check(ErrType, "is not a number", func() bool {
		return isNumeric(e.value)
	})
}

// IsBoolean fails with ErrType unless the value is a boolean.
func (e *Evaluation) IsBoolean() *Evaluation {
	return e.check(ErrType, "is not a boolean", func() bool {
		_, ok := e.value.(bool)

		return ok
	})
}

// IsMapping fails with ErrType unless the value is a mapping.
func (e *Evaluation) IsMapping() *Evaluation {
	return e.check(ErrType, "is not a mapping", func() bool {
		switch e.value.(type) {
		case map[string]any, map[any]any:
			return true
		default:
			return false
		}
	})
}

// IsSequence fails with ErrType unless the value is a sequence.
func (e *Evaluation) IsSequence() *Evaluation {
	return e.check(ErrType, "is not a sequence", func() bool {
		_, ok := e.value.([]any)

		return ok
	})
}

// IsOneOf fails with ErrNotAllowed unless the value matches one of allowed under LooseEqual.
func (e *Evaluation) IsOneOf(allowed ...any) *Evaluation {
	return e.check(ErrNotAllowed, "is not an allowed value", func() bool {
		return slices.ContainsFunc(allowed, func(candidate any) bool {
			return LooseEqual(e.value, candidate)
		})
	})
}

func (e *Evaluation) check(sentinel error, reason string, passes func() bool) *Evaluation {
	if e == nil || e.err != nil {
		return e
	}

	if e.state != stateBound {
		e.err = ErrNoEvaluationKey

		return e
	}

	if !passes() {
		e.err = &ViolationError{
			Key:    slices.Clone(e.key),
			Reason: reason,
			Err:    sentinel,
		}
	}

	return e
}
