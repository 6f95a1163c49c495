package conversation

import "fmt"

// InputRejectedError reports that a user message failed input validation
// before any model call was made.
type InputRejectedError struct {
	Reason string
}

func (e *InputRejectedError) Error() string {
	return fmt.Sprintf("conversation: input rejected: %s", e.Reason)
}

// RetrievalError wraps a failure while embedding the query or searching the
// vector index.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("conversation: retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// GenerationError wraps a failure from the language model while producing
// the final answer.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("conversation: generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
