package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig = fmt.Errorf("searchagent: invalid config")
	ErrTransport     = fmt.Errorf("searchagent: transport error")
	ErrDecoding      = fmt.Errorf("searchagent: decoding error")
	ErrUnknownTool   = fmt.Errorf("searchagent: unknown tool")
	ErrNotFound      = fmt.Errorf("searchagent: not found")
	ErrInternal      = fmt.Errorf("searchagent: internal error")
)
