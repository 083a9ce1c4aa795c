package descriptor

import "errors"

// ErrWrite covers I/O failures writing the descriptor file.
var ErrWrite = errors.New("descriptor write error")
